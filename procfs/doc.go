// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package procfs reads the process table from a Linux-style proc filesystem.
//
// The root directory is configurable so that a synthetic tree can stand in
// for /proc. Only numerically named entries are treated as processes. For each
// process the Source reads two files:
//
//	<root>/<pid>/status   line-oriented "Key:\tvalue ..." text
//	<root>/<pid>/comm     the command name followed by a newline
//
// From status the Pid, PPid, Uid, Gid and State lines are used; the value of
// each is the second whitespace-delimited token, so for Uid and Gid this is the
// real id and for State the one-letter code.
package procfs
