// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package proctable builds a point-in-time table of process records.
//
// An Enumerator combines a Source, which lists process identifiers and reads
// their raw attributes, with a Resolver, which turns uids and gids into names.
// Extraction is all-or-nothing per process: a read failure, a malformed
// attribute set or an unknown uid/gid yields a Result carrying only an error,
// and Snapshot drops it. Listing the enumeration space is the only failure
// that aborts a snapshot.
//
//	enum := proctable.New(procfs.New(procfs.DefaultRoot), identity.NewCached(identity.OS{}))
//	records, err := enum.Snapshot()
//
// Skipped processes are logged at debug level under component "proctable";
// they are otherwise invisible.
package proctable
