// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package procutil reads the host process table through gopsutil.
//
// It backs pslist on platforms without a Linux-style proc filesystem. gopsutil
// uses platform-specific APIs:
//
//   - Linux: /proc filesystem
//   - macOS/BSD: sysctl system calls
//   - Windows: native process APIs
//   - Solaris, AIX: procfs
//
// The first uid and gid gopsutil reports is the real id. Run states are mapped
// back to the one-letter codes ps prints (running is R, sleep is S, and so on).
//
// # Example Usage
//
//	enum := proctable.New(procutil.Source{}, identity.NewCached(identity.OS{}))
//	records, err := enum.Snapshot()
package procutil
