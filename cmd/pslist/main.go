// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// pslist prints a point-in-time table of processes.
//
//	pslist      processes owned by the caller
//	pslist -a   all processes
package main

import (
	"os"

	"github.com/jongio/pslist/cli"
	"github.com/jongio/pslist/cliout"
	"github.com/jongio/pslist/logutil"
)

func main() {
	cfg := cli.DefaultConfig()
	logutil.SetupLoggerWithWriter(cfg.Stderr, logutil.IsDebugEnabled(), false)

	if err := cli.NewCommand(cfg, os.Args[1:]).Execute(); err != nil {
		cliout.Error(cfg.Stderr, "%v", err)
		os.Exit(1)
	}
}
