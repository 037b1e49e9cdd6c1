// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cli wires the process enumerator, filter and renderer into the
// pslist command.
package cli

import (
	"io"
	"os"

	"github.com/jongio/pslist/cliout"
	"github.com/jongio/pslist/identity"
	"github.com/jongio/pslist/logutil"
	"github.com/jongio/pslist/procfs"
	"github.com/jongio/pslist/proctable"
	"github.com/jongio/pslist/snapshot"
	"github.com/jongio/pslist/version"
	"github.com/spf13/cobra"
)

// Name is the binary name.
const Name = "pslist"

// Config holds everything a run depends on.
type Config struct {
	// ProcRoot is the proc filesystem root, used when Source is nil.
	ProcRoot string
	// Source overrides the platform default process source.
	Source    proctable.Source
	Resolver  proctable.Resolver
	CallerUID int
	Stdout    io.Writer
	Stderr    io.Writer
	Info      *version.Info
}

// DefaultConfig returns the configuration for the current process.
func DefaultConfig() Config {
	return Config{
		ProcRoot:  procfs.DefaultRoot,
		Resolver:  identity.NewCached(identity.OS{}),
		CallerUID: os.Geteuid(),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Info:      version.New(Name),
	}
}

// NewCommand creates the root command for one invocation with args.
//
// The only recognised argument is a leading "-a"; anything else silently
// selects the caller's own processes. Cobra never sees args, so its
// built-in help, completion and __complete commands cannot claim them.
func NewCommand(cfg Config, args []string) *cobra.Command {
	if cfg.Info == nil {
		cfg.Info = version.New(Name)
	}
	if cfg.Source == nil {
		cfg.Source = defaultSource(cfg.ProcRoot)
	}

	cmd := &cobra.Command{
		Use:                cfg.Info.Name + " [-a]",
		Short:              "Print a snapshot of running processes",
		Long:               "Print PID, PPID, owner, group, state and command of the caller's processes, or of all processes with -a.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cfg, args)
		},
	}
	// A non-nil empty slice stops cobra from falling back to os.Args.
	cmd.SetArgs([]string{})
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)
	return cmd
}

// Run takes one snapshot and renders it to cfg.Stdout.
// It fails only when the process table itself cannot be listed.
func Run(cfg Config, args []string) error {
	mode := snapshot.ParseMode(args)

	log := logutil.NewLogger("cli").WithFields("mode", mode.String(), "caller_uid", cfg.CallerUID)
	log.Debug("starting", "version", cfg.Info.String())

	records, err := proctable.New(cfg.Source, cfg.Resolver).Snapshot()
	if err != nil {
		return err
	}

	if mode == snapshot.ModeOwn && cfg.CallerUID < 0 {
		cliout.Warning(cfg.Stderr, "caller uid is unknown on this platform, run with %s to list processes", snapshot.AllFlag)
	}

	shown := snapshot.Filter(records, mode, cfg.CallerUID)
	log.Debug("snapshot complete", "records", len(records), "shown", len(shown))
	return snapshot.Render(cfg.Stdout, shown)
}
