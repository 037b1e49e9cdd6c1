// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package snapshot selects and renders process records.
package snapshot

import (
	"io"
	"strconv"

	"github.com/jongio/pslist/cliout"
	"github.com/jongio/pslist/proctable"
)

// Mode selects which records a snapshot shows.
type Mode int

const (
	// ModeOwn shows processes owned by the caller.
	ModeOwn Mode = iota
	// ModeAll shows every process.
	ModeAll
)

// AllFlag is the only argument that selects ModeAll.
const AllFlag = "-a"

func (m Mode) String() string {
	if m == ModeAll {
		return "all"
	}
	return "own"
}

// ParseMode returns ModeAll when the first argument is exactly "-a".
// Anything else, including no arguments, is ModeOwn.
func ParseMode(args []string) Mode {
	if len(args) > 0 && args[0] == AllFlag {
		return ModeAll
	}
	return ModeOwn
}

// Filter keeps the records mode admits, preserving order.
func Filter(records []proctable.Record, mode Mode, callerUID int) []proctable.Record {
	out := make([]proctable.Record, 0, len(records))
	for _, r := range records {
		if mode == ModeAll || r.UID == callerUID {
			out = append(out, r)
		}
	}
	return out
}

// Columns is the table layout, in render order.
var Columns = []cliout.Column{
	{Title: "PID", Width: 6},
	{Title: "PPID", Width: 6},
	{Title: "UID", Width: 6},
	{Title: "UName", Width: 10},
	{Title: "GID", Width: 6},
	{Title: "GName", Width: 10},
	{Title: "State", Width: 6},
	{Title: "Command", Width: 15},
}

// Render writes a header, a separator and one row per record.
func Render(w io.Writer, records []proctable.Record) error {
	t := cliout.NewTable(w, Columns)
	if err := t.WriteHeader(); err != nil {
		return err
	}
	for _, r := range records {
		err := t.WriteRow(
			strconv.Itoa(r.PID),
			strconv.Itoa(r.PPID),
			strconv.Itoa(r.UID),
			r.UName,
			strconv.Itoa(r.GID),
			r.GName,
			r.State,
			r.Command,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
