// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package proctable

import (
	"errors"
	"fmt"

	"github.com/jongio/pslist/logutil"
)

var (
	// ErrUnresolvedUser is returned when a record's uid has no name.
	ErrUnresolvedUser = errors.New("uid could not be resolved")
	// ErrUnresolvedGroup is returned when a record's gid has no name.
	ErrUnresolvedGroup = errors.New("gid could not be resolved")
)

// Source provides the raw process table.
type Source interface {
	// ListPIDs returns every valid process identifier in the enumeration space.
	// An error means the enumeration space itself could not be listed.
	ListPIDs() ([]int, error)
	// ReadAttributes reads the raw attributes of one process.
	ReadAttributes(pid int) (Attributes, error)
}

// Resolver maps numeric ids to names.
type Resolver interface {
	UserName(uid int) (string, error)
	GroupName(gid int) (string, error)
}

// Enumerator produces complete Records from a Source and a Resolver.
type Enumerator struct {
	source   Source
	resolver Resolver
	log      *logutil.ComponentLogger
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithLogger sets the logger used for skipped-process diagnostics.
func WithLogger(l *logutil.ComponentLogger) Option {
	return func(e *Enumerator) {
		e.log = l
	}
}

// New creates an Enumerator.
func New(source Source, resolver Resolver, opts ...Option) *Enumerator {
	e := &Enumerator{
		source:   source,
		resolver: resolver,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logutil.NewLogger("proctable")
	}
	return e
}

// ListCandidateIDs returns the process identifiers of the enumeration space.
func (e *Enumerator) ListCandidateIDs() ([]int, error) {
	pids, err := e.source.ListPIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return pids, nil
}

// Extract reads and resolves one process.
// Any failure produces a Result without a record; there are no partial records.
func (e *Enumerator) Extract(pid int) Result {
	attrs, err := e.source.ReadAttributes(pid)
	if err != nil {
		return Result{PID: pid, Err: err}
	}

	uname, err := e.resolver.UserName(attrs.UID)
	if err != nil {
		return Result{PID: pid, Err: fmt.Errorf("%w: %d: %w", ErrUnresolvedUser, attrs.UID, err)}
	}
	gname, err := e.resolver.GroupName(attrs.GID)
	if err != nil {
		return Result{PID: pid, Err: fmt.Errorf("%w: %d: %w", ErrUnresolvedGroup, attrs.GID, err)}
	}

	return Result{
		PID: pid,
		Record: Record{
			PID:     attrs.PID,
			PPID:    attrs.PPID,
			UID:     attrs.UID,
			UName:   uname,
			GID:     attrs.GID,
			GName:   gname,
			State:   attrs.State,
			Command: attrs.Command,
		},
	}
}

// Snapshot extracts every candidate and keeps the successful records in
// enumeration order. Only a failure to list the enumeration space is returned.
func (e *Enumerator) Snapshot() ([]Record, error) {
	pids, err := e.ListCandidateIDs()
	if err != nil {
		return nil, err
	}

	log := e.log.WithOperation("extract")
	records := make([]Record, 0, len(pids))
	for _, pid := range pids {
		res := e.Extract(pid)
		if !res.OK() {
			log.Debug("skipped process", "pid", pid, "reason", res.Err)
			continue
		}
		records = append(records, res.Record)
	}
	return records, nil
}
