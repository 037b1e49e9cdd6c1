// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jongio/pslist/proctable"
)

// DefaultRoot is the standard mount point of the Linux process filesystem.
const DefaultRoot = "/proc"

const (
	statusFile = "status"
	commFile   = "comm"
)

var (
	// ErrStatusUnreadable is returned when a status file cannot be opened or read.
	ErrStatusUnreadable = errors.New("status unreadable")
	// ErrMalformedStatus is returned when a status file lacks a required field or has a bad value.
	ErrMalformedStatus = errors.New("malformed status")
	// ErrCommUnreadable is returned when a comm file cannot be read.
	ErrCommUnreadable = errors.New("command name unreadable")
)

// Source reads processes from a proc filesystem mounted at Root.
type Source struct {
	Root string
}

// New creates a Source for root. An empty root means DefaultRoot.
func New(root string) *Source {
	if root == "" {
		root = DefaultRoot
	}
	return &Source{Root: root}
}

var _ proctable.Source = (*Source)(nil)

// IsPID reports whether a directory entry name is a process identifier:
// a non-empty run of ASCII digits without a leading zero, so that the name
// and strconv.Itoa of its value are the same path component.
func IsPID(name string) bool {
	if name == "" || name[0] == '0' {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(name)
	return err == nil && n > 0
}

// ListPIDs lists Root and returns the entries that name processes in the
// order the directory yields them; nothing is sorted. Other entries (self,
// meminfo, sys, ...) are skipped.
func (s *Source) ListPIDs() ([]int, error) {
	dir, err := os.Open(s.Root)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Root, err)
	}
	defer func() { _ = dir.Close() }()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Root, err)
	}

	pids := make([]int, 0, len(names))
	for _, name := range names {
		if !IsPID(name) {
			continue
		}
		pid, _ := strconv.Atoi(name)
		pids = append(pids, pid)
	}
	return pids, nil
}

// ReadAttributes reads <Root>/<pid>/status and <Root>/<pid>/comm.
func (s *Source) ReadAttributes(pid int) (proctable.Attributes, error) {
	dir := filepath.Join(s.Root, strconv.Itoa(pid))

	// #nosec G304 -- path is built from the configured root and a numeric pid
	f, err := os.Open(filepath.Join(dir, statusFile))
	if err != nil {
		return proctable.Attributes{}, fmt.Errorf("%w: %w", ErrStatusUnreadable, err)
	}
	st, err := ParseStatus(f)
	_ = f.Close()
	if err != nil {
		return proctable.Attributes{}, err
	}

	// #nosec G304 -- path is built from the configured root and a numeric pid
	comm, err := os.ReadFile(filepath.Join(dir, commFile))
	if err != nil {
		return proctable.Attributes{}, fmt.Errorf("%w: %w", ErrCommUnreadable, err)
	}

	return proctable.Attributes{
		PID:     st.PID,
		PPID:    st.PPID,
		UID:     st.UID,
		GID:     st.GID,
		State:   st.State,
		Command: strings.TrimSpace(string(comm)),
	}, nil
}
