// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jongio/pslist/proctable"
	"github.com/shirou/gopsutil/v4/process"
)

// ErrNoIDs is returned when the platform reports no uid or gid for a process.
var ErrNoIDs = errors.New("process has no uid/gid")

// stateCodes maps gopsutil run-state words to the kernel's one-letter codes.
var stateCodes = map[string]string{
	process.Running: "R",
	process.Blocked: "D",
	process.Sleep:   "S",
	process.Stop:    "T",
	process.Idle:    "I",
	process.Zombie:  "Z",
	process.Wait:    "W",
	process.Lock:    "L",
}

// Source reads the host process table through gopsutil.
type Source struct{}

var _ proctable.Source = Source{}

// ListPIDs returns every pid gopsutil can see.
func (Source) ListPIDs() ([]int, error) {
	raw, err := process.Pids()
	if err != nil {
		return nil, fmt.Errorf("list host processes: %w", err)
	}

	pids := make([]int, 0, len(raw))
	for _, pid := range raw {
		if pid > 0 {
			pids = append(pids, int(pid))
		}
	}
	return pids, nil
}

// ReadAttributes collects the attributes of pid. Any missing attribute fails
// the whole read.
func (Source) ReadAttributes(pid int) (proctable.Attributes, error) {
	// #nosec G115 -- pids come from process.Pids and fit in int32
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return proctable.Attributes{}, err
	}

	ppid, err := p.Ppid()
	if err != nil {
		return proctable.Attributes{}, fmt.Errorf("ppid: %w", err)
	}
	uids, err := p.Uids()
	if err != nil {
		return proctable.Attributes{}, fmt.Errorf("uids: %w", err)
	}
	gids, err := p.Gids()
	if err != nil {
		return proctable.Attributes{}, fmt.Errorf("gids: %w", err)
	}
	if len(uids) == 0 || len(gids) == 0 {
		return proctable.Attributes{}, ErrNoIDs
	}
	status, err := p.Status()
	if err != nil {
		return proctable.Attributes{}, fmt.Errorf("status: %w", err)
	}
	name, err := p.Name()
	if err != nil {
		return proctable.Attributes{}, fmt.Errorf("name: %w", err)
	}

	return proctable.Attributes{
		PID:     pid,
		PPID:    int(ppid),
		UID:     int(uids[0]),
		GID:     int(gids[0]),
		State:   StateCode(status),
		Command: strings.TrimSpace(name),
	}, nil
}

// StateCode turns gopsutil's status words into a single-letter code.
// Unknown words fall back to their upper-cased first letter, and an empty
// status to "?".
func StateCode(status []string) string {
	if len(status) == 0 || status[0] == "" {
		return "?"
	}
	if code, ok := stateCodes[status[0]]; ok {
		return code
	}
	return strings.ToUpper(status[0][:1])
}
