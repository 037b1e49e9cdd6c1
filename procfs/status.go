// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procfs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Status holds the fields of a status file that a process record needs.
type Status struct {
	PID   int
	PPID  int
	UID   int
	GID   int
	State string
}

const (
	keyPID   = "Pid:"
	keyPPID  = "PPid:"
	keyUID   = "Uid:"
	keyGID   = "Gid:"
	keyState = "State:"
)

// ParseStatus parses status text. Each recognized line contributes its second
// whitespace-delimited token; other lines are ignored and a later duplicate
// wins. All five fields must be present.
func ParseStatus(r io.Reader) (Status, error) {
	var (
		st   Status
		seen = make(map[string]bool, 5)
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		var key string
		switch {
		case strings.HasPrefix(line, keyPID):
			key = keyPID
		case strings.HasPrefix(line, keyPPID):
			key = keyPPID
		case strings.HasPrefix(line, keyUID):
			key = keyUID
		case strings.HasPrefix(line, keyGID):
			key = keyGID
		case strings.HasPrefix(line, keyState):
			key = keyState
		default:
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return Status{}, fmt.Errorf("%w: %q has no value", ErrMalformedStatus, key)
		}
		value := fields[1]

		if key == keyState {
			st.State = value
			seen[key] = true
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			return Status{}, fmt.Errorf("%w: %s %q: %w", ErrMalformedStatus, key, value, err)
		}
		switch key {
		case keyPID:
			st.PID = n
		case keyPPID:
			st.PPID = n
		case keyUID:
			st.UID = n
		case keyGID:
			st.GID = n
		}
		seen[key] = true
	}
	if err := scanner.Err(); err != nil {
		return Status{}, fmt.Errorf("%w: %w", ErrStatusUnreadable, err)
	}

	for _, key := range []string{keyPID, keyPPID, keyUID, keyGID, keyState} {
		if !seen[key] {
			return Status{}, fmt.Errorf("%w: missing %q", ErrMalformedStatus, key)
		}
	}
	return st, nil
}
