// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package proctable

// Attributes is the raw, unresolved attribute set a Source reports for one process.
type Attributes struct {
	PID     int
	PPID    int
	UID     int
	GID     int
	State   string
	Command string
}

// Record is a complete snapshot entry for one process.
// Records are only ever produced fully populated; see Enumerator.Extract.
type Record struct {
	PID     int
	PPID    int
	UID     int
	UName   string
	GID     int
	GName   string
	State   string
	Command string
}

// Result is the outcome of extracting a single pid.
// Exactly one of Record and Err is meaningful: Err == nil means Record is complete.
type Result struct {
	PID    int
	Record Record
	Err    error
}

// OK reports whether the extraction produced a record.
func (r Result) OK() bool {
	return r.Err == nil
}
