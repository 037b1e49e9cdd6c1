// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package proctable_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jongio/pslist/identity"
	"github.com/jongio/pslist/logutil"
	"github.com/jongio/pslist/procfs"
	"github.com/jongio/pslist/proctable"
	"github.com/jongio/pslist/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves attributes from memory and records which pids were read.
type fakeSource struct {
	pids    []int
	attrs   map[int]proctable.Attributes
	listErr error
	reads   []int
}

func (f *fakeSource) ListPIDs() ([]int, error) {
	return f.pids, f.listErr
}

func (f *fakeSource) ReadAttributes(pid int) (proctable.Attributes, error) {
	f.reads = append(f.reads, pid)
	a, ok := f.attrs[pid]
	if !ok {
		return proctable.Attributes{}, errors.New("vanished")
	}
	return a, nil
}

var users = identity.Static{
	Users:  map[int]string{0: "root", 1000: "alice"},
	Groups: map[int]string{0: "root", 1000: "alice"},
}

func TestExtractBashScenario(t *testing.T) {
	root := testutil.NewProcRoot(t)
	root.AddProcess(testutil.Process{
		PID:     42,
		Command: "bash",
		Status:  "Pid:\t42\nPPid:\t1\nUid:\t1000\t1000\nGid:\t1000\t1000\nState:\tS (sleeping)\n",
	})

	res := proctable.New(procfs.New(root.Dir), users).Extract(42)

	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	assert.Equal(t, proctable.Record{
		PID:     42,
		PPID:    1,
		UID:     1000,
		UName:   "alice",
		GID:     1000,
		GName:   "alice",
		State:   "S",
		Command: "bash",
	}, res.Record)
}

func TestExtractUnresolvedIDsYieldNoRecord(t *testing.T) {
	src := &fakeSource{attrs: map[int]proctable.Attributes{
		11: {PID: 11, UID: 4242, GID: 1000, State: "S", Command: "ghost"},
		12: {PID: 12, UID: 1000, GID: 4242, State: "S", Command: "orphan"},
	}}
	enum := proctable.New(src, users)

	res := enum.Extract(11)
	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, proctable.ErrUnresolvedUser)
	assert.ErrorIs(t, res.Err, identity.ErrUnknownUser)
	assert.Equal(t, proctable.Record{}, res.Record)

	res = enum.Extract(12)
	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, proctable.ErrUnresolvedGroup)
	assert.Equal(t, proctable.Record{}, res.Record)
}

func TestSnapshotDropsFailuresKeepsOrder(t *testing.T) {
	src := &fakeSource{
		pids: []int{900, 5, 500, 1},
		attrs: map[int]proctable.Attributes{
			900: {PID: 900, PPID: 500, UID: 1000, GID: 1000, State: "R", Command: "vim"},
			500: {PID: 500, PPID: 1, UID: 1000, GID: 1000, State: "S", Command: "bash"},
			1:   {PID: 1, UID: 0, GID: 0, State: "S", Command: "systemd"},
		},
	}

	records, err := proctable.New(src, users).Snapshot()
	require.NoError(t, err)

	var pids []int
	for _, r := range records {
		pids = append(pids, r.PID)
	}
	assert.Equal(t, []int{900, 500, 1}, pids)
	assert.Equal(t, []int{900, 5, 500, 1}, src.reads)
}

func TestSnapshotListFailureIsFatal(t *testing.T) {
	src := &fakeSource{listErr: errors.New("permission denied")}

	records, err := proctable.New(src, users).Snapshot()
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestSnapshotMissingRoot(t *testing.T) {
	_, err := proctable.New(procfs.New(filepath.Join(t.TempDir(), "nope")), users).Snapshot()
	require.Error(t, err)
}

func TestSnapshotSkipsUnreadableProcesses(t *testing.T) {
	sc := testutil.LoadScenario(t, "unreadable")
	root := sc.Build(t)

	records, err := proctable.New(procfs.New(root.Dir), sc.Resolver()).Snapshot()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 10, records[0].PID)
	assert.Equal(t, "ok", records[0].Command)
}

func TestSnapshotStatusRemovedAfterListing(t *testing.T) {
	root := testutil.NewProcRoot(t)
	root.AddProcess(testutil.Process{PID: 500, PPID: 1, UID: 1000, GID: 1000, Command: "bash"})
	root.AddProcess(testutil.Process{PID: 501, PPID: 1, UID: 1000, GID: 1000, Command: "sleep"})
	src := procfs.New(root.Dir)
	enum := proctable.New(src, users)

	pids, err := enum.ListCandidateIDs()
	require.NoError(t, err)
	require.ElementsMatch(t, []int{500, 501}, pids)

	root.RemoveStatus(501)

	var got []int
	for _, pid := range pids {
		if res := enum.Extract(pid); res.OK() {
			got = append(got, res.Record.PID)
		} else {
			assert.ErrorIs(t, res.Err, procfs.ErrStatusUnreadable)
		}
	}
	assert.Equal(t, []int{500}, got)
}

func TestListCandidateIDsNeverExtractsNonNumericEntries(t *testing.T) {
	root := testutil.NewProcRoot(t)
	root.AddEntry("self")
	root.AddEntry("meminfo.txt")
	root.AddProcess(testutil.Process{PID: 1, UID: 0, GID: 0, Command: "init"})

	reads := &recordingSource{Source: procfs.New(root.Dir)}
	records, err := proctable.New(reads, users).Snapshot()
	require.NoError(t, err)

	assert.Equal(t, []int{1}, reads.reads)
	require.Len(t, records, 1)
	assert.Equal(t, "init", records[0].Command)
}

type recordingSource struct {
	*procfs.Source
	reads []int
}

func (r *recordingSource) ReadAttributes(pid int) (proctable.Attributes, error) {
	r.reads = append(r.reads, pid)
	return r.Source.ReadAttributes(pid)
}

func TestSnapshotLogsSkipsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetupLoggerWithWriter(&buf, true, false)
	t.Cleanup(func() { logutil.SetupLogger(false, false) })

	src := &fakeSource{pids: []int{3}}
	_, err := proctable.New(src, users, proctable.WithLogger(logutil.NewLogger("proctable"))).Snapshot()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "skipped process")
	assert.Contains(t, output, "pid=3")
	assert.Contains(t, output, "vanished")
}

func TestSnapshotSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetupLoggerWithWriter(&buf, false, false)
	t.Cleanup(func() { logutil.SetupLogger(false, false) })

	src := &fakeSource{pids: []int{3}}
	records, err := proctable.New(src, users).Snapshot()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, buf.String())
}
