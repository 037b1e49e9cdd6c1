package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Process describes one synthetic process.
type Process struct {
	PID     int    `yaml:"pid"`
	PPID    int    `yaml:"ppid"`
	UID     int    `yaml:"uid"`
	GID     int    `yaml:"gid"`
	State   string `yaml:"state"`
	Command string `yaml:"command"`
	// Status replaces the generated status text when set.
	Status string `yaml:"status,omitempty"`
	// NoComm leaves out the comm file.
	NoComm bool `yaml:"no_comm,omitempty"`
}

var stateNames = map[string]string{
	"R": "running",
	"S": "sleeping",
	"D": "disk sleep",
	"T": "stopped",
	"t": "tracing stop",
	"Z": "zombie",
	"X": "dead",
	"I": "idle",
}

// StatusText renders p the way the kernel lays out /proc/<pid>/status.
func (p Process) StatusText() string {
	if p.Status != "" {
		return p.Status
	}
	state := p.State
	if state == "" {
		state = "S"
	}
	if name, ok := stateNames[state]; ok {
		state = fmt.Sprintf("%s (%s)", state, name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name:\t%s\n", p.Command)
	fmt.Fprintf(&b, "Umask:\t0022\n")
	fmt.Fprintf(&b, "State:\t%s\n", state)
	fmt.Fprintf(&b, "Tgid:\t%d\n", p.PID)
	fmt.Fprintf(&b, "Ngid:\t0\n")
	fmt.Fprintf(&b, "Pid:\t%d\n", p.PID)
	fmt.Fprintf(&b, "PPid:\t%d\n", p.PPID)
	fmt.Fprintf(&b, "TracerPid:\t0\n")
	fmt.Fprintf(&b, "Uid:\t%d\t%d\t%d\t%d\n", p.UID, p.UID, p.UID, p.UID)
	fmt.Fprintf(&b, "Gid:\t%d\t%d\t%d\t%d\n", p.GID, p.GID, p.GID, p.GID)
	fmt.Fprintf(&b, "NSpid:\t%d\n", p.PID)
	fmt.Fprintf(&b, "VmRSS:\t    4096 kB\n")
	fmt.Fprintf(&b, "Threads:\t1\n")
	return b.String()
}

// ProcRoot is a temporary directory laid out like /proc.
type ProcRoot struct {
	Dir string
	t   *testing.T
}

// NewProcRoot creates an empty proc root removed when the test ends.
func NewProcRoot(t *testing.T) *ProcRoot {
	t.Helper()
	return &ProcRoot{Dir: t.TempDir(), t: t}
}

// AddProcess writes <pid>/status and, unless NoComm is set, <pid>/comm.
func (r *ProcRoot) AddProcess(p Process) {
	r.t.Helper()

	dir := r.pidDir(p.PID)
	r.mkdir(dir)
	r.write(filepath.Join(dir, "status"), p.StatusText())
	if !p.NoComm {
		r.write(filepath.Join(dir, "comm"), p.Command+"\n")
	}
}

// AddEntry adds a non-process entry such as "self" or "sys".
// Names containing a dot become files, others directories.
func (r *ProcRoot) AddEntry(name string) {
	r.t.Helper()

	path := filepath.Join(r.Dir, name)
	if strings.Contains(name, ".") {
		r.write(path, "")
		return
	}
	r.mkdir(path)
}

// RemoveStatus deletes the status file of pid, as if the process exited
// between listing and reading.
func (r *ProcRoot) RemoveStatus(pid int) {
	r.t.Helper()

	if err := os.Remove(filepath.Join(r.pidDir(pid), "status")); err != nil {
		r.t.Fatalf("Failed to remove status for %d: %v", pid, err)
	}
}

func (r *ProcRoot) pidDir(pid int) string {
	return filepath.Join(r.Dir, strconv.Itoa(pid))
}

func (r *ProcRoot) mkdir(path string) {
	r.t.Helper()
	if err := os.MkdirAll(path, 0750); err != nil {
		r.t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func (r *ProcRoot) write(path, content string) {
	r.t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		r.t.Fatalf("Failed to write %s: %v", path, err)
	}
}
