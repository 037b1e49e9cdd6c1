package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/pslist/identity"
	"gopkg.in/yaml.v3"
)

// Scenario is a process table fixture.
//
//	caller_uid: 1000
//	users: {0: root, 1000: alice}
//	groups: {0: root, 1000: alice}
//	entries: [self, meminfo.txt]
//	processes:
//	  - {pid: 1, ppid: 0, uid: 0, gid: 0, state: S, command: init}
type Scenario struct {
	CallerUID int            `yaml:"caller_uid"`
	Users     map[int]string `yaml:"users"`
	Groups    map[int]string `yaml:"groups"`
	Entries   []string       `yaml:"entries"`
	Processes []Process      `yaml:"processes"`
}

// LoadScenario reads testdata/scenarios/<name>.yaml.
func LoadScenario(t *testing.T, name string) *Scenario {
	t.Helper()

	dir := FindTestData(t, "testdata", "scenarios")
	// #nosec G304 -- fixture path under testdata
	data, err := os.ReadFile(filepath.Join(dir, name+".yaml"))
	if err != nil {
		t.Fatalf("Failed to read scenario %s: %v", name, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		t.Fatalf("Failed to parse scenario %s: %v", name, err)
	}
	return &s
}

// Build materializes the scenario as a proc root.
func (s *Scenario) Build(t *testing.T) *ProcRoot {
	t.Helper()

	root := NewProcRoot(t)
	for _, e := range s.Entries {
		root.AddEntry(e)
	}
	for _, p := range s.Processes {
		root.AddProcess(p)
	}
	return root
}

// Resolver returns a resolver knowing exactly the scenario's users and groups.
func (s *Scenario) Resolver() identity.Static {
	return identity.Static{Users: s.Users, Groups: s.Groups}
}
