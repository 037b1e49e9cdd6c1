package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	info := New("pslist")
	assert.Equal(t, "0.0.0-dev", info.Version)
	assert.Equal(t, "unknown", info.BuildDate)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.Equal(t, "pslist", info.Name)
}

func TestNew_UsesLinkerValues(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "1.4.0"

	assert.Equal(t, "1.4.0", New("pslist").Version)
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2024-01-01",
		GitCommit: "abc123",
		Name:      "pslist",
	}
	assert.Equal(t, "pslist version 1.2.3 (commit: abc123, built: 2024-01-01)", info.String())
}
