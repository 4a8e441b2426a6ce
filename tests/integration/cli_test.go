package integration

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// TestMain builds the prototypes binary once before running tests.
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "prototypes-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	buildBinary(tmpDir)

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestExitCodes(t *testing.T) {
	badData := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(badData, "stars.jsonl"), []byte("{not json\n"), 0o644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"queries"}, 0},
		{"unknown dataset", []string{"run", "dragons", "fly"}, 1},
		{"bad times", []string{"run", "kitties", "growUp", "--times", "-1"}, 1},
		{"bad format", []string{"--format", "xml", "datasets"}, 1},
		{"unknown flag", []string{"datasets", "--nope"}, 1},
		{"malformed fixture", []string{"--data-dir", badData, "verify"}, 2},
		{"missing data dir", []string{"--data-dir", filepath.Join(badData, "absent"), "datasets"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewTestEnv(t, "")
			result := env.Run(tt.args...)
			assert.Equal(t, tt.want, result.ExitCode, "stderr: %s", result.Stderr)
		})
	}
}

func TestVerifyAgrees(t *testing.T) {
	env := NewTestEnv(t, "")
	result := env.MustRun("verify")

	report := ParseJSON[struct {
		Checked    []string `json:"checked"`
		Mismatches []any    `json:"mismatches"`
	}](t, result.Stdout)
	assert.Len(t, report.Checked, 8)
	assert.Empty(t, report.Mismatches)
}

func TestExportEditReload(t *testing.T) {
	env := NewTestEnv(t, "")
	dir := filepath.Join(env.TempDir, "fixtures")
	env.MustRun("export", dir)

	path := filepath.Join(dir, "kitties.jsonl")
	kitties := ReadJSONLFile[types.Kitty](t, path)
	require.Len(t, kitties, 4)
	assert.Equal(t, "Tiger", kitties[0].Name)

	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Garfield","age":40,"color":"orange"}`+"\n"), 0o644))

	env = NewTestEnv(t, "data_dir: "+dir+"\n")
	result := env.MustRun("run", "kitties", "orangeKittyNames")
	assert.Equal(t, []string{"Garfield"}, ParseJSON[[]string](t, result.Stdout))
}

func TestExportDefaultsToDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG data home applies on linux only")
	}
	env := NewTestEnv(t, "")
	result := env.MustRun("export")

	written := ParseJSON[[]string](t, result.Stdout)
	require.Len(t, written, len(types.CollectionNames))
	assert.Equal(t, filepath.Join(env.TempDir, "share", "prototypes"), filepath.Dir(written[0]))
}
