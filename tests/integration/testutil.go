// Package integration runs the built prototypes binary end to end.
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// prototypesBin is the path to the built prototypes binary.
	prototypesBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// buildBinary compiles cmd/prototypes into dir and records the result for
// NewTestEnv.
func buildBinary(dir string) {
	root, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		return
	}
	prototypesBin = filepath.Join(dir, "prototypes")
	cmd := exec.Command("go", "build", "-o", prototypesBin, "./cmd/prototypes")
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
	}
}

// TestEnv provides an isolated environment with its own config directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
}

// NewTestEnv creates a new isolated test environment. config, when not
// empty, is written as config.yaml.
func NewTestEnv(t *testing.T, config string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build prototypes: %v", buildErr)
	}
	if prototypesBin == "" {
		t.Fatal("prototypes binary not built")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if config != "" {
		if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(config), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}
	return &TestEnv{t: t, TempDir: tempDir, Config: configDir}
}

// CmdResult holds the result of a prototypes command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the prototypes binary with the given arguments. The
// PROTOTYPES_* variables of the calling environment are not passed on.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(prototypesBin, allArgs...)
	cmd.Env = []string{"HOME=" + e.TempDir, "XDG_DATA_HOME=" + filepath.Join(e.TempDir, "share")}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run prototypes: %v", err)
		}
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
}

// MustRun executes the binary and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("prototypes %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// ReadJSONLFile reads a JSONL file (one JSON object per line) and returns a slice.
func ReadJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open JSONL file %s: %v", path, err)
	}
	defer f.Close()

	var results []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			t.Fatalf("failed to parse JSONL line in %s: %v", path, err)
		}
		results = append(results, item)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to read JSONL file %s: %v", path, err)
	}
	return results
}
