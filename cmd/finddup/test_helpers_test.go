package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeTestConfig writes a minimal config pointing every path at temp
// directories and returns its location.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	content := `
[paths]
cache_dir = "` + filepath.Join(base, "cache") + `"

[cache]
enabled = false
`
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// runCommand executes the CLI with args and returns its combined stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
