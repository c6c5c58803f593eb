package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "finddup.log")

	logger, err := New(Options{Level: "debug", Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("scan started", String("folder", "/tmp/photos"), Int("files", 3))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "scan started") {
		t.Fatalf("missing message in output: %q", out)
	}
	if !strings.Contains(out, "files=3") || !strings.Contains(out, "folder=/tmp/photos") {
		t.Fatalf("missing attrs in output: %q", out)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestComponentLoggerToleratesNilBase(t *testing.T) {
	logger := NewComponentLogger(nil, "dedup")
	logger.Info("should not panic")
}

func TestConsoleHandlerSerializesClones(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	base := slog.New(newConsoleHandler(&buf, lvl))

	// Component loggers clone the handler via WithAttrs; all clones must
	// serialize on the same writer.
	loggers := []*slog.Logger{
		NewComponentLogger(base, "scan"),
		NewComponentLogger(base, "pipeline"),
	}

	const perLogger = 50
	var wg sync.WaitGroup
	for _, logger := range loggers {
		wg.Add(1)
		go func(l *slog.Logger) {
			defer wg.Done()
			for i := 0; i < perLogger; i++ {
				l.Info("working", Int("step", i))
			}
		}(logger)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != perLogger*len(loggers) {
		t.Fatalf("expected %d lines, got %d", perLogger*len(loggers), len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "INFO") || !strings.Contains(line, "working") {
			t.Fatalf("garbled line: %q", line)
		}
	}
}
