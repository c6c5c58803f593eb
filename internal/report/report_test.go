package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"finddup/internal/dedup"
)

func TestBuildOrdersGroupsAndPaths(t *testing.T) {
	items := []dedup.Item{
		{Path: "/pics/img10.jpg", Group: 2},
		{Path: "/pics/img2.jpg", Group: 2},
		{Path: "/pics/b.jpg", Group: 1},
		{Path: "/pics/a.jpg", Group: 1},
		{Path: "/pics/lonely.jpg", Group: 0},
	}

	r := Build(items, 1)

	if r.ScannedFiles != 5 || r.GroupedFiles != 4 || r.FailedFiles != 1 {
		t.Fatalf("counts = %d/%d/%d", r.ScannedFiles, r.GroupedFiles, r.FailedFiles)
	}
	if len(r.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(r.Groups))
	}
	if r.Groups[0].ID != 1 || r.Groups[1].ID != 2 {
		t.Fatalf("group order = %d, %d", r.Groups[0].ID, r.Groups[1].ID)
	}
	if !reflect.DeepEqual(r.Groups[0].Paths, []string{"/pics/a.jpg", "/pics/b.jpg"}) {
		t.Errorf("group 1 paths = %v", r.Groups[0].Paths)
	}
	// Natural order: img2 before img10.
	if !reflect.DeepEqual(r.Groups[1].Paths, []string{"/pics/img2.jpg", "/pics/img10.jpg"}) {
		t.Errorf("group 2 paths = %v", r.Groups[1].Paths)
	}
}

func TestEmptyReport(t *testing.T) {
	r := Build([]dedup.Item{{Path: "/pics/lonely.jpg", Group: 0}}, 0)
	if !r.Empty() {
		t.Error("report with only singletons should be empty")
	}
	if got := r.AllPaths(); len(got) != 0 {
		t.Errorf("AllPaths = %v", got)
	}
}

func TestWriteJSON(t *testing.T) {
	r := Build([]dedup.Item{
		{Path: "/pics/a.jpg", Group: 1},
		{Path: "/pics/b.jpg", Group: 1},
	}, 0)

	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var mapping map[string][]string
	if err := json.Unmarshal(buf.Bytes(), &mapping); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(mapping["1"], []string{"/pics/a.jpg", "/pics/b.jpg"}) {
		t.Errorf("mapping = %v", mapping)
	}
}

func TestDumpJSON(t *testing.T) {
	r := Build([]dedup.Item{
		{Path: "/pics/a.jpg", Group: 1},
		{Path: "/pics/b.jpg", Group: 1},
	}, 0)

	path := filepath.Join(t.TempDir(), "groups.json")
	if err := r.DumpJSON(path); err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	var mapping map[string][]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatBytes(1234567); got != "1,234,567 B" {
		t.Errorf("FormatBytes = %q", got)
	}
	if got := FormatDuration(3725); got != "01:02:05" {
		t.Errorf("FormatDuration = %q", got)
	}
	if got := FormatResolution(1920, 1080); got != "1920x1080" {
		t.Errorf("FormatResolution = %q", got)
	}
}
