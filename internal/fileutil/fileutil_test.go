package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRemoveMissingFile(t *testing.T) {
	if err := Remove(filepath.Join(t.TempDir(), "absent.jpg")); err != nil {
		t.Fatalf("Remove of missing file: %v", err)
	}
}

func TestRemoveExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupe.jpg")
	writeFile(t, path, "x")

	if err := Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present after Remove: %v", err)
	}
}

func TestMoveWithoutOverwrite(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "dupes")

	src := filepath.Join(srcDir, "photo.jpg")
	writeFile(t, src, "original")

	moved, err := MoveWithoutOverwrite(src, dstDir)
	if err != nil {
		t.Fatalf("MoveWithoutOverwrite: %v", err)
	}
	if moved != filepath.Join(dstDir, "photo.jpg") {
		t.Fatalf("unexpected destination %s", moved)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("source should be gone after move")
	}
	data, err := os.ReadFile(moved)
	if err != nil || string(data) != "original" {
		t.Fatalf("moved content = %q, err = %v", data, err)
	}
}

func TestMoveWithoutOverwriteRenamesOnCollision(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	writeFile(t, filepath.Join(dstDir, "photo.jpg"), "first")
	writeFile(t, filepath.Join(dstDir, "photo_1.jpg"), "second")

	src := filepath.Join(srcDir, "photo.jpg")
	writeFile(t, src, "third")

	moved, err := MoveWithoutOverwrite(src, dstDir)
	if err != nil {
		t.Fatalf("MoveWithoutOverwrite: %v", err)
	}
	if moved != filepath.Join(dstDir, "photo_2.jpg") {
		t.Fatalf("expected photo_2.jpg, got %s", moved)
	}

	data, err := os.ReadFile(filepath.Join(dstDir, "photo.jpg"))
	if err != nil || string(data) != "first" {
		t.Fatalf("existing file was overwritten: %q err=%v", data, err)
	}
}

func TestMoveWithoutOverwriteCreatesDestination(t *testing.T) {
	src := filepath.Join(t.TempDir(), "clip.mp4")
	writeFile(t, src, "video")

	dstDir := filepath.Join(t.TempDir(), "nested", "dupes")
	moved, err := MoveWithoutOverwrite(src, dstDir)
	if err != nil {
		t.Fatalf("MoveWithoutOverwrite: %v", err)
	}
	if _, err := os.Stat(moved); err != nil {
		t.Fatalf("moved file missing: %v", err)
	}
}
