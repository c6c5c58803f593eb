package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Remove deletes path, treating a missing file as success.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MoveWithoutOverwrite moves src into dstDir, keeping the base name. When a
// file with that name already exists the name gets a numeric suffix before
// the extension, so nothing in dstDir is ever overwritten.
func MoveWithoutOverwrite(src, dstDir string) (string, error) {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure destination directory: %w", err)
	}

	dst, err := uniqueDestination(dstDir, filepath.Base(src))
	if err != nil {
		return "", err
	}
	if err := moveFile(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func uniqueDestination(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]

	candidate := filepath.Join(dir, name)
	for i := 1; ; i++ {
		_, err := os.Lstat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat destination: %w", err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
}

func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}

	// Rename fails across filesystems; fall back to copy plus remove.
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}
