package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// VideoSuffixes are the file extensions treated as video sources.
var VideoSuffixes = []string{
	".asf", ".avi", ".flv", ".hevc", ".m4v", ".mkv", ".mov", ".mp4",
	".mpeg", ".mpg", ".rm", ".rmvb", ".ts", ".vob", ".webm", ".wmv",
}

// ImageSuffixes are the file extensions treated as still image sources.
var ImageSuffixes = []string{
	".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp",
}

// Options control a directory scan.
type Options struct {
	// Recursive descends into subdirectories.
	Recursive bool
	// IncludeHidden keeps dot-prefixed files and directories.
	IncludeHidden bool
	// IgnoreNames drops any path containing one of these substrings.
	IgnoreNames []string
}

// ErrRootMissing reports that the scan target does not exist. It is the only
// fatal input condition; everything below the root is tolerated.
var ErrRootMissing = errors.New("scan root does not exist")

// Videos walks root and returns the video files found, in walk order.
func Videos(root string, opts Options) ([]string, error) {
	return Files(root, VideoSuffixes, opts)
}

// Images walks root and returns the image files found, in walk order.
func Images(root string, opts Options) ([]string, error) {
	return Files(root, ImageSuffixes, opts)
}

// Files walks root collecting regular files whose lowercased extension is in
// suffixes. Unreadable subdirectories are skipped, not fatal. The returned
// order is the deterministic lexical walk order.
func Files(root string, suffixes []string, opts Options) ([]string, error) {
	root, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootMissing, root)
		}
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	wanted := make(map[string]struct{}, len(suffixes))
	for _, suffix := range suffixes {
		wanted[strings.ToLower(suffix)] = struct{}{}
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries are ignored, matching the permissive
			// traversal policy: one bad directory never aborts a scan.
			return nil
		}
		if path == root {
			return nil
		}

		hidden := !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".")
		ignored := matchesIgnore(path, opts.IgnoreNames)

		if d.IsDir() {
			if hidden || ignored || !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden || ignored {
			return nil
		}
		if _, ok := wanted[strings.ToLower(filepath.Ext(d.Name()))]; !ok {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func matchesIgnore(path string, ignoreNames []string) bool {
	for _, name := range ignoreNames {
		if name == "" {
			continue
		}
		if strings.Contains(path, name) {
			return true
		}
	}
	return false
}
