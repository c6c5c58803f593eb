package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultHashAlgorithm      = "average"
	defaultHashSize           = 8
	defaultIdenticalThreshold = 1
	defaultSimilarThreshold   = 2
	defaultFFmpegBinary       = "ffmpeg"
	defaultFFprobeBinary      = "ffprobe"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	cacheDir := defaultCacheDir()
	return Config{
		Paths: Paths{
			CacheDir: cacheDir,
		},
		Scan: Scan{
			Recursive:     true,
			IncludeHidden: false,
		},
		Hash: Hash{
			Algorithm:          defaultHashAlgorithm,
			Size:               defaultHashSize,
			IdenticalThreshold: defaultIdenticalThreshold,
			SimilarThreshold:   defaultSimilarThreshold,
		},
		Video: Video{
			TimestampsSeconds: []int{10, 60, 120},
			FFmpegBinary:      defaultFFmpegBinary,
			FFprobeBinary:     defaultFFprobeBinary,
		},
		Cache: Cache{
			Enabled: false,
			Path:    filepath.Join(cacheDir, "fingerprints.db"),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "finddup")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/finddup"
	}
	return filepath.Join(home, ".cache", "finddup")
}
