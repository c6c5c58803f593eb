package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeHash()
	c.normalizeVideo()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeHash() {
	c.Hash.Algorithm = strings.ToLower(strings.TrimSpace(c.Hash.Algorithm))
	if c.Hash.Size == 0 {
		c.Hash.Size = defaultHashSize
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir()
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = c.Paths.CacheDir + "/fingerprints.db"
	}
	if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	names := c.Scan.IgnoreNames[:0]
	for _, name := range c.Scan.IgnoreNames {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	c.Scan.IgnoreNames = names
}

func (c *Config) normalizeVideo() {
	if len(c.Video.TimestampsSeconds) == 0 {
		c.Video.TimestampsSeconds = Default().Video.TimestampsSeconds
	}
	if strings.TrimSpace(c.Video.FFmpegBinary) == "" {
		c.Video.FFmpegBinary = defaultFFmpegBinary
	}
	if strings.TrimSpace(c.Video.FFprobeBinary) == "" {
		c.Video.FFprobeBinary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
}
