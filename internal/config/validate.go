package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateHash(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateWorkers(); err != nil {
		return err
	}
	return nil
}

// validateHash checks bit-length and threshold constraints. The algorithm
// name is deliberately not validated: unknown names fall back to the average
// hash at run time.
func (c *Config) validateHash() error {
	switch c.Hash.Size {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("hash.size must be one of 8, 16, 32, 64 (got %d)", c.Hash.Size)
	}
	if c.Hash.SimilarThreshold < 1 {
		return errors.New("hash.similar_threshold must be at least 1")
	}
	if c.Hash.IdenticalThreshold < 1 {
		return errors.New("hash.identical_threshold must be at least 1")
	}
	if c.Hash.IdenticalThreshold > c.Hash.SimilarThreshold {
		return fmt.Errorf("hash.identical_threshold (%d) must not exceed hash.similar_threshold (%d)",
			c.Hash.IdenticalThreshold, c.Hash.SimilarThreshold)
	}
	bits := c.Hash.Size * c.Hash.Size
	if c.Hash.SimilarThreshold > bits {
		return fmt.Errorf("hash.similar_threshold (%d) exceeds fingerprint bit length (%d)",
			c.Hash.SimilarThreshold, bits)
	}
	return nil
}

func (c *Config) validateVideo() error {
	for _, ts := range c.Video.TimestampsSeconds {
		if ts < 0 {
			return fmt.Errorf("video.timestamps_seconds must be non-negative (got %d)", ts)
		}
	}
	return nil
}

func (c *Config) validateWorkers() error {
	if c.Workers.Count < 0 {
		return fmt.Errorf("workers.count must be non-negative (got %d)", c.Workers.Count)
	}
	return nil
}
