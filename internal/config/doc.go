// Package config loads, validates, and normalizes the TOML configuration
// shared by the finddup CLI and its subsystems.
package config
