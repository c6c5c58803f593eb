// Package logging provides slog-based structured logging with console and
// JSON output formats shared by all finddup subsystems.
package logging
