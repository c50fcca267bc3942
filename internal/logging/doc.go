// Package logging assembles structured slog loggers and attribute helpers used
// across reelprep commands.
//
// It owns the console and JSON handlers, maps textual levels onto slog, and
// tags log lines with the per-invocation run identifier carried on the
// context. A no-op logger is provided for tests and wiring code that cannot
// fail.
//
// Warnings about incomplete project inputs go through WarnWithContext so each
// one names an event type, a hint, and its impact on the generated output.
package logging
