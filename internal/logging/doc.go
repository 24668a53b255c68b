// Package logging provides structured logging for clickme.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is given with --log-level or the CLICKME_LOG_LEVEL
// environment variable, so the interactive editor and command output are
// never interleaved with log lines by default.
//
// # Log Levels
//
//   - Debug: store reads and writes, individual step edits
//   - Info: startup, backend selection, export
//   - Warn: swallowed write failures, ignored selections
//   - Error: unparsable stored documents
//
// # Structured Logging
//
//	logging.Warn("Failed to persist settings",
//	    zap.String("key", settings.StorageKey),
//	    zap.Error(err),
//	)
//
// # Output Format
//
// Logs are written to stderr in console format:
//
//	2025-11-25T10:30:45.123-0800  WARN  Step selection out of range
//	  requested=7  steps=3
//
// # Testing
//
// SetLogger swaps the global logger, which lets tests attach a
// zaptest/observer core and assert on emitted entries.
package logging
