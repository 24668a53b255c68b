// Package store persists the settings document.
//
// A Store reads and writes the single key "clickjackingSettings" through a
// Backend. Three backends are provided:
//
//   - FileBackend: one JSON file per key in a data directory, written
//     atomically (temporary file plus rename)
//   - SQLiteBackend: a kv table in a SQLite database (modernc.org/sqlite,
//     no cgo)
//   - MemoryBackend: process-local map, used by tests and --ephemeral
//
// Store never fails a load: an absent or unparsable document yields the
// default settings and the parse failure is logged. Write failures are
// logged as warnings and otherwise ignored, so an edit is never lost from
// the in-memory state because the disk was unavailable.
package store
