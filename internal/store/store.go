package store

import (
	"github.com/muurk/clickme/internal/logging"
	"github.com/muurk/clickme/internal/settings"
	"go.uber.org/zap"
)

// Store loads and saves the settings document under settings.StorageKey.
type Store struct {
	backend Backend
	key     string
}

// New creates a store over backend.
func New(backend Backend) *Store {
	return &Store{backend: backend, key: settings.StorageKey}
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Key returns the storage key.
func (s *Store) Key() string {
	return s.key
}

// Load returns the stored document, or the defaults when nothing is stored
// or the stored document cannot be parsed.
func (s *Store) Load() *settings.Settings {
	data, ok, err := s.backend.Get(s.key)
	if err != nil {
		logging.Error("Failed to read stored settings, using defaults",
			zap.String("backend", s.backend.Name()),
			zap.Error(err),
		)
		return settings.Default()
	}
	if !ok {
		logging.Debug("No stored settings, using defaults", zap.String("backend", s.backend.Name()))
		return settings.Default()
	}

	doc, err := settings.Decode(data)
	if err != nil {
		logging.Error("Failed to parse stored settings, using defaults",
			zap.String("backend", s.backend.Name()),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		return settings.Default()
	}

	logging.LogStoreEvent(s.backend.Name(), s.key, "load", len(data))
	return doc
}

// Save writes the document. Failures are logged and otherwise ignored.
func (s *Store) Save(doc *settings.Settings) {
	if err := s.TrySave(doc); err != nil {
		logging.Warn("Failed to persist settings",
			zap.String("backend", s.backend.Name()),
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
}

// TrySave writes the document and reports failures.
func (s *Store) TrySave(doc *settings.Settings) error {
	data, err := settings.Encode(doc)
	if err != nil {
		return err
	}
	if err := s.backend.Put(s.key, data); err != nil {
		return settings.NewStorageError("failed to save settings", err)
	}
	logging.LogStoreEvent(s.backend.Name(), s.key, "save", len(data))
	return nil
}

// Clear removes the stored document. Failures are logged.
func (s *Store) Clear() {
	if err := s.backend.Delete(s.key); err != nil {
		logging.Warn("Failed to clear stored settings",
			zap.String("backend", s.backend.Name()),
			zap.Error(err),
		)
		return
	}
	logging.LogStoreEvent(s.backend.Name(), s.key, "clear", 0)
}

// Raw returns the stored bytes as-is and whether anything is stored.
func (s *Store) Raw() ([]byte, bool) {
	data, ok, err := s.backend.Get(s.key)
	if err != nil {
		logging.Warn("Failed to read stored settings",
			zap.String("backend", s.backend.Name()),
			zap.Error(err),
		)
		return nil, false
	}
	return data, ok
}

// Import stores raw document bytes after checking they parse.
func (s *Store) Import(data []byte) (*settings.Settings, error) {
	doc, err := settings.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := s.TrySave(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
