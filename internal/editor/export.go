package editor

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/muurk/clickme/internal/logging"
	"github.com/muurk/clickme/internal/settings"
	"github.com/muurk/clickme/internal/store"
	"go.uber.org/zap"
)

// ClipboardWriter writes text to a clipboard.
type ClipboardWriter func(text string) error

// SystemClipboard writes to the operating system clipboard.
func SystemClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// NoContentMessage is shown by Export when nothing is stored.
func NoContentMessage(key string) string {
	return fmt.Sprintf("No content found in storage for key %q", key)
}

// Export returns the stored document for display: pretty-printed with a
// two-space indent, or as-is when it is not valid JSON.
func Export(s *store.Store) string {
	raw, ok := s.Raw()
	if !ok {
		return NoContentMessage(s.Key())
	}

	pretty, err := settings.Pretty(raw)
	if err != nil {
		logging.Warn("Stored settings are not valid JSON, exporting raw content", zap.Error(err))
		return string(raw)
	}
	return string(pretty)
}

// CopyAndClear copies text to the clipboard, then clears the store and
// returns a fresh default state. If the copy fails nothing is cleared.
func CopyAndClear(s *store.Store, text string, write ClipboardWriter) (State, error) {
	if err := write(text); err != nil {
		return State{}, settings.NewClipboardError("failed to copy settings to clipboard", err)
	}

	s.Clear()
	logging.Info("Settings exported to clipboard and storage cleared", zap.Int("bytes", len(text)))
	return DefaultState(), nil
}
