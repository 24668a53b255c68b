package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/muurk/clickme/internal/settings"
	"github.com/muurk/clickme/internal/store"
)

func TestExport_NoContent(t *testing.T) {
	s := store.New(store.NewMemoryBackend())

	want := `No content found in storage for key "clickjackingSettings"`
	if got := Export(s); got != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}

func TestExport_PrettyPrints(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	s.Save(settings.Default())

	out := Export(s)
	if !strings.HasPrefix(out, "{\n  \"url\": \"https://example.com\",") {
		t.Errorf("Export() not indented with two spaces:\n%s", out)
	}
	if !strings.Contains(out, "\n    \"step1\": {") {
		t.Errorf("Export() missing nested step key:\n%s", out)
	}
}

func TestExport_RawWhenUnparsable(t *testing.T) {
	b := store.NewMemoryBackend()
	_ = b.Put(settings.StorageKey, []byte("{half"))

	if got := Export(store.New(b)); got != "{half" {
		t.Errorf("Export() = %q, want raw content", got)
	}
}

func TestCopyAndClear_ClearsStorage(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	session := NewSession(s)
	_ = session.Apply(func(st State) (State, error) { return SetURL(st, "https://target.example") })

	text := Export(s)
	var copied string
	st, err := CopyAndClear(s, text, func(v string) error {
		copied = v
		return nil
	})
	if err != nil {
		t.Fatalf("CopyAndClear() error = %v", err)
	}

	if copied != text {
		t.Error("clipboard did not receive the exported text")
	}
	if _, ok := s.Raw(); ok {
		t.Error("storage not cleared")
	}
	if got := s.Load(); got.URL != settings.DefaultURL || len(got.Steps) != 1 {
		t.Errorf("Load() after clear = %+v, want defaults", got)
	}
	if st.Settings.URL != settings.DefaultURL || st.Current != 1 {
		t.Errorf("returned state = %+v, want defaults", st)
	}
}

func TestCopyAndClear_ClipboardFailureKeepsStorage(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	s.Save(settings.Default())

	_, err := CopyAndClear(s, "x", func(string) error { return errors.New("no display") })
	if !settings.IsClipboardError(err) {
		t.Errorf("CopyAndClear() error = %v, want clipboard error", err)
	}
	if len(settings.Hint(err)) == 0 {
		t.Error("clipboard error should carry troubleshooting hints")
	}
	if _, ok := s.Raw(); !ok {
		t.Error("storage cleared despite clipboard failure")
	}
}
