package editor

import (
	"errors"
	"testing"

	"github.com/muurk/clickme/internal/settings"
	"github.com/muurk/clickme/internal/store"
)

func TestSession_ApplySaves(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	session := NewSession(s)

	err := session.Apply(func(st State) (State, error) {
		return AddSeparator(st), nil
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if session.State().Current != 2 {
		t.Errorf("Current = %d, want 2", session.State().Current)
	}
	if got := s.Load(); len(got.Steps) != 2 {
		t.Errorf("stored steps = %d, want 2", len(got.Steps))
	}
}

func TestSession_ApplyErrorChangesNothing(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	session := NewSession(s)
	before := session.State()

	err := session.Apply(func(st State) (State, error) {
		return AddStep(st), errors.New("boom")
	})
	if err == nil {
		t.Fatal("Apply() expected error")
	}
	if session.State().StepCount() != before.StepCount() {
		t.Error("state changed on error")
	}
	if _, ok := s.Raw(); ok {
		t.Error("state saved on error")
	}
}

func TestSession_ReloadKeepsIDs(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	session := NewSession(s)
	session.Do(AddStep)
	session.Do(AddStep)

	first := session.State()
	_ = session.Apply(func(st State) (State, error) {
		return RemoveStep(st, st.Settings.Steps[0].ID)
	})
	want := []settings.StepID{first.Settings.Steps[1].ID, first.Settings.Steps[2].ID}

	reloaded := NewSession(s).State()
	for i, id := range want {
		if reloaded.Settings.Steps[i].ID != id {
			t.Errorf("Steps[%d].ID = %d, want %d", i, reloaded.Settings.Steps[i].ID, id)
		}
	}
	if reloaded.NextID() <= want[1] {
		t.Errorf("NextID() = %d would reuse an ID", reloaded.NextID())
	}
}

func TestSession_SelectDoesNotSave(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	session := NewSession(s)
	session.Do(AddStep)
	raw, _ := s.Raw()

	session.Select(2)
	if session.State().Current != 2 {
		t.Errorf("Current = %d", session.State().Current)
	}
	after, _ := s.Raw()
	if string(raw) != string(after) {
		t.Error("Select() wrote to the store")
	}
}

func TestSession_RemovedIDNotReusedAfterReload(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	session := NewSession(s)
	session.Do(AddStep)

	removed := session.State().Settings.Steps[1].ID
	if err := session.Apply(func(st State) (State, error) {
		return RemoveStep(st, removed)
	}); err != nil {
		t.Fatalf("RemoveStep() error = %v", err)
	}

	reloaded := NewSession(s)
	reloaded.Do(AddStep)
	added := reloaded.State().Settings.Steps[1].ID
	if added == removed {
		t.Errorf("added step got removed ID %d", removed)
	}
	if added <= removed {
		t.Errorf("added ID = %d, want above %d", added, removed)
	}
}

func TestSession_ZeroPositionSurvivesReload(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	session := NewSession(s)
	id := session.State().Settings.Steps[0].ID

	if err := session.Apply(func(st State) (State, error) {
		return UpdateControl(st, id, ControlPatch{Left: Ptr(0), Top: Ptr(0)})
	}); err != nil {
		t.Fatalf("UpdateControl() error = %v", err)
	}

	bs := NewSession(s).State().CurrentStep().ButtonSettings
	if bs.Left != settings.Pct(0) || bs.Top != settings.Pct(0) {
		t.Errorf("reloaded position = %v,%v, want 0,0", bs.Left, bs.Top)
	}
}
