package editor

import (
	"github.com/muurk/clickme/internal/store"
)

// Session binds editor state to a store. Every successful update is saved.
type Session struct {
	store *store.Store
	state State
}

// NewSession loads the stored document and selects step 1.
func NewSession(s *store.Store) *Session {
	return &Session{store: s, state: NewState(s.Load())}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Store returns the backing store.
func (s *Session) Store() *store.Store {
	return s.store
}

// Apply runs fn on the current state. On success the result becomes the
// current state and is saved; on error nothing changes.
func (s *Session) Apply(fn func(State) (State, error)) error {
	next, err := fn(s.state)
	if err != nil {
		return err
	}
	s.state = next
	s.store.Save(next.Settings)
	return nil
}

// Do runs an update that cannot fail and saves the result.
func (s *Session) Do(fn func(State) State) {
	s.state = fn(s.state)
	s.store.Save(s.state.Settings)
}

// Select changes the displayed step without saving.
func (s *Session) Select(position int) {
	s.state = SelectStep(s.state, position)
}

// Reset replaces the current state without saving.
func (s *Session) Reset(st State) {
	s.state = st
}
