package editor

import (
	"fmt"

	"github.com/muurk/clickme/internal/settings"
)

// State is the editor state: the document plus the currently displayed step.
type State struct {
	Settings *settings.Settings

	// Current is the 1-based position of the displayed step, 0 when the
	// document has no steps.
	Current int
}

// NewState builds editor state from a loaded document. Steps without an ID
// or with a duplicate ID are given fresh ones, an empty document gets a
// default step, and step 1 is selected. The stored ID allocator is kept
// unless it is behind the highest ID in use.
func NewState(doc *settings.Settings) State {
	s := doc.Clone()

	var maxID settings.StepID
	for _, step := range s.Steps {
		if step.ID > maxID {
			maxID = step.ID
		}
	}

	if s.NextID <= maxID {
		s.NextID = maxID + 1
	}

	seen := make(map[settings.StepID]bool, len(s.Steps))
	for _, step := range s.Steps {
		if step.ID <= 0 || seen[step.ID] {
			step.ID = s.AllocateID()
		}
		seen[step.ID] = true
	}

	if len(s.Steps) == 0 {
		s.Steps = append(s.Steps, settings.NewStep(s.AllocateID()))
	}

	return State{Settings: s, Current: 1}
}

// DefaultState returns the state for the default document.
func DefaultState() State {
	return NewState(settings.Default())
}

// clone returns a deep copy that can be modified freely.
func (st State) clone() State {
	st.Settings = st.Settings.Clone()
	return st
}

// StepCount returns the number of steps.
func (st State) StepCount() int {
	return len(st.Settings.Steps)
}

// CurrentStep returns the displayed step, or nil when there are no steps.
func (st State) CurrentStep() *settings.Step {
	return st.Settings.StepAt(st.Current)
}

// Position returns the 1-based position of the step with the given ID, or 0.
func (st State) Position(id settings.StepID) int {
	return st.Settings.IndexOf(id) + 1
}

// IDAt returns the ID of the step at a 1-based position.
func (st State) IDAt(position int) (settings.StepID, error) {
	step := st.Settings.StepAt(position)
	if step == nil {
		return 0, stepPositionError(position, st.StepCount())
	}
	return step.ID, nil
}

// NextID returns the ID the next added step will get.
func (st State) NextID() settings.StepID {
	return st.Settings.NextID
}

// step returns the step with id, or a not-found error.
func (st State) step(id settings.StepID) (*settings.Step, error) {
	step := st.Settings.StepByID(id)
	if step == nil {
		return nil, stepNotFound(id)
	}
	return step, nil
}

func stepNotFound(id settings.StepID) error {
	return settings.NewNotFoundError(fmt.Sprintf("step with id %d not found", id))
}

func stepPositionError(position, count int) error {
	if count == 0 {
		return settings.NewNotFoundError("there are no steps")
	}
	return settings.NewNotFoundError(fmt.Sprintf("step %d not found (valid: 1-%d)", position, count))
}

// update clones st, applies fn to the step with id and returns the result.
func update(st State, op string, id settings.StepID, fn func(*settings.Step) error) (State, error) {
	next := st.clone()
	step, err := next.step(id)
	if err != nil {
		return st, err
	}
	if err := fn(step); err != nil {
		return st, err
	}
	logStep(op, next, id)
	return next, nil
}
