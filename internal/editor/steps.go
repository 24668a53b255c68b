package editor

import (
	"strings"

	"github.com/muurk/clickme/internal/logging"
	"github.com/muurk/clickme/internal/settings"
	"go.uber.org/zap"
)

func logStep(op string, st State, id settings.StepID) {
	logging.LogStepChange(op, int(id), st.Position(id))
}

// AddStep appends a step with default frame size and timeout. The current
// step does not change, except that the first step of an empty document
// becomes current.
func AddStep(st State) State {
	next := st.clone()

	id := next.Settings.AllocateID()
	next.Settings.Steps = append(next.Settings.Steps, settings.NewStep(id))
	if next.Current == 0 {
		next.Current = 1
	}

	logStep("add", next, id)
	return next
}

// AddSeparator appends a step and selects it.
func AddSeparator(st State) State {
	next := AddStep(st)
	next.Current = next.StepCount()
	return next
}

// RemoveStep deletes the step with the given ID. Later steps move up one
// position. The selection follows the displayed step, or moves to the step
// that took the removed one's place.
func RemoveStep(st State, id settings.StepID) (State, error) {
	idx := st.Settings.IndexOf(id)
	if idx < 0 {
		logging.Warn("Cannot remove step", zap.Int("step_id", int(id)))
		return st, stepNotFound(id)
	}

	next := st.clone()
	steps := next.Settings.Steps
	next.Settings.Steps = append(steps[:idx:idx], steps[idx+1:]...)

	pos := idx + 1
	switch {
	case next.Current > pos:
		next.Current--
	case next.Current > next.StepCount():
		next.Current = next.StepCount()
	}

	logging.LogStepChange("remove", int(id), pos)
	return next, nil
}

// ClearSteps replaces all steps with a single default step.
func ClearSteps(st State) State {
	next := st.clone()

	id := next.Settings.AllocateID()
	next.Settings.Steps = []*settings.Step{settings.NewStep(id)}
	next.Current = 1

	logStep("clear", next, id)
	return next
}

// SelectStep displays the step at a 1-based position. Out-of-range positions
// are logged and leave the state unchanged.
func SelectStep(st State, position int) State {
	if position < 1 || position > st.StepCount() {
		logging.Warn("Step selection out of range",
			zap.Int("requested", position),
			zap.Int("steps", st.StepCount()),
		)
		return st
	}

	st.Current = position
	return st
}

// MoveStep moves the step with the given ID to a new 1-based position. The
// selection stays on the displayed step.
func MoveStep(st State, id settings.StepID, position int) (State, error) {
	idx := st.Settings.IndexOf(id)
	if idx < 0 {
		return st, stepNotFound(id)
	}
	if position < 1 || position > st.StepCount() {
		return st, stepPositionError(position, st.StepCount())
	}

	next := st.clone()
	var currentID settings.StepID
	if cur := next.CurrentStep(); cur != nil {
		currentID = cur.ID
	}

	steps := next.Settings.Steps
	moved := steps[idx]
	steps = append(steps[:idx], steps[idx+1:]...)
	steps = append(steps[:position-1], append([]*settings.Step{moved}, steps[position-1:]...)...)
	next.Settings.Steps = steps

	if currentID != 0 {
		next.Current = next.Position(currentID)
	}

	logStep("move", next, id)
	return next, nil
}

// RenameStep sets a step's name. Markup is stripped; an empty name or one
// equal to the positional default restores default naming.
func RenameStep(st State, id settings.StepID, name string) (State, error) {
	return update(st, "rename", id, func(step *settings.Step) error {
		clean := settings.CleanText(name)
		if strings.EqualFold(clean, settings.DefaultStepName(st.Position(id))) {
			clean = ""
		}
		step.Name = clean
		return nil
	})
}

// SetFrame sets a step's frame size in pixels.
func SetFrame(st State, id settings.StepID, width, height int) (State, error) {
	if err := settings.ValidateFrame(width, height); err != nil {
		return st, err
	}
	return update(st, "frame", id, func(step *settings.Step) error {
		step.Frame = settings.Frame{Width: settings.Number(width), Height: settings.Number(height)}
		return nil
	})
}

// SetTimeout sets how long a step is shown before the sequence advances.
func SetTimeout(st State, id settings.StepID, ms int) (State, error) {
	if err := settings.ValidateTimeout(ms); err != nil {
		return st, err
	}
	return update(st, "timeout", id, func(step *settings.Step) error {
		step.Timeout = settings.Number(ms)
		return nil
	})
}

// SetScript sets a step's script payload. An empty payload removes it.
func SetScript(st State, id settings.StepID, script string) (State, error) {
	return update(st, "script", id, func(step *settings.Step) error {
		if strings.TrimSpace(script) == "" {
			step.Script = ""
			return nil
		}
		step.Script = script
		return nil
	})
}

// RemoveScript removes a step's script payload.
func RemoveScript(st State, id settings.StepID) (State, error) {
	return SetScript(st, id, "")
}
