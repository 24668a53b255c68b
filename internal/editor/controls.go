package editor

import (
	"fmt"

	"github.com/muurk/clickme/internal/settings"
)

// AssignControl makes t the step's active control type. The values of the
// previously active type are retained and restored when that type is
// assigned again. Assigning the already active type is a no-op.
func AssignControl(st State, id settings.StepID, t settings.ControlType) (State, error) {
	if err := settings.ValidateControlType(t); err != nil {
		return st, err
	}

	return update(st, "assign-control", id, func(step *settings.Step) error {
		if step.HasControl() && step.Button == t {
			return nil
		}

		if step.HasControl() {
			if step.Retained == nil {
				step.Retained = make(map[settings.ControlType]settings.ButtonSettings)
			}
			step.Retained[step.Button] = *step.ButtonSettings
		}

		bs, ok := step.Retained[t]
		if ok {
			delete(step.Retained, t)
			if len(step.Retained) == 0 {
				step.Retained = nil
			}
		} else {
			bs = settings.DefaultControl(t)
		}
		bs.Type = t

		step.Button = t
		step.ButtonSettings = &bs
		return nil
	})
}

// RemoveControl removes the step's control along with any retained values.
func RemoveControl(st State, id settings.StepID) (State, error) {
	return update(st, "remove-control", id, func(step *settings.Step) error {
		step.Button = ""
		step.ButtonSettings = nil
		step.Retained = nil
		return nil
	})
}

// ControlPatch is a typed edit of the active control. Nil fields are left
// unchanged. Setting a field that the active control type does not have is
// a validation error.
type ControlPatch struct {
	Left *int
	Top  *int

	Width  *int
	Height *int
	Text   *string
	Color  *string

	Step      *int
	TotalDots *int
	Fly       *settings.Point
	Cows      *[3]settings.Point
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}

// Empty reports whether the patch changes nothing.
func (p ControlPatch) Empty() bool {
	return p == ControlPatch{}
}

// typedFields maps each set type-specific field to the control type owning it.
func (p ControlPatch) typedFields() map[string]settings.ControlType {
	set := make(map[string]settings.ControlType)
	add := func(name string, isSet bool, t settings.ControlType) {
		if isSet {
			set[name] = t
		}
	}
	add("width", p.Width != nil, settings.ControlNormal)
	add("height", p.Height != nil, settings.ControlNormal)
	add("text", p.Text != nil, settings.ControlNormal)
	add("color", p.Color != nil, settings.ControlNormal)
	add("step", p.Step != nil, settings.ControlCaptchaPuzzle)
	add("totalDots", p.TotalDots != nil, settings.ControlCaptchaPuzzle)
	add("fly", p.Fly != nil, settings.ControlCaptchaPuzzle)
	add("cows", p.Cows != nil, settings.ControlCaptchaPuzzle)
	return set
}

// validate checks the patch against control type t.
func (p ControlPatch) validate(t settings.ControlType) error {
	for name, owner := range p.typedFields() {
		if owner != t {
			return settings.NewValidationError(fmt.Sprintf("%s does not apply to a %s control", name, t.Label()))
		}
	}

	if p.Left != nil {
		if err := settings.ValidatePosition("left", *p.Left); err != nil {
			return err
		}
	}
	if p.Top != nil {
		if err := settings.ValidatePosition("top", *p.Top); err != nil {
			return err
		}
	}
	if p.Width != nil && *p.Width < 1 {
		return settings.NewValidationError(fmt.Sprintf("button width must be positive, got %d", *p.Width))
	}
	if p.Height != nil && *p.Height < 1 {
		return settings.NewValidationError(fmt.Sprintf("button height must be positive, got %d", *p.Height))
	}
	if p.Text != nil && settings.CleanText(*p.Text) == "" {
		return settings.NewValidationError("button text cannot be empty")
	}
	if p.Color != nil {
		if err := settings.ValidateColor(*p.Color); err != nil {
			return err
		}
	}
	if p.Step != nil {
		if err := settings.ValidateIndicator("puzzle step", *p.Step); err != nil {
			return err
		}
	}
	if p.TotalDots != nil {
		if err := settings.ValidateIndicator("total dots", *p.TotalDots); err != nil {
			return err
		}
	}
	return nil
}

func (p ControlPatch) apply(bs *settings.ButtonSettings) {
	if p.Left != nil {
		bs.Left = settings.Pct(*p.Left)
	}
	if p.Top != nil {
		bs.Top = settings.Pct(*p.Top)
	}
	if p.Width != nil {
		bs.Width = settings.Number(*p.Width)
	}
	if p.Height != nil {
		bs.Height = settings.Number(*p.Height)
	}
	if p.Text != nil {
		bs.Text = settings.CleanText(*p.Text)
	}
	if p.Color != nil {
		bs.Color = *p.Color
	}
	if p.Step != nil {
		bs.Step = settings.Number(*p.Step)
	}
	if p.TotalDots != nil {
		bs.TotalDots = settings.Number(*p.TotalDots)
	}
	if p.Fly != nil {
		bs.FlyLeft, bs.FlyTop = settings.Number(p.Fly.Left), settings.Number(p.Fly.Top)
	}
	if p.Cows != nil {
		bs.SetCows(*p.Cows)
	}
}

// UpdateControl applies a patch to the step's active control.
func UpdateControl(st State, id settings.StepID, patch ControlPatch) (State, error) {
	return update(st, "update-control", id, func(step *settings.Step) error {
		if !step.HasControl() {
			return settings.NewNotFoundError(fmt.Sprintf("step %d has no control", st.Position(id)))
		}
		if err := patch.validate(step.Button); err != nil {
			return err
		}
		patch.apply(step.ButtonSettings)
		return nil
	})
}

// CenterControl moves the step's control to the centre of the frame.
func CenterControl(st State, id settings.StepID) (State, error) {
	return UpdateControl(st, id, ControlPatch{
		Left: Ptr(settings.CenterPosition),
		Top:  Ptr(settings.CenterPosition),
	})
}

// IntN is the random source used by RandomizeCows. *rand.Rand from
// math/rand/v2 satisfies it.
type IntN interface {
	IntN(n int) int
}

// RandomizeCows scatters the three cow sprites of a puzzle control within
// the sprite scene.
func RandomizeCows(st State, id settings.StepID, rng IntN) (State, error) {
	step := st.Settings.StepByID(id)
	if step == nil {
		return st, stepNotFound(id)
	}
	if step.Button != settings.ControlCaptchaPuzzle {
		return st, settings.NewValidationError("cows can only be randomized on a Captcha Puzzle control")
	}

	var cows [3]settings.Point
	for i := range cows {
		cows[i] = settings.Point{
			Left: settings.CowLeftMin + rng.IntN(settings.CowLeftMax-settings.CowLeftMin+1),
			Top:  settings.CowTopMin + rng.IntN(settings.CowTopMax-settings.CowTopMin+1),
		}
	}
	return UpdateControl(st, id, ControlPatch{Cows: &cows})
}
