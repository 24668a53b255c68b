package render

import (
	"github.com/muurk/clickme/internal/editor"
	"github.com/muurk/clickme/internal/settings"
)

// FrameSize is the embedded frame size in pixels.
type FrameSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// View is what the page shows for one step.
type View struct {
	Position int       `json:"position"`
	Name     string    `json:"name"`
	Frame    FrameSize `json:"frame"`
	Timeout  int       `json:"timeout"`

	// Control is the single visible control, nil when the step has none.
	Control *Control `json:"control"`
	Script  string   `json:"script,omitempty"`
}

// Hidden returns the control types that are not displayed for the step.
func (v View) Hidden() []settings.ControlType {
	var hidden []settings.ControlType
	for _, t := range settings.ControlTypes {
		if v.Control == nil || v.Control.Type != t {
			hidden = append(hidden, t)
		}
	}
	return hidden
}

// Visible reports whether a control of type t is displayed.
func (v View) Visible(t settings.ControlType) bool {
	return v.Control != nil && v.Control.Type == t
}

// StepView renders the step at a 1-based position.
func StepView(position int, step *settings.Step) View {
	var control *Control
	if step.HasControl() {
		control = ControlFor(step.ButtonSettings)
	}
	return View{
		Position: position,
		Name:     step.DisplayName(position),
		Frame: FrameSize{
			Width:  step.Frame.Width.Or(settings.DefaultFrameWidth),
			Height: step.Frame.Height.Or(settings.DefaultFrameHeight),
		},
		Timeout: step.Timeout.Or(settings.DefaultTimeout),
		Control: control,
		Script:  step.Script,
	}
}

// Preview returns the view of the currently displayed step. With no steps it
// shows an empty default-size frame.
func Preview(st editor.State) View {
	step := st.CurrentStep()
	if step == nil {
		return View{
			Frame:   FrameSize{Width: settings.DefaultFrameWidth, Height: settings.DefaultFrameHeight},
			Timeout: settings.DefaultTimeout,
		}
	}
	return StepView(st.Current, step)
}

// Views renders every step in display order.
func Views(s *settings.Settings) []View {
	views := make([]View, len(s.Steps))
	for i, step := range s.Steps {
		views[i] = StepView(i+1, step)
	}
	return views
}
