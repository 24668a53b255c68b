package editor

import (
	"fmt"
	"strings"

	"github.com/muurk/clickme/internal/logging"
	"github.com/muurk/clickme/internal/settings"
	"go.uber.org/zap"
)

// Token is a palette element that can be dropped onto a step.
type Token string

const (
	TokenButton Token = "Button"
	TokenScript Token = "JS Script"
)

// Tokens lists the palette in display order.
var Tokens = []Token{TokenButton, TokenScript}

// ParseToken accepts a token label or a short alias (button, script, js).
func ParseToken(s string) (Token, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "button":
		return TokenButton, nil
	case "js script", "script", "js":
		return TokenScript, nil
	default:
		return "", settings.NewValidationError(fmt.Sprintf("unknown element %q (expected button or script)", s))
	}
}

// DropOnList is the target for a drop onto the step list rather than a
// particular step.
const DropOnList settings.StepID = 0

// Drop instantiates a palette element on a step. A drop onto the list goes
// to the first step, which is created if the document has none. Dropping an
// element the step already has is ignored and reported as not applied.
func Drop(st State, tok Token, target settings.StepID) (State, bool, error) {
	if tok != TokenButton && tok != TokenScript {
		return st, false, settings.NewValidationError(fmt.Sprintf("unknown element %q", tok))
	}

	if target == DropOnList {
		if st.StepCount() == 0 {
			st = AddStep(st)
		}
		target = st.Settings.Steps[0].ID
	}

	step := st.Settings.StepByID(target)
	if step == nil {
		return st, false, stepNotFound(target)
	}

	var (
		next State
		err  error
	)
	switch tok {
	case TokenButton:
		if step.HasControl() {
			logging.Debug("Step already has a button, drop ignored", zap.Int("step_id", int(target)))
			return st, false, nil
		}
		next, err = AssignControl(st, target, settings.ControlNormal)
	case TokenScript:
		if step.HasScript() {
			logging.Debug("Step already has a script, drop ignored", zap.Int("step_id", int(target)))
			return st, false, nil
		}
		next, err = SetScript(st, target, settings.DefaultScript)
	}
	if err != nil {
		return st, false, err
	}
	return next, true, nil
}
