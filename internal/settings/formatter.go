package settings

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the document
func (s *Settings) Summary() string {
	return fmt.Sprintf("%s: %d step(s) framing %s (background: %s)", s.Title(), len(s.Steps), s.URL, s.Background)
}

// Summary returns a one-line summary of the control
func (b *ButtonSettings) Summary() string {
	left, top := b.Left.Or(CenterPosition), b.Top.Or(CenterPosition)
	switch b.Type {
	case ControlNormal:
		return fmt.Sprintf("%s %q %dx%d %s at %d%%,%d%%", b.Type.Label(), b.Text, b.Width, b.Height, b.Color, left, top)
	case ControlCaptchaPuzzle:
		return fmt.Sprintf("%s step %d/%d at %d%%,%d%%", b.Type.Label(), b.Step, b.TotalDots, left, top)
	default:
		return fmt.Sprintf("%s at %d%%,%d%%", b.Type.Label(), left, top)
	}
}

// Summary returns a one-line summary of the step at a 1-based position
func (s *Step) Summary(position int) string {
	control := "no control"
	if s.HasControl() {
		control = s.ButtonSettings.Type.Label()
	}
	script := ""
	if s.HasScript() {
		script = " +script"
	}
	return fmt.Sprintf("%d. %s [%dx%d, %s, %dms]%s", position, s.DisplayName(position), s.Frame.Width, s.Frame.Height, control, s.Timeout, script)
}

// FormatPage returns a formatted string with the page-level settings
func (s *Settings) FormatPage() string {
	var b strings.Builder

	b.WriteString("=== Page ===\n")
	b.WriteString(fmt.Sprintf("Title:          %s\n", s.Title()))
	b.WriteString(fmt.Sprintf("Framed URL:     %s\n", s.URL))
	b.WriteString(fmt.Sprintf("Background:     %s\n", s.Background))
	b.WriteString(fmt.Sprintf("Credentialless: %v\n", s.Credentialless))

	return b.String()
}

// FormatStep returns a formatted string with everything about one step
func (s *Step) FormatStep(position int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s (%s) ===\n", s.DisplayName(position), StepKey(position)))
	b.WriteString(fmt.Sprintf("Frame:   %dx%d\n", s.Frame.Width, s.Frame.Height))
	b.WriteString(fmt.Sprintf("Timeout: %d ms\n", s.Timeout))

	if s.HasControl() {
		b.WriteString(fmt.Sprintf("Control: %s\n", s.ButtonSettings.Summary()))
		if s.ButtonSettings.Type == ControlCaptchaPuzzle {
			fly := s.ButtonSettings.Fly()
			b.WriteString(fmt.Sprintf("  Fly:   (%d, %d)\n", fly.Left, fly.Top))
			for i, cow := range s.ButtonSettings.Cows() {
				b.WriteString(fmt.Sprintf("  Cow %d: (%d, %d)\n", i+1, cow.Left, cow.Top))
			}
		}
	} else {
		b.WriteString("Control: (none)\n")
	}

	if len(s.Retained) > 0 {
		names := make([]string, 0, len(s.Retained))
		for _, t := range ControlTypes {
			if _, ok := s.Retained[t]; ok {
				names = append(names, t.Label())
			}
		}
		b.WriteString(fmt.Sprintf("Retained: %s\n", strings.Join(names, ", ")))
	}

	if s.HasScript() {
		lines := strings.Count(strings.TrimSpace(s.Script), "\n") + 1
		b.WriteString(fmt.Sprintf("Script:  %d line(s)\n", lines))
	} else {
		b.WriteString("Script:  (none)\n")
	}

	return b.String()
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (s *Settings) FormatCompact() string {
	var b strings.Builder

	b.WriteString(s.Summary())
	b.WriteString("\n")
	for i, step := range s.Steps {
		b.WriteString("  ")
		b.WriteString(step.Summary(i + 1))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatDetailed returns a comprehensive formatted string with all settings
func (s *Settings) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║              CLICKME DEMONSTRATION SETTINGS                    ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n")
	b.WriteString("\n")

	b.WriteString(s.FormatPage())
	for i, step := range s.Steps {
		b.WriteString("\n")
		b.WriteString(step.FormatStep(i + 1))
	}

	return b.String()
}
