package settings

import (
	"fmt"
	"net/url"
	"regexp"
)

// Frame and timeout limits.
const (
	MaxFrameSize = 10000
	MaxTimeout   = 10 * 60 * 1000
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsValidBackground reports whether b is a known background.
func IsValidBackground(b Background) bool {
	for _, v := range Backgrounds {
		if v == b {
			return true
		}
	}
	return false
}

// IsValidControlType reports whether t is a known control type.
func IsValidControlType(t ControlType) bool {
	for _, v := range ControlTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidateURL validates the framed page URL. Only absolute http(s) URLs can
// be framed.
func ValidateURL(raw string) error {
	if raw == "" {
		return NewValidationError("URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid URL %q: %v", raw, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return NewValidationError(fmt.Sprintf("URL must use http or https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return NewValidationError(fmt.Sprintf("URL has no host: %q", raw))
	}
	return nil
}

// ValidateBackground validates a background name.
func ValidateBackground(b Background) error {
	if !IsValidBackground(b) {
		return NewValidationError(fmt.Sprintf("background must be one of none, white, social-media, got '%s'", b))
	}
	return nil
}

// ValidateControlType validates a control type name.
func ValidateControlType(t ControlType) error {
	if !IsValidControlType(t) {
		return NewValidationError(fmt.Sprintf("control type must be one of normal, captcha-checkbox, captcha-puzzle, got '%s'", t))
	}
	return nil
}

// ValidateFrame validates frame dimensions in pixels.
func ValidateFrame(width, height int) error {
	if width < 1 || width > MaxFrameSize {
		return NewValidationError(fmt.Sprintf("frame width must be 1-%d, got %d", MaxFrameSize, width))
	}
	if height < 1 || height > MaxFrameSize {
		return NewValidationError(fmt.Sprintf("frame height must be 1-%d, got %d", MaxFrameSize, height))
	}
	return nil
}

// ValidateTimeout validates a step timeout in milliseconds.
func ValidateTimeout(ms int) error {
	if ms < 1 || ms > MaxTimeout {
		return NewValidationError(fmt.Sprintf("timeout must be 1-%d ms, got %d", MaxTimeout, ms))
	}
	return nil
}

// ValidatePosition validates a percentage position.
func ValidatePosition(name string, pct int) error {
	if pct < 0 || pct > 100 {
		return NewValidationError(fmt.Sprintf("%s must be 0-100%%, got %d", name, pct))
	}
	return nil
}

// ValidateColor validates a CSS hex colour (#rgb, #rrggbb or #rrggbbaa).
func ValidateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return NewValidationError(fmt.Sprintf("color must be a hex value like #3a86ff, got '%s'", color))
	}
	return nil
}

// ValidateIndicator validates a puzzle indicator value. Out-of-range values
// are clamped when rendered; validation reports them so the user knows.
func ValidateIndicator(name string, v int) error {
	if v < MinIndicator || v > MaxIndicator {
		return NewValidationError(fmt.Sprintf("%s must be %d-%d, got %d", name, MinIndicator, MaxIndicator, v))
	}
	return nil
}

// ValidateControl validates a control descriptor.
// Returns a slice of validation errors (empty if valid).
func ValidateControl(bs *ButtonSettings) []error {
	var errs []error

	if err := ValidateControlType(bs.Type); err != nil {
		return []error{err}
	}
	if err := ValidatePosition("left", bs.Left.Or(CenterPosition)); err != nil {
		errs = append(errs, err)
	}
	if err := ValidatePosition("top", bs.Top.Or(CenterPosition)); err != nil {
		errs = append(errs, err)
	}

	switch bs.Type {
	case ControlNormal:
		if bs.Width < 1 || bs.Height < 1 {
			errs = append(errs, NewValidationError(fmt.Sprintf("button size must be positive, got %dx%d", bs.Width, bs.Height)))
		}
		if err := ValidateColor(bs.Color); err != nil {
			errs = append(errs, err)
		}
	case ControlCaptchaPuzzle:
		if err := ValidateIndicator("puzzle step", int(bs.Step)); err != nil {
			errs = append(errs, err)
		}
		if err := ValidateIndicator("total dots", int(bs.TotalDots)); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// ValidateStep validates a step at a 1-based position.
func ValidateStep(position int, step *Step) []error {
	var errs []error
	prefix := step.DisplayName(position)

	if err := ValidateFrame(int(step.Frame.Width), int(step.Frame.Height)); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
	}
	if err := ValidateTimeout(int(step.Timeout)); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
	}
	if step.HasControl() {
		for _, err := range ValidateControl(step.ButtonSettings) {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
	}

	return errs
}

// ValidateSettings validates a complete document.
// Returns a slice of validation errors (empty if valid).
func ValidateSettings(s *Settings) []error {
	var errs []error

	if err := ValidateURL(s.URL); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateBackground(s.Background); err != nil {
		errs = append(errs, err)
	}
	if len(s.Steps) == 0 {
		errs = append(errs, NewValidationError("document has no steps"))
	}

	seen := make(map[StepID]bool, len(s.Steps))
	for i, step := range s.Steps {
		if step.ID != 0 && seen[step.ID] {
			errs = append(errs, NewValidationError(fmt.Sprintf("duplicate step id %d", step.ID)))
		}
		seen[step.ID] = true
		errs = append(errs, ValidateStep(i+1, step)...)
	}

	return errs
}
