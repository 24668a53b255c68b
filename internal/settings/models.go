package settings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StorageKey is the key the settings document is persisted under.
const StorageKey = "clickjackingSettings"

// Background selects the decoy layer drawn behind the framed page.
type Background string

const (
	BackgroundNone        Background = "none"
	BackgroundWhite       Background = "white"
	BackgroundSocialMedia Background = "social-media"
)

// Backgrounds lists the valid backgrounds in display order.
var Backgrounds = []Background{BackgroundNone, BackgroundWhite, BackgroundSocialMedia}

// ControlType identifies one of the mutually exclusive preview widgets.
type ControlType string

const (
	ControlNormal          ControlType = "normal"
	ControlCaptchaCheckbox ControlType = "captcha-checkbox"
	ControlCaptchaPuzzle   ControlType = "captcha-puzzle"
)

// ControlTypes lists the valid control types in display order.
var ControlTypes = []ControlType{ControlNormal, ControlCaptchaCheckbox, ControlCaptchaPuzzle}

// ControlTypeLabels maps control types to human-readable names.
var ControlTypeLabels = map[ControlType]string{
	ControlNormal:          "Button",
	ControlCaptchaCheckbox: "Captcha Checkbox",
	ControlCaptchaPuzzle:   "Captcha Puzzle",
}

// Label returns the human-readable name of the control type.
func (c ControlType) Label() string {
	if label, ok := ControlTypeLabels[c]; ok {
		return label
	}
	return string(c)
}

// StepID is a stable step identifier. It is independent of display order
// and is never reused within a document.
type StepID int

// Number is an integer that also decodes from numeric strings, empty strings
// and null. Zero means unset.
type Number int

// UnmarshalJSON accepts 800, "800", "", null. Anything that does not parse
// as a number decodes to zero.
func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = 0
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(int(f))
	return nil
}

// Or returns n as an int, or def when n is unset.
func (n Number) Or(def int) int {
	if n == 0 {
		return def
	}
	return int(n)
}

// Percent is an optional percentage. The zero value is unset, so a stored
// 0% stays distinct from a missing value.
type Percent struct {
	value int
	set   bool
}

// Pct returns a set percentage.
func Pct(v int) Percent {
	return Percent{value: v, set: true}
}

// IsSet reports whether p holds a value.
func (p Percent) IsSet() bool {
	return p.set
}

// Or returns the value of p, or def when p is unset.
func (p Percent) Or(def int) int {
	if !p.set {
		return def
	}
	return p.value
}

func (p Percent) String() string {
	if !p.set {
		return "unset"
	}
	return strconv.Itoa(p.value)
}

// MarshalJSON writes the value, or null when unset.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(p.value)), nil
}

// UnmarshalJSON accepts 0, "0", "", null. Empty, null and non-numeric values
// decode as unset.
func (p *Percent) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*p = Percent{}
		return nil
	}
	*p = Pct(int(f))
	return nil
}

// Frame is the embedded frame size in pixels.
type Frame struct {
	Width  Number `json:"width"`
	Height Number `json:"height"`
}

// Point is a pixel offset inside the puzzle sprite scene.
type Point struct {
	Left int `json:"left"`
	Top  int `json:"top"`
}

// ButtonSettings holds the control descriptor of a step. It is a flat record:
// Type selects which fields are meaningful.
//
//   - normal: Left, Top, Width, Height, Text, Color
//   - captcha-checkbox: Left, Top
//   - captcha-puzzle: Left, Top, Step, TotalDots, Fly*, Cow*
//
// Left and Top are percentages of the frame area.
type ButtonSettings struct {
	Type ControlType `json:"type"`

	Left Percent `json:"left"`
	Top  Percent `json:"top"`

	Width  Number `json:"width,omitempty"`
	Height Number `json:"height,omitempty"`
	Text   string `json:"text,omitempty"`
	Color  string `json:"color,omitempty"`

	Step      Number `json:"step,omitempty"`
	TotalDots Number `json:"totalDots,omitempty"`
	FlyLeft   Number `json:"flyLeft,omitempty"`
	FlyTop    Number `json:"flyTop,omitempty"`
	Cow1Left  Number `json:"cow1Left,omitempty"`
	Cow1Top   Number `json:"cow1Top,omitempty"`
	Cow2Left  Number `json:"cow2Left,omitempty"`
	Cow2Top   Number `json:"cow2Top,omitempty"`
	Cow3Left  Number `json:"cow3Left,omitempty"`
	Cow3Top   Number `json:"cow3Top,omitempty"`
}

// Fly returns the fly sprite offset, with defaults for unset fields.
func (b *ButtonSettings) Fly() Point {
	return Point{Left: b.FlyLeft.Or(DefaultFlyLeft), Top: b.FlyTop.Or(DefaultFlyTop)}
}

// Cows returns the three cow sprite offsets, with defaults for unset fields.
func (b *ButtonSettings) Cows() [3]Point {
	return [3]Point{
		{Left: b.Cow1Left.Or(DefaultCowPositions[0].Left), Top: b.Cow1Top.Or(DefaultCowPositions[0].Top)},
		{Left: b.Cow2Left.Or(DefaultCowPositions[1].Left), Top: b.Cow2Top.Or(DefaultCowPositions[1].Top)},
		{Left: b.Cow3Left.Or(DefaultCowPositions[2].Left), Top: b.Cow3Top.Or(DefaultCowPositions[2].Top)},
	}
}

// SetCows stores the three cow sprite offsets.
func (b *ButtonSettings) SetCows(cows [3]Point) {
	b.Cow1Left, b.Cow1Top = Number(cows[0].Left), Number(cows[0].Top)
	b.Cow2Left, b.Cow2Top = Number(cows[1].Left), Number(cows[1].Top)
	b.Cow3Left, b.Cow3Top = Number(cows[2].Left), Number(cows[2].Top)
}

// Step is one stage of the demonstration sequence.
type Step struct {
	ID StepID `json:"id,omitempty"`

	// Name is the user-chosen name. Empty means the default "Step N".
	Name string `json:"name"`

	Frame Frame `json:"iframe"`

	// Button is the active control type, empty when the step has no control.
	Button         ControlType     `json:"button,omitempty"`
	ButtonSettings *ButtonSettings `json:"buttonSettings,omitempty"`

	// Retained keeps sub-settings of previously active control types.
	Retained map[ControlType]ButtonSettings `json:"retainedSettings,omitempty"`

	Script  string `json:"script,omitempty"`
	Timeout Number `json:"timeout"`
}

// DefaultStepName returns the name shown for a step without a custom name.
func DefaultStepName(position int) string {
	return fmt.Sprintf("Step %d", position)
}

// StepKey returns the wire key for the step at a 1-based position.
func StepKey(position int) string {
	return fmt.Sprintf("step%d", position)
}

// ParseStepKey returns the position encoded in a "stepN" key.
func ParseStepKey(key string) (int, bool) {
	if !strings.HasPrefix(key, "step") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(key, "step"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// DisplayName returns the name shown for the step at a 1-based position.
func (s *Step) DisplayName(position int) string {
	if s.Name == "" {
		return DefaultStepName(position)
	}
	return s.Name
}

// HasControl reports whether the step has an active control.
func (s *Step) HasControl() bool {
	return s.Button != "" && s.ButtonSettings != nil
}

// HasScript reports whether the step carries a script payload.
func (s *Step) HasScript() bool {
	return strings.TrimSpace(s.Script) != ""
}

// Clone returns a deep copy of the step.
func (s *Step) Clone() *Step {
	out := *s
	if s.ButtonSettings != nil {
		bs := *s.ButtonSettings
		out.ButtonSettings = &bs
	}
	if s.Retained != nil {
		out.Retained = make(map[ControlType]ButtonSettings, len(s.Retained))
		for k, v := range s.Retained {
			out.Retained[k] = v
		}
	}
	return &out
}

// Settings is the complete document.
type Settings struct {
	URL            string
	Background     Background
	Credentialless bool
	PageTitle      string

	// Steps in display order.
	Steps []*Step

	// NextID is the ID the next new step gets. It only grows, so IDs of
	// removed steps are not handed out again.
	NextID StepID
}

// AllocateID returns a fresh step ID and advances the allocator.
func (s *Settings) AllocateID() StepID {
	if s.NextID < 1 {
		s.NextID = 1
	}
	id := s.NextID
	s.NextID++
	return id
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	out := *s
	out.Steps = make([]*Step, len(s.Steps))
	for i, step := range s.Steps {
		out.Steps[i] = step.Clone()
	}
	return &out
}

// IndexOf returns the 0-based index of the step with the given ID, or -1.
func (s *Settings) IndexOf(id StepID) int {
	for i, step := range s.Steps {
		if step.ID == id {
			return i
		}
	}
	return -1
}

// StepByID returns the step with the given ID, or nil.
func (s *Settings) StepByID(id StepID) *Step {
	if i := s.IndexOf(id); i >= 0 {
		return s.Steps[i]
	}
	return nil
}

// StepAt returns the step at a 1-based position, or nil when out of range.
func (s *Settings) StepAt(position int) *Step {
	if position < 1 || position > len(s.Steps) {
		return nil
	}
	return s.Steps[position-1]
}

// Title returns the page title, or the default title when unset.
func (s *Settings) Title() string {
	if strings.TrimSpace(s.PageTitle) == "" {
		return DefaultPageTitle
	}
	return s.PageTitle
}
