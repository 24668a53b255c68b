package render

import (
	"fmt"
	"html/template"

	"github.com/muurk/clickme/internal/settings"
)

// Indicator dot colours.
const (
	ActiveDotColor   = "#00aaff"
	InactiveDotColor = "#14141462"
)

// Element IDs of the control widgets in the page.
var elementIDs = map[settings.ControlType]string{
	settings.ControlNormal:          "normal-button",
	settings.ControlCaptchaCheckbox: "captcha-checkbox-button",
	settings.ControlCaptchaPuzzle:   "captcha-puzzle-button",
}

// ElementID returns the page element ID of a control widget.
func ElementID(t settings.ControlType) string {
	return elementIDs[t]
}

// ClampIndicator maps a stored indicator value into [1,4]. Zero (unset or
// non-numeric) yields def.
func ClampIndicator(v, def int) int {
	if v == 0 {
		v = def
	}
	return min(max(v, settings.MinIndicator), settings.MaxIndicator)
}

// Dot is one puzzle indicator dot.
type Dot struct {
	Index   int    `json:"index"`
	Visible bool   `json:"visible"`
	Active  bool   `json:"active"`
	Color   string `json:"color"`
}

// PuzzleDots returns the four indicator dots for a puzzle at step of total.
// Both are clamped to [1,4]. Dot i is visible iff i <= total and active iff
// i == step.
func PuzzleDots(step, total int) []Dot {
	step = ClampIndicator(step, settings.DefaultPuzzleStep)
	total = ClampIndicator(total, settings.DefaultTotalDots)

	dots := make([]Dot, settings.MaxIndicator)
	for i := range dots {
		n := i + 1
		d := Dot{Index: n, Visible: n <= total, Active: n == step, Color: InactiveDotColor}
		if d.Active {
			d.Color = ActiveDotColor
		}
		dots[i] = d
	}
	return dots
}

// BackgroundImage returns the puzzle background image for an indicator step.
func BackgroundImage(step int) string {
	return fmt.Sprintf("img/bg%d.png", ClampIndicator(step, settings.DefaultPuzzleStep))
}

// PositionStyle returns the CSS placing a control centred on a percentage
// position in the frame.
func PositionStyle(left, top int) template.CSS {
	return template.CSS(fmt.Sprintf("left: %d%%; top: %d%%; transform: translate(-50%%, -50%%);", left, top))
}

// Control is the rendered form of a control descriptor.
type Control struct {
	Type      settings.ControlType `json:"type"`
	ElementID string               `json:"elementId"`
	Left      int                  `json:"left"`
	Top       int                  `json:"top"`
	Style     template.CSS         `json:"style"`

	// Normal button
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Text   string `json:"text,omitempty"`
	Color  string `json:"color,omitempty"`

	// Puzzle
	Dots       []Dot            `json:"dots,omitempty"`
	Background string           `json:"background,omitempty"`
	Fly        *settings.Point  `json:"fly,omitempty"`
	Cows       []settings.Point `json:"cows,omitempty"`
	Sprites    []Sprite         `json:"-"`
}

// Sprite is a positioned decorative image in the puzzle scene.
type Sprite struct {
	Class string
	Image string
	Style template.CSS
}

func spriteStyle(p settings.Point) template.CSS {
	return template.CSS(fmt.Sprintf("left: %dpx; top: %dpx;", p.Left, p.Top))
}

// ControlFor renders a control descriptor. It returns nil for nil input.
func ControlFor(bs *settings.ButtonSettings) *Control {
	if bs == nil || !settings.IsValidControlType(bs.Type) {
		return nil
	}

	left := bs.Left.Or(settings.CenterPosition)
	top := bs.Top.Or(settings.CenterPosition)
	c := &Control{
		Type:      bs.Type,
		ElementID: ElementID(bs.Type),
		Left:      left,
		Top:       top,
	}

	switch bs.Type {
	case settings.ControlNormal:
		c.Width = bs.Width.Or(settings.DefaultButtonWidth)
		c.Height = bs.Height.Or(settings.DefaultButtonHeight)
		c.Text = bs.Text
		if c.Text == "" {
			c.Text = settings.DefaultButtonText
		}
		c.Color = bs.Color
		if settings.ValidateColor(c.Color) != nil {
			c.Color = settings.DefaultButtonColor
		}
		c.Style = template.CSS(fmt.Sprintf("%s width: %dpx; height: %dpx; background-color: %s;",
			PositionStyle(left, top), c.Width, c.Height, c.Color))

	case settings.ControlCaptchaCheckbox:
		c.Style = PositionStyle(left, top)

	case settings.ControlCaptchaPuzzle:
		step := int(bs.Step)
		c.Dots = PuzzleDots(step, int(bs.TotalDots))
		c.Background = BackgroundImage(step)
		fly := bs.Fly()
		c.Fly = &fly
		cows := bs.Cows()
		c.Cows = cows[:]
		c.Sprites = []Sprite{{Class: "fly-1", Image: "img/fly.png", Style: spriteStyle(fly)}}
		for i, cow := range cows {
			c.Sprites = append(c.Sprites, Sprite{Class: fmt.Sprintf("cow-%d", i+1), Image: "img/cow.png", Style: spriteStyle(cow)})
		}
		c.Style = PositionStyle(left, top)
	}

	return c
}
