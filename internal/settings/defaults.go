package settings

// Document defaults.
const (
	DefaultURL            = "https://example.com"
	DefaultBackground     = BackgroundSocialMedia
	DefaultCredentialless = true
	DefaultPageTitle      = "ClickMe POC"
)

// Step defaults.
const (
	DefaultFrameWidth  = 800
	DefaultFrameHeight = 600
	DefaultTimeout     = 1000 // milliseconds
)

// Control defaults. Positions are percentages of the frame area.
const (
	CenterPosition = 50

	DefaultButtonWidth  = 100
	DefaultButtonHeight = 40
	DefaultButtonText   = "Click Me"
	DefaultButtonColor  = "#3a86ff"

	MinIndicator      = 1
	MaxIndicator      = 4
	DefaultPuzzleStep = 1
	DefaultTotalDots  = 4

	DefaultFlyLeft = 120
	DefaultFlyTop  = 117
)

// DefaultCowPositions are the cow sprite offsets used when none are set.
var DefaultCowPositions = [3]Point{
	{Left: 140, Top: 140},
	{Left: 160, Top: 160},
	{Left: 180, Top: 180},
}

// Cow randomization bounds, in pixels, inclusive.
const (
	CowLeftMin = 20
	CowLeftMax = 420
	CowTopMin  = 25
	CowTopMax  = 290
)

// DefaultScript is the payload a freshly dropped script element starts with.
const DefaultScript = `<script>
  console.log("Script executed");
  // Your code here
</script>`

// Default returns the document used when nothing is stored or the stored
// document cannot be parsed. Every call returns a fresh value.
func Default() *Settings {
	return &Settings{
		URL:            DefaultURL,
		Background:     DefaultBackground,
		Credentialless: DefaultCredentialless,
		Steps: []*Step{
			{
				ID:     1,
				Frame:  Frame{Width: DefaultFrameWidth, Height: DefaultFrameHeight},
				Button: ControlNormal,
				ButtonSettings: &ButtonSettings{
					Type:   ControlNormal,
					Left:   Pct(20),
					Top:    Pct(45),
					Width:  DefaultButtonWidth,
					Height: DefaultButtonHeight,
					Text:   DefaultButtonText,
					Color:  DefaultButtonColor,
				},
				Timeout: DefaultTimeout,
			},
		},
	}
}

// NewStep returns a step with default frame size and timeout and no control.
func NewStep(id StepID) *Step {
	return &Step{
		ID:      id,
		Frame:   Frame{Width: DefaultFrameWidth, Height: DefaultFrameHeight},
		Timeout: DefaultTimeout,
	}
}

// DefaultControl returns the descriptor a new control of type t starts with,
// centred on the frame.
func DefaultControl(t ControlType) ButtonSettings {
	bs := ButtonSettings{
		Type: t,
		Left: Pct(CenterPosition),
		Top:  Pct(CenterPosition),
	}

	switch t {
	case ControlNormal:
		bs.Width = DefaultButtonWidth
		bs.Height = DefaultButtonHeight
		bs.Text = DefaultButtonText
		bs.Color = DefaultButtonColor
	case ControlCaptchaPuzzle:
		bs.Step = DefaultPuzzleStep
		bs.TotalDots = DefaultTotalDots
		bs.FlyLeft = DefaultFlyLeft
		bs.FlyTop = DefaultFlyTop
		bs.SetCows(DefaultCowPositions)
	}

	return bs
}

// Normalize fills unset fields with defaults, drops fields that do not
// belong to a step's active control type and repairs inconsistent control
// descriptors. It does not touch step IDs.
func Normalize(s *Settings) {
	if !IsValidBackground(s.Background) {
		s.Background = BackgroundNone
	}

	for _, step := range s.Steps {
		normalizeStep(step)
	}
}

func normalizeStep(step *Step) {
	if step.Frame.Width <= 0 {
		step.Frame.Width = DefaultFrameWidth
	}
	if step.Frame.Height <= 0 {
		step.Frame.Height = DefaultFrameHeight
	}
	if step.Timeout <= 0 {
		step.Timeout = DefaultTimeout
	}

	if step.Button == "" || !IsValidControlType(step.Button) {
		step.Button = ""
		step.ButtonSettings = nil
	} else {
		if step.ButtonSettings == nil {
			bs := DefaultControl(step.Button)
			step.ButtonSettings = &bs
		}
		step.ButtonSettings.Type = step.Button
		normalizeControl(step.ButtonSettings)
	}

	for t, bs := range step.Retained {
		if !IsValidControlType(t) || t == step.Button {
			delete(step.Retained, t)
			continue
		}
		bs.Type = t
		normalizeControl(&bs)
		step.Retained[t] = bs
	}
	if len(step.Retained) == 0 {
		step.Retained = nil
	}
}

func normalizeControl(bs *ButtonSettings) {
	def := DefaultControl(bs.Type)
	clean := ButtonSettings{
		Type: bs.Type,
		Left: Pct(bs.Left.Or(CenterPosition)),
		Top:  Pct(bs.Top.Or(CenterPosition)),
	}

	switch bs.Type {
	case ControlNormal:
		clean.Width = Number(bs.Width.Or(int(def.Width)))
		clean.Height = Number(bs.Height.Or(int(def.Height)))
		clean.Text = bs.Text
		if clean.Text == "" {
			clean.Text = def.Text
		}
		clean.Color = bs.Color
		if clean.Color == "" {
			clean.Color = def.Color
		}
	case ControlCaptchaPuzzle:
		clean.Step = Number(bs.Step.Or(int(def.Step)))
		clean.TotalDots = Number(bs.TotalDots.Or(int(def.TotalDots)))
		fly := bs.Fly()
		clean.FlyLeft, clean.FlyTop = Number(fly.Left), Number(fly.Top)
		clean.SetCows(bs.Cows())
	}

	*bs = clean
}
