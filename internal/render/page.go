package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"go.uber.org/zap"

	"github.com/muurk/clickme/internal/logging"
	"github.com/muurk/clickme/internal/settings"
)

// MenuWidth is the width of the optional menu column in pixels.
const MenuWidth = 350

//go:embed page.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

// PageOptions controls how the demonstration page is rendered.
type PageOptions struct {
	// Menu shows the step menu column next to the frame.
	Menu bool

	// Transparent starts with the controls nearly invisible over the frame.
	Transparent bool

	// Start is the 1-based step shown first. Out-of-range values start at
	// step 1.
	Start int
}

type pageData struct {
	Title          string
	URL            string
	Credentialless bool
	Background     string
	Menu           bool
	Transparent    bool
	Start          int

	EnforcedCSS  template.CSS
	SectionStyle template.CSS
	FrameStyle   template.CSS

	Current View
	Steps   []View

	Normal   *Control
	Checkbox *Control
	Puzzle   *Control
}

// widget returns the control rendered into the widget of type t: the
// current step's control when it has that type, otherwise the default.
func widget(current View, t settings.ControlType) *Control {
	if current.Visible(t) {
		return current.Control
	}
	def := settings.DefaultControl(t)
	return ControlFor(&def)
}

func newPageData(s *settings.Settings, opts PageOptions) pageData {
	views := Views(s)

	start := opts.Start
	if start < 1 || start > len(views) {
		start = 1
	}

	var current View
	if len(views) > 0 {
		current = views[start-1]
	} else {
		start = 0
		current = View{
			Frame:   FrameSize{Width: settings.DefaultFrameWidth, Height: settings.DefaultFrameHeight},
			Timeout: settings.DefaultTimeout,
		}
	}

	section := template.CSS("width: 100%;")
	if opts.Menu {
		section = template.CSS(fmt.Sprintf("width: calc(100%% - %dpx);", MenuWidth))
	}

	return pageData{
		Title:          s.Title(),
		URL:            s.URL,
		Credentialless: s.Credentialless,
		Background:     string(s.Background),
		Menu:           opts.Menu,
		Transparent:    opts.Transparent,
		Start:          start,
		EnforcedCSS:    EnforcedCSS(),
		SectionStyle:   section,
		FrameStyle:     template.CSS(fmt.Sprintf("width: %dpx; height: %dpx;", current.Frame.Width, current.Frame.Height)),
		Current:        current,
		Steps:          views,
		Normal:         widget(current, settings.ControlNormal),
		Checkbox:       widget(current, settings.ControlCaptchaCheckbox),
		Puzzle:         widget(current, settings.ControlCaptchaPuzzle),
	}
}

// Page writes the standalone demonstration page for a document.
func Page(w io.Writer, s *settings.Settings, opts PageOptions) error {
	data := newPageData(s, opts)

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	logging.Debug("Rendered page",
		zap.Int("steps", len(data.Steps)),
		zap.Int("start", data.Start),
		zap.Bool("menu", opts.Menu),
	)
	return nil
}
