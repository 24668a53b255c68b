package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/muurk/clickme/internal/settings"
)

func renderPage(t *testing.T, s *settings.Settings, opts PageOptions) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	if err := Page(&buf, s, opts); err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("failed to parse rendered page: %v", err)
	}
	return doc
}

func getSampleDocument() *settings.Settings {
	s := settings.Default()
	s.URL = "https://target.example.com/account"
	s.PageTitle = "Win a prize"

	checkbox := settings.DefaultControl(settings.ControlCaptchaCheckbox)
	checkbox.Left, checkbox.Top = settings.Pct(30), settings.Pct(70)

	puzzle := settings.DefaultControl(settings.ControlCaptchaPuzzle)
	puzzle.Step, puzzle.TotalDots = 2, 3

	s.Steps = append(s.Steps,
		&settings.Step{ID: 2, Frame: settings.Frame{Width: 1024, Height: 768}, Button: settings.ControlCaptchaCheckbox, ButtonSettings: &checkbox, Timeout: 500},
		&settings.Step{ID: 3, Name: "Fly", Frame: settings.Frame{Width: 800, Height: 600}, Button: settings.ControlCaptchaPuzzle, ButtonSettings: &puzzle, Timeout: 1500, Script: "<script>console.log(1)</script>"},
		&settings.Step{ID: 4, Frame: settings.Frame{Width: 800, Height: 600}, Timeout: 1000},
	)
	return s
}

func TestPageShowsExactlyOneControl(t *testing.T) {
	tests := []struct {
		start   int
		visible string
	}{
		{1, "normal-button"},
		{2, "captcha-checkbox-button"},
		{3, "captcha-puzzle-button"},
		{0, "normal-button"},
		{99, "normal-button"},
	}

	for _, tt := range tests {
		doc := renderPage(t, getSampleDocument(), PageOptions{Start: tt.start})

		if n := doc.Find(".control").Length(); n != 3 {
			t.Errorf("start %d: got %d widgets, want 3", tt.start, n)
		}
		shown := doc.Find(`.control[data-visible="true"]`)
		if shown.Length() != 1 {
			t.Fatalf("start %d: %d controls displayed, want 1", tt.start, shown.Length())
		}
		if id, _ := shown.Attr("id"); id != tt.visible {
			t.Errorf("start %d: displayed %s, want %s", tt.start, id, tt.visible)
		}
	}
}

func TestPageStepWithoutControl(t *testing.T) {
	doc := renderPage(t, getSampleDocument(), PageOptions{Start: 4})

	if n := doc.Find(`.control[data-visible="true"]`).Length(); n != 0 {
		t.Errorf("%d controls displayed for a step without control", n)
	}
}

func TestPageFrame(t *testing.T) {
	doc := renderPage(t, getSampleDocument(), PageOptions{Start: 2})

	frame := doc.Find("iframe#target-frame")
	if src, _ := frame.Attr("src"); src != "https://target.example.com/account" {
		t.Errorf("src = %q", src)
	}
	if w, _ := frame.Attr("width"); w != "1024" {
		t.Errorf("width = %q", w)
	}
	if h, _ := frame.Attr("height"); h != "768" {
		t.Errorf("height = %q", h)
	}
	if _, ok := frame.Attr("credentialless"); !ok {
		t.Error("credentialless attribute missing")
	}

	style, _ := doc.Find(".main-container").Attr("style")
	if !strings.Contains(style, "width: 1024px") {
		t.Errorf("main-container style = %q", style)
	}
}

func TestPageWithoutCredentialless(t *testing.T) {
	s := getSampleDocument()
	s.Credentialless = false

	doc := renderPage(t, s, PageOptions{})
	if _, ok := doc.Find("iframe#target-frame").Attr("credentialless"); ok {
		t.Error("credentialless attribute should be absent")
	}
}

func TestPageRejectsScriptURL(t *testing.T) {
	s := getSampleDocument()
	s.URL = "javascript:alert(1)"

	doc := renderPage(t, s, PageOptions{})
	src, _ := doc.Find("iframe#target-frame").Attr("src")
	if strings.HasPrefix(src, "javascript:") {
		t.Errorf("unsafe src rendered: %q", src)
	}
}

func TestPageTitle(t *testing.T) {
	doc := renderPage(t, getSampleDocument(), PageOptions{})
	if got := doc.Find("title").Text(); got != "Win a prize" {
		t.Errorf("title = %q", got)
	}

	s := getSampleDocument()
	s.PageTitle = ""
	doc = renderPage(t, s, PageOptions{})
	if got := doc.Find("title").Text(); got != settings.DefaultPageTitle {
		t.Errorf("default title = %q", got)
	}
}

func TestPageEscapesButtonText(t *testing.T) {
	s := getSampleDocument()
	s.Steps[0].ButtonSettings.Text = `<img src=x onerror=alert(1)>`

	doc := renderPage(t, s, PageOptions{})
	if doc.Find("#normal-button img").Length() != 0 {
		t.Error("button text was rendered as markup")
	}
	if got := doc.Find("#normal-button button").Text(); got != s.Steps[0].ButtonSettings.Text {
		t.Errorf("button text = %q", got)
	}
}

func TestPageBackground(t *testing.T) {
	tests := []struct {
		background settings.Background
		active     string
	}{
		{settings.BackgroundWhite, "#white-background"},
		{settings.BackgroundSocialMedia, "#social-media-background"},
		{settings.BackgroundNone, ""},
	}

	for _, tt := range tests {
		s := getSampleDocument()
		s.Background = tt.background
		doc := renderPage(t, s, PageOptions{})

		active := doc.Find(".background-layer.active")
		if tt.active == "" {
			if active.Length() != 0 {
				t.Errorf("%s: %d active layers", tt.background, active.Length())
			}
			continue
		}
		if active.Length() != 1 || !active.Is(tt.active) {
			t.Errorf("%s: expected only %s active", tt.background, tt.active)
		}
	}
}

func TestPageMenuAndTransparency(t *testing.T) {
	doc := renderPage(t, getSampleDocument(), PageOptions{})
	if doc.Find("#menu").Length() != 0 {
		t.Error("menu rendered without Menu option")
	}
	if doc.Find("#button-container.transparent").Length() != 0 {
		t.Error("transparent class set without Transparent option")
	}

	doc = renderPage(t, getSampleDocument(), PageOptions{Menu: true, Transparent: true, Start: 3})
	items := doc.Find("#menu .dropdown-item")
	if items.Length() != 4 {
		t.Fatalf("menu lists %d steps, want 4", items.Length())
	}
	if got := items.Eq(2).Text(); got != "Fly" {
		t.Errorf("third item = %q", got)
	}
	if !items.Eq(2).HasClass("active") {
		t.Error("start step should be marked active")
	}
	style, _ := doc.Find("#iframe-section").Attr("style")
	if !strings.Contains(style, "calc(100% - 350px)") {
		t.Errorf("iframe-section style = %q", style)
	}
	if doc.Find("#button-container.transparent").Length() != 1 {
		t.Error("transparent class missing")
	}
	if doc.Find("#show-areas").Length() != 1 {
		t.Error("Show Areas button missing")
	}
}

func TestPagePuzzleMarkup(t *testing.T) {
	doc := renderPage(t, getSampleDocument(), PageOptions{Start: 3})
	puzzle := doc.Find("#captcha-puzzle-button")

	if src, _ := puzzle.Find("img.bg-1").Attr("src"); src != "img/bg2.png" {
		t.Errorf("background = %q", src)
	}
	if n := puzzle.Find(`.dots-container .dot[data-visible="true"]`).Length(); n != 3 {
		t.Errorf("%d visible dots, want 3", n)
	}
	style, _ := puzzle.Find(".dot-2").Attr("style")
	if !strings.Contains(style, ActiveDotColor) {
		t.Errorf("dot-2 style = %q", style)
	}
	for _, sel := range []string{".fly-1", ".cow-1", ".cow-2", ".cow-3", "#fly-overlay", "#red-overlay"} {
		if puzzle.Find(sel).Length() != 1 {
			t.Errorf("missing %s", sel)
		}
	}
	if doc.Find("#captcha-checkbox-button .green-overlay").Length() != 1 {
		t.Error("checkbox overlay missing")
	}
}

func TestPageEmbedsSteps(t *testing.T) {
	doc := renderPage(t, getSampleDocument(), PageOptions{})

	raw := doc.Find("script#clickme-steps").Text()
	var steps []struct {
		Position int    `json:"position"`
		Name     string `json:"name"`
		Timeout  int    `json:"timeout"`
		Script   string `json:"script"`
		Control  *struct {
			Type      string `json:"type"`
			ElementID string `json:"elementId"`
		} `json:"control"`
	}
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		t.Fatalf("embedded steps are not JSON: %v\n%s", err, raw)
	}
	if len(steps) != 4 {
		t.Fatalf("embedded %d steps, want 4", len(steps))
	}
	if steps[1].Control == nil || steps[1].Control.ElementID != "captcha-checkbox-button" {
		t.Errorf("step 2 control = %+v", steps[1].Control)
	}
	if steps[2].Script != "<script>console.log(1)</script>" || steps[2].Timeout != 1500 {
		t.Errorf("step 3 = %+v", steps[2])
	}
	if steps[3].Control != nil {
		t.Errorf("step 4 should have no control")
	}
	if strings.Contains(raw, "</script>") {
		t.Error("script payload not escaped inside the JSON block")
	}
}

func TestPageEnforcedCSS(t *testing.T) {
	doc := renderPage(t, getSampleDocument(), PageOptions{})
	css := doc.Find("style").Text()

	for _, rule := range []string{"pointer-events: none !important", "pointer-events: auto !important", `.dot[data-visible="false"]`} {
		if !strings.Contains(css, rule) {
			t.Errorf("page CSS missing %q", rule)
		}
	}
}
