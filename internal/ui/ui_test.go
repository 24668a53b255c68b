package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConfirmDestructive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"confirmed", "yes\n", true},
		{"confirmed without newline", "yes", true},
		{"padded", "  yes  \n", true},
		{"declined", "no\n", false},
		{"uppercase", "YES\n", false},
		{"empty input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := ConfirmDestructive(strings.NewReader(tt.input), &out, "Clear settings", []string{"All steps are removed"})
			if got != tt.want {
				t.Errorf("ConfirmDestructive() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "All steps are removed") {
				t.Error("warning text not printed")
			}
			if cancelled := strings.Contains(out.String(), "Operation cancelled"); cancelled == tt.want {
				t.Errorf("cancel message shown = %v for confirmed = %v", cancelled, tt.want)
			}
		})
	}
}

func TestResultRender(t *testing.T) {
	success := NewSuccessResult("Page written", []Detail{{Key: "Output", Value: "demo.html"}, {Key: "Steps", Value: "3"}}).SetWidth(80).Render()
	for _, want := range []string{"SUCCESS", "Page written", "Output:", "demo.html"} {
		if !strings.Contains(success, want) {
			t.Errorf("success box missing %q", want)
		}
	}
	if strings.Index(success, "Output:") > strings.Index(success, "Steps:") {
		t.Error("details should keep their order")
	}

	failure := NewFailureResult("Copy failed", errors.New("no clipboard"), []string{"Install xclip"}).SetWidth(80).Render()
	for _, want := range []string{"FAILED", "no clipboard", "Troubleshooting:", "Install xclip"} {
		if !strings.Contains(failure, want) {
			t.Errorf("failure box missing %q", want)
		}
	}

	warning := NewWarningResult("Script does not compile", nil).AddDetail("Step", "2").SetWidth(80).Render()
	if !strings.Contains(warning, "WARNING") || !strings.Contains(warning, "Step:") {
		t.Errorf("unexpected warning box:\n%s", warning)
	}
}

func TestStepList(t *testing.T) {
	items := []StepItem{{Name: "Step 1", Note: "Button"}, {Name: "Login", Note: "Captcha Checkbox"}, {Name: "Step 3"}}
	l := NewStepList(items, 2).SetWidth(80)

	if got := l.Percent(); got < 0.66 || got > 0.67 {
		t.Errorf("Percent() = %v", got)
	}

	out := l.Render()
	for _, want := range []string{"[2/3]", "[1/3]", "Login", StepMarkerActive, "Captcha Checkbox"} {
		if !strings.Contains(out, want) {
			t.Errorf("step list missing %q:\n%s", want, out)
		}
	}

	if got := NewStepList(nil, 0).Render(); !strings.Contains(got, "no steps") {
		t.Errorf("empty list = %q", got)
	}
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("render", "clickme render", []Detail{{Key: "Output", Value: "demo.html"}}).SetWidth(70)
	out := h.Render()
	for _, want := range []string{"RENDER", "clickme render", "Output:", "demo.html"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintCode("Settings", "{\n  \"url\": \"https://example.com\"\n}\n")
	if !strings.Contains(buf.String(), `"url": "https://example.com"`) {
		t.Errorf("code box content missing:\n%s", buf.String())
	}
}

func TestResultBoxStyle_Padding(t *testing.T) {
	style := ResultBoxStyle(80, SuccessColor)
	if style.GetPaddingLeft() != DefaultPadding || style.GetPaddingRight() != DefaultPadding {
		t.Errorf("padding = %d/%d, want %d", style.GetPaddingLeft(), style.GetPaddingRight(), DefaultPadding)
	}
}
