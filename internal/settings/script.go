package settings

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dop251/goja"
)

// ScriptBlock is one JavaScript body found in a step script payload.
type ScriptBlock struct {
	Index int // 1-based position among the payload's blocks
	Body  string
}

// ExtractScripts returns the JavaScript bodies of a script payload. A payload
// with <script> elements yields one block per inline element; elements with
// a src attribute or a non-JavaScript type are skipped. A payload without
// markup is treated as a single raw JavaScript block.
func ExtractScripts(payload string) ([]ScriptBlock, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, nil
	}

	if !strings.Contains(strings.ToLower(trimmed), "<script") {
		if strings.HasPrefix(trimmed, "<") {
			// Plain markup, nothing to execute.
			return nil, nil
		}
		return []ScriptBlock{{Index: 1, Body: trimmed}}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(payload))
	if err != nil {
		return nil, NewParseError("failed to parse script payload", err)
	}

	var blocks []ScriptBlock
	doc.Find("script").Each(func(i int, s *goquery.Selection) {
		if _, ok := s.Attr("src"); ok {
			return
		}
		if t, ok := s.Attr("type"); ok && !isJavaScriptType(t) {
			return
		}
		blocks = append(blocks, ScriptBlock{Index: i + 1, Body: s.Text()})
	})

	return blocks, nil
}

func isJavaScriptType(t string) bool {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "", "text/javascript", "application/javascript", "module":
		return true
	default:
		return false
	}
}

// LintScript syntax-checks every block of a script payload. It returns one
// script error per block that fails to compile. Nothing is executed.
func LintScript(payload string) []error {
	blocks, err := ExtractScripts(payload)
	if err != nil {
		return []error{err}
	}

	var errs []error
	for _, b := range blocks {
		name := fmt.Sprintf("script-%d.js", b.Index)
		if _, err := goja.Compile(name, b.Body, false); err != nil {
			errs = append(errs, NewScriptError(fmt.Sprintf("script block %d does not compile", b.Index), err))
		}
	}
	return errs
}

// LintSettings lints the script of every step. Errors are prefixed with the
// step's display name.
func LintSettings(s *Settings) []error {
	var errs []error
	for i, step := range s.Steps {
		if !step.HasScript() {
			continue
		}
		for _, err := range LintScript(step.Script) {
			errs = append(errs, fmt.Errorf("%s: %w", step.DisplayName(i+1), err))
		}
	}
	return errs
}
