package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepItem is one entry of a step list.
type StepItem struct {
	Name string // Display name, e.g. "Step 2"
	Note string // Optional summary shown after the marker
}

// StepList renders the step sequence with the displayed step marked and a
// bar showing its position in the sequence.
type StepList struct {
	Items   []StepItem
	Current int  // Displayed step (1-based), 0 for none
	Width   int  // Terminal width
	ShowBar bool // Whether to show the position bar
	bar     progress.Model
}

// NewStepList creates a step list
func NewStepList(items []StepItem, current int) *StepList {
	l := &StepList{Items: items, Current: current, ShowBar: true}
	return l.SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width for responsive rendering
func (l *StepList) SetWidth(width int) *StepList {
	l.Width = width
	barWidth := width - 20 // Leave room for the step counter
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	l.bar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return l
}

// Percent returns the position of the displayed step in the sequence.
func (l *StepList) Percent() float64 {
	if len(l.Items) == 0 || l.Current < 1 {
		return 0
	}
	return float64(l.Current) / float64(len(l.Items))
}

// Render returns the styled step list as a string
func (l *StepList) Render() string {
	if len(l.Items) == 0 {
		return StepNoteStyle.Render("  (no steps)")
	}

	var b strings.Builder

	if l.ShowBar {
		counter := fmt.Sprintf("[%d/%d]", l.Current, len(l.Items))
		b.WriteString(lipgloss.NewStyle().
			PaddingLeft(2).
			Render(l.bar.ViewAs(l.Percent()) + "  " + counter))
		b.WriteString("\n\n")
	}

	lines := make([]string, len(l.Items))
	for i, item := range l.Items {
		lines[i] = l.renderLine(i+1, item)
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

func (l *StepList) renderLine(position int, item StepItem) string {
	marker, nameStyle := StepMarkerInactive, StepInactiveStyle
	if position == l.Current {
		marker, nameStyle = StepMarkerActive, StepActiveStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  [%d/%d] ", position, len(l.Items)))
	b.WriteString(nameStyle.Render(marker + " " + item.Name))

	if item.Note != "" {
		padding := 24 - lipgloss.Width(item.Name) // Align notes in one column
		if padding < 1 {
			padding = 1
		}
		b.WriteString(strings.Repeat(" ", padding))
		b.WriteString(StepNoteStyle.Render(item.Note))
	}

	return b.String()
}

// String implements fmt.Stringer
func (l *StepList) String() string {
	return l.Render()
}
