package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/clickme/internal/render"
	"github.com/muurk/clickme/internal/settings"
)

// renderPreview shows the page settings and the displayed step, with a map
// of the frame marking where the control sits.
func renderPreview(s *settings.Settings, v render.View) string {
	lines := []string{
		RenderTitle("Preview"),
		row("URL", s.URL),
		row("Page", fmt.Sprintf("%s  %s, credentialless %s", s.Title(), s.Background, onOff(s.Credentialless))),
		"",
	}

	if v.Position == 0 {
		lines = append(lines, SubtitleStyle.Render("No step to display"))
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		row("Step", fmt.Sprintf("%d. %s", v.Position, v.Name)),
		row("Frame", fmt.Sprintf("%dx%d", v.Frame.Width, v.Frame.Height)),
		row("Timeout", fmt.Sprintf("%dms", v.Timeout)),
		row("Control", describeControl(v.Control)),
	)

	if c := v.Control; c != nil {
		lines = append(lines, row("Position", fmt.Sprintf("%d%%, %d%%", c.Left, c.Top)))
		if c.Type == settings.ControlCaptchaPuzzle {
			lines = append(lines, row("Dots", renderDots(c.Dots)))
		}
	}

	script := "none"
	if strings.TrimSpace(v.Script) != "" {
		script = firstLine(v.Script)
	}
	lines = append(lines, row("Script", script), "", renderFrameMap(v.Control))

	return strings.Join(lines, "\n")
}

func row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

func describeControl(c *render.Control) string {
	if c == nil {
		return "none"
	}
	switch c.Type {
	case settings.ControlNormal:
		return fmt.Sprintf("%s %q %dx%d %s", c.Type.Label(), c.Text, c.Width, c.Height, c.Color)
	default:
		return c.Type.Label()
	}
}

func renderDots(dots []render.Dot) string {
	var b strings.Builder
	for _, d := range dots {
		if !d.Visible {
			continue
		}
		if d.Active {
			b.WriteString(lipgloss.NewStyle().Foreground(ActiveDotColor).Render("●"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(SubtleColor).Render("●"))
		}
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// markerCell maps a percentage position onto a grid of n cells.
func markerCell(pct, n int) int {
	pct = clampPercent(pct)
	return pct * (n - 1) / 100
}

// renderFrameMap draws the frame scaled down to a fixed grid with the
// control's centre marked.
func renderFrameMap(c *render.Control) string {
	grid := make([][]string, FrameMapHeight)
	for y := range grid {
		grid[y] = make([]string, FrameMapWidth)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	if c != nil {
		x := markerCell(c.Left, FrameMapWidth)
		y := markerCell(c.Top, FrameMapHeight)
		grid[y][x] = ControlMarkerStyle.Render("■")
	}

	rows := make([]string, FrameMapHeight)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return FrameMapStyle.Render(strings.Join(rows, "\n"))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	first, _, more := strings.Cut(s, "\n")
	if more {
		return first + " …"
	}
	return first
}
