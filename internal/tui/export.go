package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/clickme/internal/editor"
)

// ExportModel shows the stored document and offers to copy it to the
// clipboard and clear storage.
type ExportModel struct {
	Session   *editor.Session
	Clipboard editor.ClipboardWriter

	Content  string
	Viewport viewport.Model

	// Result of the last copy
	Copied bool
	Err    error

	BackRequested bool

	Width  int
	Height int

	Help help.Model
	Keys exportKeyMap
}

// NewExportModel snapshots the stored document for display
func NewExportModel(session *editor.Session, clip editor.ClipboardWriter, width, height int) ExportModel {
	m := ExportModel{
		Session:   session,
		Clipboard: clip,
		Content:   editor.Export(session.Store()),
		Width:     width,
		Height:    height,
		Help:      help.New(),
		Keys:      newExportKeyMap(),
	}
	m.Viewport = viewport.New(m.viewportSize())
	m.Viewport.SetContent(m.Content)
	return m
}

// viewportSize leaves room for the container, title and status lines.
func (m ExportModel) viewportSize() (int, int) {
	w := max(m.Width, MinTerminalWidth) - 8
	h := max(m.Height-12, 5)
	return w, h
}

// Init implements tea.Model
func (m ExportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width, m.Height = size.Width, size.Height
		m.Viewport.Width, m.Viewport.Height = m.viewportSize()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.Keys.Back):
		m.BackRequested = true
		return m, nil

	case key.Matches(keyMsg, m.Keys.Copy):
		if m.Copied {
			return m, nil
		}
		st, err := editor.CopyAndClear(m.Session.Store(), m.Content, m.Clipboard)
		if err != nil {
			m.Err = err
			return m, nil
		}
		m.Session.Reset(st)
		m.Copied = true
		m.Err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m ExportModel) View() string {
	var status string
	switch {
	case m.Err != nil:
		status = StatusErrorStyle.Render("✗ " + m.Err.Error())
	case m.Copied:
		status = StatusStyle.Render("✓ Settings copied to clipboard. Storage cleared.")
	default:
		status = SubtitleStyle.Render("Copying clears the stored settings and resets the editor.")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderTitle("Export Settings"),
		PanelStyle.Render(m.Viewport.View()),
		"",
		status,
	)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}
