package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/clickme/internal/editor"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenEditor Screen = "editor"
	ScreenExport Screen = "export"
)

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	// Current screen state
	CurrentScreen Screen

	// Screen models
	EditorModel EditorModel
	ExportModel ExportModel

	// Shared application state
	Session   *editor.Session
	Clipboard editor.ClipboardWriter

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the application model on the editor screen. clip
// receives exported settings; rng drives cow randomization.
func NewAppModel(session *editor.Session, clip editor.ClipboardWriter, rng editor.IntN) AppModel {
	return AppModel{
		CurrentScreen: ScreenEditor,
		EditorModel:   NewEditorModel(session, rng),
		Session:       session,
		Clipboard:     clip,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.EditorModel.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Propagate to all screens
		m.EditorModel.Width = msg.Width
		m.EditorModel.Height = msg.Height
		if m.CurrentScreen == ScreenExport {
			updated, _ := m.ExportModel.Update(msg)
			m.ExportModel = updated.(ExportModel)
		}
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenEditor:
		updated, c := m.EditorModel.Update(msg)
		m.EditorModel = updated.(EditorModel)
		cmd = c

		if m.EditorModel.ExportRequested {
			m.EditorModel.ExportRequested = false
			return m.transitionTo(ScreenExport)
		}

	case ScreenExport:
		updated, c := m.ExportModel.Update(msg)
		m.ExportModel = updated.(ExportModel)
		cmd = c

		if m.ExportModel.BackRequested {
			return m.transitionTo(ScreenEditor)
		}
	}

	return m, cmd
}

// transitionTo transitions to a new screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	m.CurrentScreen = screen

	switch screen {
	case ScreenExport:
		m.ExportModel = NewExportModel(m.Session, m.Clipboard, m.Width, m.Height)
		return m, m.ExportModel.Init()

	case ScreenEditor:
		if m.ExportModel.Copied {
			m.EditorModel.setStatus("Storage cleared, editing a fresh document")
		}
		m.ExportModel = ExportModel{}
	}

	return m, nil
}

// View renders the current screen
// Each screen handles its own container using RenderApplicationContainer()
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenEditor:
		return m.EditorModel.View()
	case ScreenExport:
		return m.ExportModel.View()
	default:
		return "Unknown screen"
	}
}

// Run starts the interactive editor in the alternate screen and blocks
// until the user quits.
func Run(session *editor.Session, clip editor.ClipboardWriter, rng editor.IntN) error {
	p := tea.NewProgram(NewAppModel(session, clip, rng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
