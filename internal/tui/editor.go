package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/clickme/internal/editor"
	"github.com/muurk/clickme/internal/render"
	"github.com/muurk/clickme/internal/settings"
)

// Field identifies the value being edited inline
type Field int

const (
	FieldNone Field = iota
	FieldName
	FieldFrame
	FieldTimeout
	FieldScript
	FieldText
	FieldColor
	FieldDots
	FieldURL
	FieldTitle
)

var fieldPrompts = map[Field]string{
	FieldName:    "Step name",
	FieldFrame:   "Frame size (WIDTHxHEIGHT)",
	FieldTimeout: "Timeout (ms)",
	FieldScript:  "Script",
	FieldText:    "Button text",
	FieldColor:   "Button color",
	FieldDots:    "Puzzle dots (STEP/TOTAL)",
	FieldURL:     "Target URL",
	FieldTitle:   "Page title",
}

// EditorModel is the main editing screen: the step list on the left and a
// preview of the displayed step on the right.
type EditorModel struct {
	Session *editor.Session

	// UI state
	Width  int
	Height int

	// Inline editing
	Editing Field
	Input   textinput.Model

	// Feedback for the last action
	Status        string
	StatusIsError bool

	ShowingHelp     bool
	ExportRequested bool

	// Rand drives cow randomization
	Rand editor.IntN

	// Help
	Help      help.Model
	Keys      editorKeyMap
	InputKeys inputKeyMap
}

// NewEditorModel creates the editor screen for a session
func NewEditorModel(session *editor.Session, rng editor.IntN) EditorModel {
	input := textinput.New()
	input.CharLimit = 4096
	input.Width = 50

	return EditorModel{
		Session:   session,
		Input:     input,
		Rand:      rng,
		Help:      help.New(),
		Keys:      newEditorKeyMap(),
		InputKeys: newInputKeyMap(),
	}
}

// Init implements tea.Model
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.ShowingHelp {
		if ok {
			m.ShowingHelp = false
		}
		return m, nil
	}

	if m.Editing != FieldNone {
		return m.updateInput(msg)
	}

	if !ok {
		return m, nil
	}
	return m.updateNormalMode(keyMsg)
}

func (m EditorModel) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.Session.State()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.ShowingHelp = true

	case key.Matches(msg, m.Keys.Export):
		m.ExportRequested = true

	case key.Matches(msg, m.Keys.Up):
		if st.Current > 1 {
			m.Session.Select(st.Current - 1)
		}

	case key.Matches(msg, m.Keys.Down):
		if st.Current < st.StepCount() {
			m.Session.Select(st.Current + 1)
		}

	case key.Matches(msg, m.Keys.MoveUp):
		if st.Current > 1 {
			m.applyCurrent("Moved step up", func(st editor.State, id settings.StepID) (editor.State, error) {
				return editor.MoveStep(st, id, st.Current-1)
			})
		}

	case key.Matches(msg, m.Keys.MoveDown):
		if st.Current < st.StepCount() {
			m.applyCurrent("Moved step down", func(st editor.State, id settings.StepID) (editor.State, error) {
				return editor.MoveStep(st, id, st.Current+1)
			})
		}

	case key.Matches(msg, m.Keys.Add):
		m.Session.Do(editor.AddStep)
		m.setStatus(fmt.Sprintf("Added Step %d", m.Session.State().StepCount()))

	case key.Matches(msg, m.Keys.Separator):
		m.Session.Do(editor.AddSeparator)
		m.setStatus("Added separator step")

	case key.Matches(msg, m.Keys.Remove):
		m.applyCurrent("Removed step", editor.RemoveStep)

	case key.Matches(msg, m.Keys.Normal):
		m.assign(settings.ControlNormal)
	case key.Matches(msg, m.Keys.Checkbox):
		m.assign(settings.ControlCaptchaCheckbox)
	case key.Matches(msg, m.Keys.Puzzle):
		m.assign(settings.ControlCaptchaPuzzle)

	case key.Matches(msg, m.Keys.NoControl):
		m.applyCurrent("Removed control", editor.RemoveControl)

	case key.Matches(msg, m.Keys.DropButton):
		m.drop(editor.TokenButton)
	case key.Matches(msg, m.Keys.DropScript):
		m.drop(editor.TokenScript)

	case key.Matches(msg, m.Keys.Left):
		m.nudge(-1, 0)
	case key.Matches(msg, m.Keys.Right):
		m.nudge(1, 0)
	case key.Matches(msg, m.Keys.Higher):
		m.nudge(0, -1)
	case key.Matches(msg, m.Keys.Lower):
		m.nudge(0, 1)

	case key.Matches(msg, m.Keys.Center):
		m.applyCurrent("Centered control", editor.CenterControl)

	case key.Matches(msg, m.Keys.Cows):
		m.applyCurrent("Randomized cows", func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.RandomizeCows(st, id, m.Rand)
		})

	case key.Matches(msg, m.Keys.Background):
		next := nextBackground(st.Settings.Background)
		m.apply("Background: "+string(next), func(st editor.State) (editor.State, error) {
			return editor.SetBackground(st, next)
		})

	case key.Matches(msg, m.Keys.Isolation):
		on := !st.Settings.Credentialless
		m.Session.Do(func(st editor.State) editor.State {
			return editor.SetCredentialless(st, on)
		})
		m.setStatus(fmt.Sprintf("Credentialless: %s", onOff(on)))

	case key.Matches(msg, m.Keys.Rename):
		return m.startEditing(FieldName)
	case key.Matches(msg, m.Keys.Frame):
		return m.startEditing(FieldFrame)
	case key.Matches(msg, m.Keys.Timeout):
		return m.startEditing(FieldTimeout)
	case key.Matches(msg, m.Keys.Script):
		return m.startEditing(FieldScript)
	case key.Matches(msg, m.Keys.Text):
		return m.startEditing(FieldText)
	case key.Matches(msg, m.Keys.Color):
		return m.startEditing(FieldColor)
	case key.Matches(msg, m.Keys.Dots):
		return m.startEditing(FieldDots)
	case key.Matches(msg, m.Keys.URL):
		return m.startEditing(FieldURL)
	case key.Matches(msg, m.Keys.Title):
		return m.startEditing(FieldTitle)
	}

	return m, nil
}

func (m *EditorModel) setStatus(msg string) {
	m.Status = msg
	m.StatusIsError = false
}

func (m *EditorModel) setError(err error) {
	m.Status = err.Error()
	m.StatusIsError = true
}

// apply runs a document update through the session and reports the outcome.
func (m *EditorModel) apply(ok string, fn func(editor.State) (editor.State, error)) {
	if err := m.Session.Apply(fn); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(ok)
}

// applyCurrent runs an update on the displayed step.
func (m *EditorModel) applyCurrent(ok string, fn func(editor.State, settings.StepID) (editor.State, error)) {
	st := m.Session.State()
	id, err := st.IDAt(st.Current)
	if err != nil {
		m.setError(err)
		return
	}
	m.apply(ok, func(st editor.State) (editor.State, error) {
		return fn(st, id)
	})
}

func (m *EditorModel) assign(t settings.ControlType) {
	m.applyCurrent("Control: "+t.Label(), func(st editor.State, id settings.StepID) (editor.State, error) {
		return editor.AssignControl(st, id, t)
	})
}

func (m *EditorModel) drop(tok editor.Token) {
	st := m.Session.State()
	target := editor.DropOnList
	if id, err := st.IDAt(st.Current); err == nil {
		target = id
	}

	applied := false
	err := m.Session.Apply(func(st editor.State) (editor.State, error) {
		next, ok, err := editor.Drop(st, tok, target)
		applied = ok
		return next, err
	})
	switch {
	case err != nil:
		m.setError(err)
	case !applied:
		m.setStatus(fmt.Sprintf("Step already has a %s", strings.ToLower(string(tok))))
	default:
		m.setStatus(fmt.Sprintf("Dropped %s", tok))
	}
}

func (m *EditorModel) nudge(dx, dy int) {
	step := m.Session.State().CurrentStep()
	if step == nil || !step.HasControl() {
		m.setError(fmt.Errorf("step has no control to move"))
		return
	}

	left := clampPercent(step.ButtonSettings.Left.Or(settings.CenterPosition) + dx)
	top := clampPercent(step.ButtonSettings.Top.Or(settings.CenterPosition) + dy)
	m.applyCurrent(fmt.Sprintf("Position %d%%, %d%%", left, top), func(st editor.State, id settings.StepID) (editor.State, error) {
		return editor.UpdateControl(st, id, editor.ControlPatch{Left: editor.Ptr(left), Top: editor.Ptr(top)})
	})
}

// startEditing opens the inline editor prefilled with the current value.
func (m EditorModel) startEditing(field Field) (tea.Model, tea.Cmd) {
	st := m.Session.State()
	step := st.CurrentStep()

	needsStep := field != FieldURL && field != FieldTitle
	if needsStep && step == nil {
		m.setError(fmt.Errorf("no step selected"))
		return m, nil
	}

	var value string
	switch field {
	case FieldName:
		value = step.DisplayName(st.Current)
	case FieldFrame:
		value = fmt.Sprintf("%dx%d", step.Frame.Width, step.Frame.Height)
	case FieldTimeout:
		value = strconv.Itoa(int(step.Timeout))
	case FieldScript:
		value = step.Script
	case FieldText, FieldColor, FieldDots:
		want := settings.ControlNormal
		if field == FieldDots {
			want = settings.ControlCaptchaPuzzle
		}
		if !step.HasControl() || step.Button != want {
			m.setError(fmt.Errorf("step has no %s control", want.Label()))
			return m, nil
		}
		bs := step.ButtonSettings
		switch field {
		case FieldText:
			value = bs.Text
		case FieldColor:
			value = bs.Color
		default:
			value = fmt.Sprintf("%d/%d", bs.Step, bs.TotalDots)
		}
	case FieldURL:
		value = st.Settings.URL
	case FieldTitle:
		value = st.Settings.Title()
	}

	m.Editing = field
	m.Input.Prompt = fieldPrompts[field] + ": "
	m.Input.SetValue(value)
	m.Input.CursorEnd()
	return m, m.Input.Focus()
}

func (m EditorModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.InputKeys.Cancel):
			m.Editing = FieldNone
			m.Input.Blur()
			return m, nil

		case key.Matches(keyMsg, m.InputKeys.Commit):
			field := m.Editing
			m.Editing = FieldNone
			m.Input.Blur()
			m.commit(field, m.Input.Value())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// commit parses an edited value and applies it.
func (m *EditorModel) commit(field Field, value string) {
	value = strings.TrimSpace(value)
	label := fieldPrompts[field]

	switch field {
	case FieldName:
		m.applyCurrent("Renamed step", func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.RenameStep(st, id, value)
		})

	case FieldFrame:
		var w, h int
		if _, err := fmt.Sscanf(value, "%dx%d", &w, &h); err != nil {
			m.setError(settings.NewValidationError(fmt.Sprintf("frame size must look like 800x600, got %q", value)))
			return
		}
		m.applyCurrent(fmt.Sprintf("Frame %dx%d", w, h), func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.SetFrame(st, id, w, h)
		})

	case FieldTimeout:
		ms, err := strconv.Atoi(value)
		if err != nil {
			m.setError(settings.NewValidationError(fmt.Sprintf("timeout must be a number of milliseconds, got %q", value)))
			return
		}
		m.applyCurrent(fmt.Sprintf("Timeout %dms", ms), func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.SetTimeout(st, id, ms)
		})

	case FieldScript:
		m.applyCurrent("Script updated", func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.SetScript(st, id, value)
		})
		if errs := settings.LintScript(value); len(errs) > 0 {
			m.setError(fmt.Errorf("script saved with errors: %s", errs[0]))
		}

	case FieldText:
		m.patch(label, editor.ControlPatch{Text: editor.Ptr(value)})

	case FieldColor:
		m.patch(label, editor.ControlPatch{Color: editor.Ptr(value)})

	case FieldDots:
		var step, total int
		if _, err := fmt.Sscanf(value, "%d/%d", &step, &total); err != nil {
			m.setError(settings.NewValidationError(fmt.Sprintf("puzzle dots must look like 2/4, got %q", value)))
			return
		}
		m.patch(label, editor.ControlPatch{Step: editor.Ptr(step), TotalDots: editor.Ptr(total)})

	case FieldURL:
		m.apply("Target URL updated", func(st editor.State) (editor.State, error) {
			return editor.SetURL(st, value)
		})

	case FieldTitle:
		m.Session.Do(func(st editor.State) editor.State {
			return editor.SetPageTitle(st, value)
		})
		m.setStatus("Page title updated")
	}
}

func (m *EditorModel) patch(label string, p editor.ControlPatch) {
	m.applyCurrent(label+" updated", func(st editor.State, id settings.StepID) (editor.State, error) {
		return editor.UpdateControl(st, id, p)
	})
}

// View implements tea.Model
func (m EditorModel) View() string {
	if m.ShowingHelp {
		return RenderModal(m.renderHelpModalContent(), m.Width, m.Height)
	}

	helpText := m.Help.View(m.Keys)
	if m.Editing != FieldNone {
		helpText = m.Help.View(m.InputKeys)
	}
	return RenderApplicationContainer(m.renderContent(), helpText, m.Width, m.Height)
}

func (m EditorModel) renderContent() string {
	st := m.Session.State()

	list := PanelStyle.Width(StepListWidth).Render(renderStepList(st))
	preview := PanelStyle.Render(renderPreview(st.Settings, render.Preview(st)))
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", preview)

	var footer string
	switch {
	case m.Editing != FieldNone:
		footer = InlineEditorStyle().Render(FocusedInputStyle.Render(m.Input.View()))
	case m.Status != "" && m.StatusIsError:
		footer = StatusErrorStyle.Render("✗ " + m.Status)
	case m.Status != "":
		footer = StatusStyle.Render("✓ " + m.Status)
	}

	if footer == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer)
}

func renderStepList(st editor.State) string {
	lines := []string{RenderTitle(fmt.Sprintf("Steps (%d)", st.StepCount()))}

	if st.StepCount() == 0 {
		lines = append(lines, SubtitleStyle.Render("No steps. Press a to add one."))
		return strings.Join(lines, "\n")
	}

	for i, step := range st.Settings.Steps {
		pos := i + 1
		label := fmt.Sprintf("%d. %s", pos, step.DisplayName(pos))
		var tags []string
		if step.HasControl() {
			tags = append(tags, step.Button.Label())
		}
		if step.HasScript() {
			tags = append(tags, "JS")
		}
		if len(tags) > 0 {
			label += SubtitleStyle.Render(" [" + strings.Join(tags, ", ") + "]")
		}

		if pos == st.Current {
			lines = append(lines, SelectedListItemStyle.Render("▸ ")+SelectedListItemStyle.Render(label))
		} else {
			lines = append(lines, ListItemStyle.Render(label))
		}
	}

	return strings.Join(lines, "\n")
}

func (m EditorModel) renderHelpModalContent() string {
	title := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Render("CLICKME EDITOR HELP")

	full := m.Help
	full.ShowAll = true

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"Each step frames the target page at its own size and overlays at most",
		"one decoy control. Positions are percentages of the frame.",
		"",
		full.View(m.Keys),
		"",
		"Press any key to close this help screen",
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2).
		Render(content)
}

func nextBackground(b settings.Background) settings.Background {
	for i, v := range settings.Backgrounds {
		if v == b {
			return settings.Backgrounds[(i+1)%len(settings.Backgrounds)]
		}
	}
	return settings.Backgrounds[0]
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
