package tui

import "github.com/charmbracelet/bubbles/key"

// editorKeyMap defines key bindings for the editor screen
type editorKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Add        key.Binding
	Separator  key.Binding
	Remove     key.Binding
	Normal     key.Binding
	Checkbox   key.Binding
	Puzzle     key.Binding
	NoControl  key.Binding
	DropButton key.Binding
	DropScript key.Binding
	Left       key.Binding
	Right      key.Binding
	Higher     key.Binding
	Lower      key.Binding
	Center     key.Binding
	Cows       key.Binding
	Rename     key.Binding
	Frame      key.Binding
	Timeout    key.Binding
	Script     key.Binding
	Text       key.Binding
	Color      key.Binding
	Dots       key.Binding
	URL        key.Binding
	Title      key.Binding
	Background key.Binding
	Isolation  key.Binding
	Export     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Remove, k.Normal, k.Export, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown, k.Add, k.Separator, k.Remove},
		{k.Normal, k.Checkbox, k.Puzzle, k.NoControl, k.DropButton, k.DropScript},
		{k.Left, k.Right, k.Higher, k.Lower, k.Center, k.Cows, k.Dots},
		{k.Rename, k.Frame, k.Timeout, k.Script, k.Text, k.Color},
		{k.URL, k.Title, k.Background, k.Isolation, k.Export, k.Help, k.Quit},
	}
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev step")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next step")),
		MoveUp:     key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move step up")),
		MoveDown:   key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move step down")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add step")),
		Separator:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add separator")),
		Remove:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove step")),
		Normal:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2/3", "button/checkbox/puzzle")),
		Checkbox:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "checkbox")),
		Puzzle:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "puzzle")),
		NoControl:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "remove control")),
		DropButton: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "drop button")),
		DropScript: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "drop script")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "nudge left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "nudge right")),
		Higher:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "nudge up")),
		Lower:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "nudge down")),
		Center:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "center control")),
		Cows:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "randomize cows")),
		Dots:       key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "puzzle dots")),
		Rename:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "rename")),
		Frame:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "frame size")),
		Timeout:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timeout")),
		Script:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit script")),
		Text:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "button text")),
		Color:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "button color")),
		URL:        key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "target URL")),
		Title:      key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "page title")),
		Background: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "cycle background")),
		Isolation:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "toggle credentialless")),
		Export:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// inputKeyMap defines key bindings while a value is being edited
type inputKeyMap struct {
	Commit key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Commit, k.Cancel}}
}

func newInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// exportKeyMap defines key bindings for the export screen
type exportKeyMap struct {
	Copy key.Binding
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k exportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k exportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Copy, k.Up, k.Down, k.Back, k.Quit}}
}

func newExportKeyMap() exportKeyMap {
	return exportKeyMap{
		Copy: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy & clear storage")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
