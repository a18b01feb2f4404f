package tui

import (
	"guardpatrol/internal/model"
	"guardpatrol/internal/patrol"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the TUI.
type Options struct {
	InputFile   string
	RunID       string
	ShowNumbers bool
	ViewMax     int // Largest viewport edge in cells, 0 = fit the terminal
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Sim     *patrol.Simulator
	Report  *model.Report
	Loops   map[model.Position]bool
	Loading bool
	Err     error
	Opts    Options

	// UI State
	WindowSize  tea.WindowSizeMsg
	ShowNumbers bool
	ShowHelp    bool

	// Step prompt ('g')
	InputMode   bool
	InputBuffer textinput.Model

	// Components
	ReportViewport viewport.Model
	Keys           keyMap
	Help           help.Model
}

type keyMap struct {
	Step    key.Binding
	Run     key.Binding
	Jump    key.Binding
	Numbers key.Binding
	Scroll  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Run, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Run, k.Jump},
		{k.Numbers, k.Scroll},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Step:    key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m", "move one step")),
		Run:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run to exit")),
		Jump:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "advance N steps")),
		Numbers: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "row/col numbers")),
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll report")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// InitialModel returns the initial state.
func InitialModel(opts Options) AppModel {
	ti := textinput.New()
	ti.Placeholder = "steps..."
	ti.CharLimit = 9
	ti.Width = 12

	return AppModel{
		Loading:        true,
		Opts:           opts,
		ShowNumbers:    opts.ShowNumbers,
		InputBuffer:    ti,
		ReportViewport: viewport.New(0, 0),
		Keys:           defaultKeyMap(),
		Help:           help.New(),
	}
}
