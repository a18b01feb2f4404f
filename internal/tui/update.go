package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"guardpatrol/internal/model"
	"guardpatrol/internal/patrol"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgMapReady indicates that the map was loaded and a simulator is ready.
type MsgMapReady struct {
	Sim *patrol.Simulator
}

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.ReportViewport.Width = reportWidth(msg.Width) - 4
		m.ReportViewport.Height = max(msg.Height-12, 3)
		return m, nil

	case MsgMapReady:
		m.Loading = false
		m.Sim = msg.Sim
		rows, cols := m.Sim.Grid().Dimensions()
		log.Printf("[TUI] [DEBUG] Maze dimensions: %dx%d", rows, cols)
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.advanceBy(m.InputBuffer.Value())
				m.InputBuffer.SetValue("")
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		if m.ShowHelp {
			// any other key closes the help dialog
			m.ShowHelp = false
			m.Help.ShowAll = false
			return m, nil
		}
		if m.Sim == nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.Keys.Step):
			m.Sim.Step()
			m.afterMove()
		case key.Matches(msg, m.Keys.Run):
			n := m.Sim.RunToCompletion()
			log.Printf("[TUI] [DEBUG] ran %d steps to completion", n)
			m.afterMove()
		case key.Matches(msg, m.Keys.Jump):
			if !m.Sim.Exited() {
				m.InputMode = true
				m.InputBuffer.Focus()
				m.InputBuffer.SetValue("")
				return m, textinput.Blink
			}
		case key.Matches(msg, m.Keys.Numbers):
			m.ShowNumbers = !m.ShowNumbers
		case key.Matches(msg, m.Keys.Help):
			m.ShowHelp = true
			m.Help.ShowAll = true
		case key.Matches(msg, m.Keys.Scroll):
			m.ReportViewport, cmd = m.ReportViewport.Update(msg)
		}
	}

	return m, cmd
}

func (m *AppModel) advanceBy(value string) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		log.Printf("[TUI] [WARN] ignoring step count %q", value)
		return
	}
	m.Sim.Advance(n)
	m.afterMove()
}

// afterMove builds the final report once the guard has left the grid.
func (m *AppModel) afterMove() {
	if !m.Sim.Exited() || m.Report != nil {
		return
	}
	report, err := patrol.BuildReport(m.Sim, m.Opts.RunID)
	if err != nil {
		m.Err = err
		return
	}
	m.Report = &report
	m.Loops = make(map[model.Position]bool, len(report.LoopObstacles))
	for _, p := range report.LoopObstacles {
		m.Loops[p] = true
	}
	m.ReportViewport.SetContent(reportContent(report))
}

func reportContent(r model.Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Visited cells:   %d\n", r.Guard.VisitedCells))
	sb.WriteString(fmt.Sprintf("Steps:           %d\n", r.Steps))
	sb.WriteString(fmt.Sprintf("Turn events:     %d\n", r.TurnEvents))
	sb.WriteString(fmt.Sprintf("New obstacles:   %d (%d distinct)\n\n", r.LoopCount, r.DistinctLoops))
	for i, p := range r.LoopObstacles {
		sb.WriteString(fmt.Sprintf("%3d. %s %s\n", i+1, model.IconLoop, p))
	}
	return sb.String()
}

// LoadMapCmd reads and builds the map in the background.
func LoadMapCmd(path string) tea.Cmd {
	return func() tea.Msg {
		text, err := model.ReadMapFile(path)
		if err != nil {
			return MsgError(err)
		}
		sim, err := patrol.New(text)
		if err != nil {
			return MsgError(fmt.Errorf("%s: %w", path, err))
		}
		return MsgMapReady{Sim: sim}
	}
}
