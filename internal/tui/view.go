package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"guardpatrol/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	visitedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")) // Sky Blue/Cyan
	guardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	loopStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true) // Orange

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

// cellWidth is the rendered width of one grid cell (glyph plus gap).
const cellWidth = 2

func reportWidth(total int) int {
	w := total / 3
	if w < 28 {
		w = 28
	}
	return w
}

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Loading map... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit.\n", m.Err)
	}
	if m.ShowHelp {
		return m.renderHelpDialog()
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	rightWidth := reportWidth(width)
	leftWidth := width - rightWidth - 4
	if leftWidth < 10 {
		leftWidth = 10
	}

	// Interior height (excluding title, footer and borders)
	interiorHeight := height - 6
	if interiorHeight < 3 {
		interiorHeight = 3
	}

	left := panelStyle.
		Width(leftWidth).
		Height(interiorHeight).
		Render(m.renderGrid(leftWidth, interiorHeight))

	right := panelStyle.
		Width(rightWidth - 2).
		Height(interiorHeight).
		Render(m.renderStatus())

	var footer string
	if m.InputMode {
		footer = "Advance by: " + m.InputBuffer.View() + dimStyle.Render("  (enter to run, esc to cancel)")
	} else {
		footer = m.Help.View(m.Keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Guard Patrol"),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		footer,
	)
}

// renderGrid draws the window of the grid that fits the panel.
func (m AppModel) renderGrid(width, height int) string {
	maxRows, maxCols := height, width/cellWidth
	if m.ShowNumbers {
		// one header row and a three character row gutter
		maxRows--
		maxCols = (width - 4) / cellWidth
	}
	if m.Opts.ViewMax > 0 {
		maxRows = min(maxRows, m.Opts.ViewMax)
		maxCols = min(maxCols, m.Opts.ViewMax)
	}

	view := m.Sim.CurrentView(maxRows, maxCols)

	var sb strings.Builder
	if m.ShowNumbers && len(view.Cells) > 0 {
		sb.WriteString("    ")
		for c := range view.Cells[0] {
			sb.WriteString(numberStyle.Render(fmt.Sprintf("%-*d", cellWidth, (view.ColOffset+c)%100)))
		}
		sb.WriteString("\n")
	}

	for r, row := range view.Cells {
		if m.ShowNumbers {
			sb.WriteString(numberStyle.Render(fmt.Sprintf("%3d", view.RowOffset+r)))
			sb.WriteString(" ")
		}
		for c, cell := range row {
			pos := model.Position{Row: view.RowOffset + r, Col: view.ColOffset + c}
			sb.WriteString(m.renderCell(pos, cell))
			sb.WriteString(" ")
		}
		if r < len(view.Cells)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m AppModel) renderCell(pos model.Position, cell model.Cell) string {
	if m.Loops[pos] {
		return loopStyle.Render(model.IconLoop)
	}
	switch cell.Kind {
	case model.Obstacle:
		return obstacleStyle.Render(cell.Icon())
	case model.Visited:
		return visitedStyle.Render(cell.Icon())
	case model.GuardCell:
		return guardStyle.Render(cell.Icon())
	default:
		return emptyStyle.Render(cell.Icon())
	}
}

func (m AppModel) renderStatus() string {
	var sb strings.Builder
	status := m.Sim.GuardSnapshot()
	rows, cols := m.Sim.Grid().Dimensions()

	sb.WriteString(titleStyle.Render("Guard"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Map:       %d x %d\n", rows, cols))
	sb.WriteString(fmt.Sprintf("Position:  %s\n", status.Position))
	sb.WriteString(fmt.Sprintf("Facing:    %s %s\n", model.GuardIcons[status.Direction], status.Direction))
	sb.WriteString(fmt.Sprintf("Steps:     %d\n", m.Sim.Steps()))
	sb.WriteString(fmt.Sprintf("Visited:   %d\n", status.VisitedCells))

	if !status.Exited {
		sb.WriteString("\n" + dimStyle.Render("Patrolling..."))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\n%s Guard left the map\n\n", model.IconExited))
	sb.WriteString(titleStyle.Render("Loop Obstacles"))
	sb.WriteString("\n\n")
	sb.WriteString(m.ReportViewport.View())
	return sb.String()
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}

	legend := strings.Join([]string{
		fmt.Sprintf("%s  empty", model.IconEmpty),
		fmt.Sprintf("%s  obstacle", model.IconObstacle),
		fmt.Sprintf("%s  visited", model.IconVisited),
		fmt.Sprintf("%s  guard (facing %s)", model.GuardIcons[model.Up], model.Up),
		fmt.Sprintf("%s  loop-inducing obstacle", model.IconLoop),
	}, "\n")

	content := titleStyle.Render("Help") + "\n\n" + legend + "\n\n" + m.Help.View(m.Keys) +
		"\n\n" + dimStyle.Render("Press any key to close")

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, LoadMapCmd(m.Opts.InputFile))
}
