// Package patrol simulates a guard walking a grid and infers the obstacle
// placements that would have trapped it in a loop.
package patrol

import (
	"fmt"
	"strings"

	"guardpatrol/internal/model"
)

// Grid is a fixed-size, row-major cell map.
type Grid struct {
	rows, cols int
	cells      []model.Cell
}

// Build parses a map and returns the grid together with the guard standing on it.
func Build(text string) (*Grid, *Guard, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil, nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}

	lines := strings.Split(text, "\n")
	rowLength := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != rowLength {
			return nil, nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedGrid, i, n, rowLength)
		}
	}

	g := &Grid{
		rows:  len(lines),
		cols:  rowLength,
		cells: make([]model.Cell, len(lines)*rowLength),
	}

	var guard *Guard
	for row, line := range lines {
		for col, c := range []rune(line) {
			switch c {
			case '.':
				// zero value is Empty
			case '#':
				g.cells[g.index(row, col)] = model.Cell{Kind: model.Obstacle}
			case '^', 'v', '<', '>':
				if guard != nil {
					return nil, nil, fmt.Errorf("%w: second guard at (%d,%d), first at %s",
						ErrMultipleGuards, row, col, guard.Position())
				}
				dir, err := model.ParseDirection(c)
				if err != nil {
					return nil, nil, err
				}
				guard = NewGuard(model.Position{Row: row, Col: col}, dir)
				g.cells[g.index(row, col)] = model.GuardFacing(dir)
			default:
				return nil, nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidSymbol, c, row, col)
			}
		}
	}

	if guard == nil {
		return nil, nil, ErrNoGuard
	}
	return g, guard, nil
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Dimensions returns the row and column counts.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds takes signed coordinates so that a step off the top or left edge
// is detected before a Position is ever built from it.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt is a bounds-checked read.
func (g *Grid) CellAt(row, col int) (model.Cell, error) {
	if !g.InBounds(row, col) {
		return model.Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[g.index(row, col)], nil
}

// setCell is only used by the simulator. Obstacles are never overwritten.
func (g *Grid) setCell(row, col int, c model.Cell) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	idx := g.index(row, col)
	if g.cells[idx].Kind == model.Obstacle {
		return fmt.Errorf("patrol: refusing to overwrite obstacle at (%d,%d)", row, col)
	}
	g.cells[idx] = c
	return nil
}

// Row returns a copy of one grid row.
func (g *Grid) Row(row int) []model.Cell {
	out := make([]model.Cell, g.cols)
	copy(out, g.cells[g.index(row, 0):g.index(row, 0)+g.cols])
	return out
}

// Count returns how many cells are of the given kind.
func (g *Grid) Count(kind model.CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for _, c := range g.Row(row) {
			sb.WriteRune(c.Symbol())
		}
		if row < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
