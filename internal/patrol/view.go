package patrol

import "guardpatrol/internal/model"

// View is a read-only rectangular window onto the grid.
type View struct {
	Cells     [][]model.Cell
	RowOffset int
	ColOffset int
}

// CurrentView returns the whole grid when it fits in maxRows x maxCols,
// otherwise a window of that size centred on the guard and clamped to the grid
// edges. Non-positive limits mean "no limit" on that axis.
func (s *Simulator) CurrentView(maxRows, maxCols int) View {
	rows, cols := s.grid.Dimensions()
	pos := s.guard.Position()

	rowStart, rowEnd := window(pos.Row, maxRows, rows)
	colStart, colEnd := window(pos.Col, maxCols, cols)

	cells := make([][]model.Cell, 0, rowEnd-rowStart)
	for r := rowStart; r < rowEnd; r++ {
		cells = append(cells, s.grid.Row(r)[colStart:colEnd])
	}
	return View{Cells: cells, RowOffset: rowStart, ColOffset: colStart}
}

// window centres a span of length visible on focus within [0, total).
func window(focus, visible, total int) (start, end int) {
	if visible <= 0 || visible >= total {
		return 0, total
	}
	if focus >= visible/2 {
		start = focus - visible/2
	}
	if start+visible > total {
		start = total - visible
	}
	return start, start + visible
}
