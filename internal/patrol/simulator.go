package patrol

import (
	"log"

	"guardpatrol/internal/model"
)

// State is the simulator's run state.
type State int

const (
	Running State = iota
	ExitedGrid
)

func (s State) String() string {
	if s == ExitedGrid {
		return "exited"
	}
	return "running"
}

// Simulator owns the grid and the guard for the duration of a run and
// advances the guard one step at a time. It never looks for cycles: a run
// ends only when the guard walks off the grid.
type Simulator struct {
	grid  *Grid
	guard *Guard
	state State
	steps int
}

// NewSimulator wraps an already built grid and guard.
func NewSimulator(grid *Grid, guard *Guard) *Simulator {
	return &Simulator{grid: grid, guard: guard}
}

// New builds a simulator straight from map text.
func New(text string) (*Simulator, error) {
	grid, guard, err := Build(text)
	if err != nil {
		return nil, err
	}
	return NewSimulator(grid, guard), nil
}

func (s *Simulator) Grid() *Grid {
	return s.grid
}

func (s *Simulator) Guard() *Guard {
	return s.guard
}

func (s *Simulator) State() State {
	return s.state
}

// Exited reports whether the guard has left the grid.
func (s *Simulator) Exited() bool {
	return s.state == ExitedGrid
}

// Steps is the number of state transitions performed so far.
func (s *Simulator) Steps() int {
	return s.steps
}

// Step performs exactly one transition and reports whether the guard left the
// grid on it. Once exited, further calls do nothing and keep returning true.
func (s *Simulator) Step() bool {
	if s.state == ExitedGrid {
		return true
	}

	s.guard.RecordSnapshot()
	s.steps++

	pos := s.guard.Position()
	dir := s.guard.Direction()
	dRow, dCol := dir.Delta()
	nextRow, nextCol := pos.Row+dRow, pos.Col+dCol

	if !s.grid.InBounds(nextRow, nextCol) {
		s.mark(pos, model.Cell{Kind: model.Visited})
		s.state = ExitedGrid
		log.Printf("[PATROL] [INFO] guard left the grid from %s facing %s after %d steps", pos, dir, s.steps)
		return true
	}

	next, _ := s.grid.CellAt(nextRow, nextCol)
	if next.Kind == model.Obstacle {
		s.guard.Rotate()
		s.mark(pos, model.GuardFacing(s.guard.Direction()))
		log.Printf("[PATROL] [DEBUG] obstacle at (%d,%d), turning %s -> %s", nextRow, nextCol, dir, s.guard.Direction())
		return false
	}

	s.mark(pos, model.Cell{Kind: model.Visited})
	nextPos := model.Position{Row: nextRow, Col: nextCol}
	s.guard.Relocate(nextPos)
	s.mark(nextPos, model.GuardFacing(dir))
	return false
}

// mark writes a cell the guard occupies or has just left. Those cells are
// never obstacles and always in bounds, so a failure is a broken invariant.
func (s *Simulator) mark(pos model.Position, c model.Cell) {
	if err := s.grid.setCell(pos.Row, pos.Col, c); err != nil {
		panic(err)
	}
}

// RunToCompletion steps until the guard exits and returns the number of steps
// this call performed.
func (s *Simulator) RunToCompletion() int {
	start := s.steps
	for !s.Step() {
	}
	return s.steps - start
}

// Advance performs up to n steps, stopping early on exit. It returns whether
// the guard has exited.
func (s *Simulator) Advance(n int) bool {
	for i := 0; i < n; i++ {
		if s.Step() {
			return true
		}
	}
	return s.Exited()
}

// GuardSnapshot is the status surface for presentation adapters.
func (s *Simulator) GuardSnapshot() model.GuardStatus {
	return model.GuardStatus{
		Position:     s.guard.Position(),
		Direction:    s.guard.Direction(),
		VisitedCells: s.guard.VisitedCellCount(),
		Exited:       s.Exited(),
	}
}

// AnalyzeLoops runs the loop analysis over the finished history. Analysing a
// run that is still on the grid is refused.
func (s *Simulator) AnalyzeLoops() (LoopAnalysis, error) {
	if !s.Exited() {
		return LoopAnalysis{}, ErrRunIncomplete
	}
	return FindLoopObstacles(s.guard.History()), nil
}
