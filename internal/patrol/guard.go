package patrol

import "guardpatrol/internal/model"

// Guard is the mobile agent: current pose plus an append-only history of poses
// recorded before each step.
type Guard struct {
	position  model.Position
	direction model.Direction
	history   []model.Snapshot
}

// NewGuard places a guard with an empty history.
func NewGuard(pos model.Position, dir model.Direction) *Guard {
	return &Guard{position: pos, direction: dir}
}

func (g *Guard) Position() model.Position {
	return g.position
}

func (g *Guard) Direction() model.Direction {
	return g.direction
}

// RecordSnapshot appends the current pose to the history.
func (g *Guard) RecordSnapshot() {
	g.history = append(g.history, model.Snapshot{Position: g.position, Direction: g.direction})
}

// Rotate turns the guard clockwise.
func (g *Guard) Rotate() {
	g.direction = g.direction.RotateRight()
}

// Relocate moves the guard without changing its heading.
func (g *Guard) Relocate(pos model.Position) {
	g.position = pos
}

// VisitedCellCount counts distinct positions in the history, ignoring heading.
func (g *Guard) VisitedCellCount() int {
	seen := make(map[model.Position]struct{}, len(g.history))
	for _, s := range g.history {
		seen[s.Position] = struct{}{}
	}
	return len(seen)
}

// History returns a copy of the recorded poses, oldest first.
func (g *Guard) History() []model.Snapshot {
	out := make([]model.Snapshot, len(g.history))
	copy(out, g.history)
	return out
}
