package patrol

import "guardpatrol/internal/model"

// LoopAnalysis holds the inferred loop-inducing obstacle positions in the
// order they were found. Repeated positions are kept.
type LoopAnalysis struct {
	Obstacles  []model.Position
	TurnEvents []model.Snapshot
}

// Count is the number of inferred obstacles, duplicates included.
func (a LoopAnalysis) Count() int {
	return len(a.Obstacles)
}

// DistinctCount is the number of different inferred positions.
func (a LoopAnalysis) DistinctCount() int {
	return len(a.Distinct())
}

// Distinct returns the inferred positions without repeats, first occurrence first.
func (a LoopAnalysis) Distinct() []model.Position {
	seen := make(map[model.Position]struct{}, len(a.Obstacles))
	out := make([]model.Position, 0, len(a.Obstacles))
	for _, p := range a.Obstacles {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// TurnEvents keeps the later entry of every adjacent pair of history entries
// whose headings differ, i.e. the pose right after each turn.
func TurnEvents(history []model.Snapshot) []model.Snapshot {
	var turns []model.Snapshot
	for i := 1; i < len(history); i++ {
		if history[i].Direction != history[i-1].Direction {
			turns = append(turns, history[i])
		}
	}
	return turns
}

// FindLoopObstacles slides a window over three consecutive turn events. When
// the first two form one clockwise turn, the three corners describe three
// sides of a rectangle and the obstacle is placed one cell past the second
// leg, measured from the middle corner.
func FindLoopObstacles(history []model.Snapshot) LoopAnalysis {
	turns := TurnEvents(history)
	analysis := LoopAnalysis{TurnEvents: turns, Obstacles: []model.Position{}}

	for i := 0; i+2 < len(turns); i++ {
		w0, w1, w2 := turns[i], turns[i+1], turns[i+2]
		if w0.Direction.RotateRight() != w1.Direction {
			continue
		}

		magnitude := max(abs(w2.Position.Row-w1.Position.Row), abs(w2.Position.Col-w1.Position.Col))
		dRow, dCol := w1.Direction.Delta()
		row := w1.Position.Row + dRow*(magnitude+1)
		col := w1.Position.Col + dCol*(magnitude+1)
		if row < 0 || col < 0 {
			// only reachable with a hand-built history that never came from a run
			continue
		}
		analysis.Obstacles = append(analysis.Obstacles, model.Position{Row: row, Col: col})
	}
	return analysis
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
