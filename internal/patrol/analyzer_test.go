package patrol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardpatrol/internal/model"
	"guardpatrol/internal/patrol"
)

func snap(row, col int, d model.Direction) model.Snapshot {
	return model.Snapshot{Position: model.Position{Row: row, Col: col}, Direction: d}
}

func TestTurnEvents_KeepsPostTurnEntry(t *testing.T) {
	history := []model.Snapshot{
		snap(4, 2, model.Up),
		snap(4, 2, model.Right),
		snap(4, 3, model.Right),
		snap(4, 3, model.Down),
		snap(4, 3, model.Left),
		snap(4, 2, model.Left),
	}
	assert.Equal(t, []model.Snapshot{
		snap(4, 2, model.Right),
		snap(4, 3, model.Down),
		snap(4, 3, model.Left),
	}, patrol.TurnEvents(history))
}

func TestTurnEvents_ShortHistory(t *testing.T) {
	assert.Empty(t, patrol.TurnEvents(nil))
	assert.Empty(t, patrol.TurnEvents([]model.Snapshot{snap(0, 0, model.Up)}))
}

func TestFindLoopObstacles_FewerThanThreeTurns(t *testing.T) {
	analysis := patrol.FindLoopObstacles([]model.Snapshot{
		snap(5, 5, model.Up),
		snap(5, 5, model.Right),
		snap(5, 8, model.Right),
		snap(5, 8, model.Down),
	})
	assert.Len(t, analysis.TurnEvents, 2)
	assert.Empty(t, analysis.Obstacles)
	assert.Equal(t, 0, analysis.Count())
}

func TestFindLoopObstacles_Rectangle(t *testing.T) {
	// turns at (5,5) Right, (5,8) Down, (9,8) Left
	history := []model.Snapshot{
		snap(5, 5, model.Up),
		snap(5, 5, model.Right),
		snap(5, 6, model.Right),
		snap(5, 7, model.Right),
		snap(5, 8, model.Right),
		snap(5, 8, model.Down),
		snap(6, 8, model.Down),
		snap(7, 8, model.Down),
		snap(8, 8, model.Down),
		snap(9, 8, model.Down),
		snap(9, 8, model.Left),
	}
	analysis := patrol.FindLoopObstacles(history)
	require.Len(t, analysis.TurnEvents, 3)
	// w1 = (5,8) Down, travelled 4 rows to w2 = (9,8)
	assert.Equal(t, []model.Position{{Row: 10, Col: 8}}, analysis.Obstacles)
}

func TestFindLoopObstacles_EachHeading(t *testing.T) {
	cases := []struct {
		name   string
		turns  []model.Snapshot
		expect model.Position
	}{
		{"Up", []model.Snapshot{snap(9, 9, model.Left), snap(9, 2, model.Up), snap(4, 2, model.Right)}, model.Position{Row: 3, Col: 2}},
		{"Right", []model.Snapshot{snap(9, 2, model.Up), snap(4, 2, model.Right), snap(4, 7, model.Down)}, model.Position{Row: 4, Col: 8}},
		{"Down", []model.Snapshot{snap(4, 2, model.Right), snap(4, 7, model.Down), snap(8, 7, model.Left)}, model.Position{Row: 9, Col: 7}},
		{"Left", []model.Snapshot{snap(4, 7, model.Down), snap(8, 7, model.Left), snap(8, 1, model.Up)}, model.Position{Row: 8, Col: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// prefix each turn with its pre-turn pose so TurnEvents recovers the three corners
			var history []model.Snapshot
			prev := tc.turns[0].Direction.Invert()
			for _, turn := range tc.turns {
				history = append(history, model.Snapshot{Position: turn.Position, Direction: prev}, turn)
				prev = turn.Direction
			}
			analysis := patrol.FindLoopObstacles(history)
			require.Len(t, analysis.TurnEvents, 3)
			assert.Equal(t, []model.Position{tc.expect}, analysis.Obstacles)
		})
	}
}

func TestFindLoopObstacles_SkipsNonClockwiseWindow(t *testing.T) {
	// Up -> Left is a counter-clockwise turn and cannot come from a real run
	turns := []model.Snapshot{snap(5, 5, model.Up), snap(2, 5, model.Left), snap(2, 1, model.Down)}
	history := append([]model.Snapshot{snap(6, 5, model.Right)}, turns...)
	analysis := patrol.FindLoopObstacles(history)
	require.Len(t, analysis.TurnEvents, 3)
	assert.Empty(t, analysis.Obstacles)
}

func TestFindLoopObstacles_SkipsNegativePositions(t *testing.T) {
	history := []model.Snapshot{
		snap(1, 1, model.Down),
		snap(1, 1, model.Left),
		snap(1, 1, model.Up),
		snap(0, 1, model.Right),
	}
	analysis := patrol.FindLoopObstacles(history)
	require.Len(t, analysis.TurnEvents, 3)
	assert.Empty(t, analysis.Obstacles)
}

func TestFindLoopObstacles_Sample(t *testing.T) {
	sim, err := patrol.New(loadFixture(t, "sample.txt"))
	require.NoError(t, err)
	sim.RunToCompletion()

	analysis, err := sim.AnalyzeLoops()
	require.NoError(t, err)
	assert.Len(t, analysis.TurnEvents, 10)
	assert.Equal(t, []model.Position{
		{Row: 7, Col: 8}, {Row: 6, Col: 1}, {Row: 3, Col: 2}, {Row: 4, Col: 7},
		{Row: 9, Col: 6}, {Row: 8, Col: 0}, {Row: 6, Col: 1}, {Row: 7, Col: 8},
	}, analysis.Obstacles)
	assert.Equal(t, 8, analysis.Count())
	assert.Equal(t, 6, analysis.DistinctCount())
	assert.Equal(t, analysis.Obstacles[:6], analysis.Distinct())
}

func TestFindLoopObstacles_PureAndRepeatable(t *testing.T) {
	sim, err := patrol.New(loadFixture(t, "sample.txt"))
	require.NoError(t, err)
	sim.RunToCompletion()

	history := sim.Guard().History()
	assert.Equal(t, patrol.FindLoopObstacles(history), patrol.FindLoopObstacles(history))
	assert.Equal(t, history, sim.Guard().History())
}
