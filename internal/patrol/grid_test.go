package patrol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardpatrol/internal/model"
	"guardpatrol/internal/patrol"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	text, err := model.ReadMapFile("testdata/" + name)
	require.NoError(t, err)
	return text
}

func TestBuild_Canonical(t *testing.T) {
	grid, guard, err := patrol.Build(loadFixture(t, "canonical.txt"))
	require.NoError(t, err)

	rows, cols := grid.Dimensions()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 6, cols)
	assert.Equal(t, model.Position{Row: 4, Col: 2}, guard.Position())
	assert.Equal(t, model.Up, guard.Direction())
	assert.Empty(t, guard.History())

	start, err := grid.CellAt(4, 2)
	require.NoError(t, err)
	assert.Equal(t, model.GuardFacing(model.Up), start)

	obstacle, err := grid.CellAt(3, 2)
	require.NoError(t, err)
	assert.Equal(t, model.Obstacle, obstacle.Kind)
	assert.Equal(t, 4, grid.Count(model.Obstacle))
	assert.Equal(t, 1, grid.Count(model.GuardCell))
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", patrol.ErrMalformedGrid},
		{"BlankLines", "\n\n  \n", patrol.ErrMalformedGrid},
		{"Ragged", "...\n.^\n...", patrol.ErrMalformedGrid},
		{"TwoGuards", "^..\n...\n..>", patrol.ErrMultipleGuards},
		{"NoGuard", "...\n.#.", patrol.ErrNoGuard},
		{"UnknownSymbol", ".^.\n.x.", patrol.ErrInvalidSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := patrol.Build(tc.input)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuild_TrimsSurroundingBlankLines(t *testing.T) {
	grid, _, err := patrol.Build("\n\n.#.\n.v.\r\n...\n\n")
	require.NoError(t, err)
	rows, cols := grid.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, ".#.\n.v.\n...", grid.String())
}

func TestInBounds(t *testing.T) {
	grid, _, err := patrol.Build("...\n.^.")
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {0, 1}} {
		assert.True(t, grid.InBounds(rc[0], rc[1]), "%v", rc)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		assert.False(t, grid.InBounds(rc[0], rc[1]), "%v", rc)
	}
}

func TestCellAt_OutOfBounds(t *testing.T) {
	grid, _, err := patrol.Build("^")
	require.NoError(t, err)
	_, err = grid.CellAt(-1, 0)
	assert.ErrorIs(t, err, patrol.ErrOutOfBounds)
	_, err = grid.CellAt(0, 1)
	assert.ErrorIs(t, err, patrol.ErrOutOfBounds)
}
