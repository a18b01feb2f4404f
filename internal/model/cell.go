package model

import "fmt"

// Position addresses a grid cell.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellKind tags the contents of a cell.
type CellKind int

const (
	Empty CellKind = iota
	Obstacle
	Visited
	GuardCell
)

// Cell is a single map square. Facing is only meaningful for GuardCell.
type Cell struct {
	Kind   CellKind
	Facing Direction
}

// GuardFacing builds the cell occupied by the guard.
func GuardFacing(d Direction) Cell {
	return Cell{Kind: GuardCell, Facing: d}
}

// Symbol renders the cell the way the input map (and the original puzzle) writes it.
func (c Cell) Symbol() rune {
	switch c.Kind {
	case Obstacle:
		return '#'
	case Visited:
		return 'X'
	case GuardCell:
		return c.Facing.Symbol()
	default:
		return '.'
	}
}

func (c Cell) String() string {
	return string(c.Symbol())
}

// Snapshot is one history entry: where the guard stood and which way it faced
// before a step resolved.
type Snapshot struct {
	Position  Position  `json:"position"`
	Direction Direction `json:"direction"`
}
