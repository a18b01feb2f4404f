package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is returned for characters that are not part of the map alphabet.
var ErrInvalidSymbol = errors.New("patrol: invalid symbol")

// Direction is one of the four compass headings a guard can face.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order starting at Up.
var Directions = [...]Direction{Up, Right, Down, Left}

// ParseDirection decodes a guard marker (^ v < >).
func ParseDirection(c rune) (Direction, error) {
	switch c {
	case '^':
		return Up, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	case '>':
		return Right, nil
	}
	return Up, fmt.Errorf("%w: %q is not a direction", ErrInvalidSymbol, c)
}

// RotateRight turns 90 degrees clockwise.
func (d Direction) RotateRight() Direction {
	return (d + 1) % 4
}

// Invert returns the opposite heading.
func (d Direction) Invert() Direction {
	return (d + 2) % 4
}

// Symbol is the inverse of ParseDirection.
func (d Direction) Symbol() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '>'
	}
}

// Delta returns the unit step for the heading. Rows grow downwards.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MarshalText lets directions appear by name in JSON reports.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (d *Direction) UnmarshalText(text []byte) error {
	for _, candidate := range Directions {
		if candidate.String() == string(text) {
			*d = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: unknown direction %q", ErrInvalidSymbol, text)
}
