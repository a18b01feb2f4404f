package model

// Centralized glyphs for the UI components
// Using single-width characters so the grid lines up in any terminal
const (
	IconEmpty    = "·" // Middle dot
	IconObstacle = "█" // Full block
	IconVisited  = "•" // Bullet (guard has been here)
	IconLoop     = "◆" // Diamond for inferred loop obstacles
	IconExited   = "✗" // Guard left the map
)

// GuardIcons maps each heading to an arrow.
var GuardIcons = map[Direction]string{
	Up:    "▲",
	Down:  "▼",
	Left:  "◀",
	Right: "▶",
}

// Icon returns the display glyph for a cell.
func (c Cell) Icon() string {
	switch c.Kind {
	case Obstacle:
		return IconObstacle
	case Visited:
		return IconVisited
	case GuardCell:
		return GuardIcons[c.Facing]
	default:
		return IconEmpty
	}
}
