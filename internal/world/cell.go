package world

// Cell identifies what occupies one grid square.
type Cell uint8

const (
	Plain    Cell = iota // Open ground, the only walkable kind
	Obstacle             // Rock outcrop
	Energy               // Energy deposit, collected by scientists
	Mineral              // Mineral deposit, extracted by miners
	Base                 // Science base (exactly one per grid)
	cellCount            // sentinel
)

// String returns the lower-case name of the cell kind.
func (c Cell) String() string {
	switch c {
	case Plain:
		return "plain"
	case Obstacle:
		return "obstacle"
	case Energy:
		return "energy"
	case Mineral:
		return "mineral"
	case Base:
		return "base"
	default:
		return "unknown"
	}
}

// IsResource reports whether the cell carries an extractable deposit.
func (c Cell) IsResource() bool {
	return c == Energy || c == Mineral
}

// ASCII returns the single-byte glyph used by plain-text renderers.
func (c Cell) ASCII() rune {
	switch c {
	case Plain:
		return '.'
	case Obstacle:
		return '#'
	case Energy:
		return 'E'
	case Mineral:
		return 'M'
	case Base:
		return 'B'
	default:
		return '?'
	}
}

// Emoji returns the glyph used when the output is a capable terminal.
func (c Cell) Emoji() string {
	switch c {
	case Plain:
		return "· "
	case Obstacle:
		return "🪨"
	case Energy:
		return "⚡"
	case Mineral:
		return "⛏️"
	case Base:
		return "🏭"
	default:
		return "? "
	}
}

// Colour returns the base RGB colour for a cell kind.
func (c Cell) Colour() (r, g, b uint8) {
	switch c {
	case Plain:
		return 92, 64, 48
	case Obstacle:
		return 40, 36, 34
	case Energy:
		return 230, 200, 40
	case Mineral:
		return 70, 150, 190
	case Base:
		return 220, 220, 220
	default:
		return 255, 0, 255
	}
}
