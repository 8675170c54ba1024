package tetris

// Cell is the state of a single grid square.
type Cell uint8

const (
	Empty Cell = iota
	Moving
	Full
	Block
	Fading
)

var cellNames = [...]string{
	Empty:  "empty",
	Moving: "moving",
	Full:   "full",
	Block:  "block",
	Fading: "fading",
}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "unknown"
}

// Settled reports whether the cell is occupied by something other than the
// falling piece (a settled square, a wall, or a square waiting to be cleared).
func (c Cell) Settled() bool {
	return c != Empty && c != Moving
}
