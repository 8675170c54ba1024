package tetris

import "strings"

const (
	GridWidth  = 12
	GridHeight = 20

	// PlayableWidth is the number of columns between the two walls.
	PlayableWidth = GridWidth - 2
	// FloorRow is the permanently blocked bottom row.
	FloorRow = GridHeight - 1
)

// Grid holds the cells of one board, row-major. Column 0, column
// GridWidth-1 and row GridHeight-1 are walls and stay Block for the
// lifetime of the grid.
type Grid [GridHeight][GridWidth]Cell

// NewGrid returns an empty grid surrounded by its walls and floor.
func NewGrid() Grid {
	var g Grid
	g.Reset()
	return g
}

// Reset clears every playable cell and restores the walls.
func (g *Grid) Reset() {
	for y := range GridHeight {
		for x := range GridWidth {
			if IsWall(x, y) {
				g[y][x] = Block
			} else {
				g[y][x] = Empty
			}
		}
	}
}

// IsWall reports whether (x, y) is a wall or floor coordinate.
func IsWall(x, y int) bool {
	return x == 0 || x == GridWidth-1 || y == FloorRow
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < GridWidth && y >= 0 && y < GridHeight
}

// At returns the cell at (x, y). Coordinates outside the grid read as Block.
func (g *Grid) At(x, y int) Cell {
	if !InBounds(x, y) {
		return Block
	}
	return g[y][x]
}

// Set writes a cell. Writes outside the grid or onto a wall are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !InBounds(x, y) || IsWall(x, y) {
		return
	}
	g[y][x] = c
}

// Count returns how many cells of the grid are in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for y := range GridHeight {
		for x := range GridWidth {
			if g[y][x] == c {
				n++
			}
		}
	}
	return n
}

// clearMoving turns every Moving cell back to Empty.
func (g *Grid) clearMoving() {
	for y := FloorRow - 1; y >= 0; y-- {
		for x := 1; x < GridWidth-1; x++ {
			if g[y][x] == Moving {
				g[y][x] = Empty
			}
		}
	}
}

var cellGlyphs = [...]byte{
	Empty:  '.',
	Moving: '@',
	Full:   '#',
	Block:  '|',
	Fading: '~',
}

// String renders the grid one row per line, used by tests and the debug UI.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(GridHeight * (GridWidth + 1))
	for y := range GridHeight {
		for x := range GridWidth {
			sb.WriteByte(cellGlyphs[g[y][x]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseRows builds a grid from rows written in the String format. Rows are
// applied top-down starting at row 0; missing rows stay empty and walls are
// always restored. It exists for tests and tooling.
func ParseRows(rows ...string) Grid {
	g := NewGrid()
	for y, row := range rows {
		if y >= FloorRow {
			break
		}
		for x := 1; x < GridWidth-1 && x < len(row); x++ {
			switch row[x] {
			case '@':
				g[y][x] = Moving
			case '#':
				g[y][x] = Full
			case '~':
				g[y][x] = Fading
			default:
				g[y][x] = Empty
			}
		}
	}
	return g
}
