package tetris

// PieceSize is the edge length of a piece mask.
const PieceSize = 4

// Piece is a 4x4 occupancy mask indexed [y][x]. A true cell is rendered as
// Moving once the piece is stamped into a grid.
type Piece [PieceSize][PieceSize]bool

// Point is a cell offset inside a piece mask or a grid coordinate.
type Point struct {
	X, Y int
}

// Cells returns the occupied offsets of the mask in row-major order.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 5)
	for y := range PieceSize {
		for x := range PieceSize {
			if p[y][x] {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

func (p *Piece) at(pt Point) bool     { return p[pt.Y][pt.X] }
func (p *Piece) set(pt Point, v bool) { p[pt.Y][pt.X] = v }

// rotationCycles is the quarter turn of a 4x4 mask written as four 4-cycles:
// the outer corners, the two edge rings and the central 2x2. Within a cycle
// every position takes the value of the position that follows it, and the
// last position takes the first one's original value.
var rotationCycles = [4][4]Point{
	{{0, 0}, {3, 0}, {3, 3}, {0, 3}},
	{{1, 0}, {3, 1}, {2, 3}, {0, 2}},
	{{2, 0}, {3, 2}, {1, 3}, {0, 1}},
	{{1, 1}, {2, 1}, {2, 2}, {1, 2}},
}

// Rotated returns the mask turned a quarter turn by permuting its cells along
// rotationCycles. Four rotations restore the original mask.
func (p Piece) Rotated() Piece {
	for _, cycle := range rotationCycles {
		first := p.at(cycle[0])
		for i := 0; i < len(cycle)-1; i++ {
			p.set(cycle[i], p.at(cycle[i+1]))
		}
		p.set(cycle[len(cycle)-1], first)
	}
	return p
}
