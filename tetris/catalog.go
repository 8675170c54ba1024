package tetris

const (
	// ShapeCount is the number of shapes in the catalog.
	ShapeCount = 22
	// SimpleShapes is the number of classic shapes at the head of the
	// catalog. The rest are only drawn once a board has cleared enough lines.
	SimpleShapes = 7

	LastSimpleShape   = SimpleShapes - 1
	LastAdvancedShape = ShapeCount - 1
)

// ShapeNames labels each catalog entry; used by the debug UI.
var ShapeNames = [ShapeCount]string{
	"cube", "L", "inverse L", "bar", "T", "S", "inverse S",
	"big S", "big inverse S", "hooked L", "hooked inverse L", "tall T",
	"big L", "factory", "inverse factory", "long L", "long inverse L",
	"short bar", "U", "cross", "f", "inverse f",
}

// shapeCells lists the occupied (x, y) offsets of each shape.
var shapeCells = [ShapeCount][]Point{
	{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
	{{1, 2}, {2, 0}, {2, 1}, {2, 2}},
	{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
	{{1, 1}, {2, 1}, {2, 2}, {3, 2}},
	{{1, 2}, {2, 2}, {2, 1}, {3, 1}},

	{{1, 1}, {2, 1}, {2, 2}, {3, 2}, {0, 1}},
	{{1, 2}, {2, 2}, {2, 1}, {3, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}, {2, 2}, {0, 1}},
	{{1, 2}, {2, 0}, {2, 1}, {2, 2}, {3, 1}},
	{{1, 2}, {2, 0}, {2, 1}, {2, 2}, {3, 2}},
	{{1, 0}, {1, 1}, {1, 2}, {2, 2}, {3, 2}},
	{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {3, 2}},
	{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {2, 3}},
	{{1, 0}, {1, 1}, {1, 2}, {2, 3}, {1, 3}},
	{{1, 3}, {2, 0}, {2, 1}, {2, 2}, {2, 3}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{1, 0}, {1, 1}, {1, 2}, {2, 2}, {2, 0}},
	{{1, 0}, {1, 1}, {1, 2}, {2, 1}, {0, 1}},
	{{1, 0}, {1, 1}, {1, 2}, {2, 2}, {1, 3}},
	{{1, 2}, {2, 0}, {2, 1}, {2, 2}, {2, 3}},
}

// ShapeFor returns the mask of catalog entry index. The index must be in
// [0, ShapeCount).
func ShapeFor(index int) Piece {
	var p Piece
	for _, c := range shapeCells[index] {
		p[c.Y][c.X] = true
	}
	return p
}
