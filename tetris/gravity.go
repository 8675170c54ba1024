package tetris

// detectGrounding sets b.Detection when any Moving cell rests on a Full or
// Block cell. Rows are scanned bottom-to-top.
func detectGrounding(b *Board) {
	for y := FloorRow - 1; y >= 0; y-- {
		for x := 1; x < GridWidth-1; x++ {
			if b.Grid[y][x] != Moving {
				continue
			}
			if below := b.Grid.At(x, y+1); below == Full || below == Block {
				b.Detection = true
			}
		}
	}
}

// ApplyGravity advances the active piece by one gravity step and reports
// whether it was grounded.
//
// A grounded piece settles: every Moving cell becomes Full and the board
// asks for a new piece on the next step. Otherwise every Moving cell moves
// down one row. The shift processes rows bottom-to-top so a cell is always
// relocated before the cell above it is written into its old position.
func ApplyGravity(b *Board) bool {
	detectGrounding(b)

	if b.Detection {
		for y := FloorRow - 1; y >= 0; y-- {
			for x := 1; x < GridWidth-1; x++ {
				if b.Grid[y][x] == Moving {
					b.Grid[y][x] = Full
				}
			}
		}
		b.Detection = false
		b.PieceActive = false
		return true
	}

	for y := FloorRow - 1; y >= 0; y-- {
		for x := 1; x < GridWidth-1; x++ {
			if b.Grid[y][x] == Moving {
				b.Grid[y+1][x] = Moving
				b.Grid[y][x] = Empty
			}
		}
	}
	b.Anchor.Y++
	return false
}
