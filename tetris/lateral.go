package tetris

// lateralBlocked reports whether any Moving cell would hit a wall or a Full
// cell when shifted one column in dir.
func lateralBlocked(b *Board, dir Direction) bool {
	for y := FloorRow - 1; y >= 0; y-- {
		for x := 1; x < GridWidth-1; x++ {
			if b.Grid[y][x] != Moving {
				continue
			}
			nx := x + int(dir)
			if nx <= 0 || nx >= GridWidth-1 || b.Grid[y][nx] == Full {
				return true
			}
		}
	}
	return false
}

// ResolveLateral shifts the active piece one column in dir as a rigid unit
// and reports whether the move collided. A colliding move leaves the board
// untouched. NoDirection never collides and moves nothing.
//
// Sweep order is part of the contract: a left move scans each row
// left-to-right and a right move right-to-left, so a cell is always moved
// out of the way before its neighbour is written into it.
func ResolveLateral(b *Board, dir Direction) bool {
	if dir == NoDirection {
		return false
	}
	if lateralBlocked(b, dir) {
		return true
	}

	for y := FloorRow - 1; y >= 0; y-- {
		if dir == Left {
			for x := 1; x < GridWidth-1; x++ {
				if b.Grid[y][x] == Moving {
					b.Grid[y][x-1] = Moving
					b.Grid[y][x] = Empty
				}
			}
		} else {
			for x := GridWidth - 2; x >= 1; x-- {
				if b.Grid[y][x] == Moving {
					b.Grid[y][x+1] = Moving
					b.Grid[y][x] = Empty
				}
			}
		}
	}
	b.Anchor.X += int(dir)
	return false
}
