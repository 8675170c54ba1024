package tetris

// CheckCompletion marks every row whose playable cells are all Full as
// Fading and flags the board for a line clear. It returns the number of
// rows marked.
func CheckCompletion(b *Board) int {
	marked := 0
	for y := FloorRow - 1; y >= 0; y-- {
		full := 0
		for x := 1; x < GridWidth-1; x++ {
			if b.Grid[y][x] == Full {
				full++
			}
		}
		if full != PlayableWidth {
			continue
		}

		for x := 1; x < GridWidth-1; x++ {
			b.Grid[y][x] = Fading
		}
		b.LineToDelete = true
		marked++
	}
	return marked
}

// DeleteCompleteLines removes every Fading row and returns how many were
// removed. Each removal empties the row and drops every Full and Fading cell
// above it by one; the same row index is then tested again, so stacked
// cleared rows cascade in a single call. With no Fading rows it is a no-op.
func DeleteCompleteLines(b *Board) int {
	deleted := 0
	for y := FloorRow - 1; y >= 0; y-- {
		for b.Grid[y][1] == Fading {
			for x := 1; x < GridWidth-1; x++ {
				b.Grid[y][x] = Empty
			}

			for y2 := y - 1; y2 >= 0; y2-- {
				for x := 1; x < GridWidth-1; x++ {
					if c := b.Grid[y2][x]; c == Full || c == Fading {
						b.Grid[y2+1][x] = c
						b.Grid[y2][x] = Empty
					}
				}
			}
			deleted++
		}
	}
	return deleted
}

// advanceFade runs one frame of the line clear animation and compacts the
// grid once FadingTime frames have elapsed. It returns the number of rows
// removed this frame.
func advanceFade(b *Board) int {
	b.Counters.Fade++
	if b.Counters.Fade%fadeBlink < fadeBlink/2 {
		b.Tone = ToneBright
	} else {
		b.Tone = ToneDim
	}

	if b.Counters.Fade < FadingTime {
		return 0
	}

	deleted := DeleteCompleteLines(b)
	b.Counters.Fade = 0
	b.LineToDelete = false
	b.Lines += deleted
	return deleted
}
