package tetris_test

import (
	"testing"

	"github.com/plus3/stackfall/tetris"
)

func BenchmarkBoardStep(b *testing.B) {
	rng := tetris.NewPCG(1)
	in := &randomKeys{rng: tetris.NewPCG(2)}
	board := tetris.NewBoard("")

	b.ReportAllocs()
	for b.Loop() {
		in.roll()
		board.Step(in, rng)
		if board.GameOver {
			board.Reset()
		}
	}
}

func BenchmarkDeleteCompleteLines(b *testing.B) {
	rows := patterned()
	rows[15] = fullRow
	rows[16] = fullRow

	for b.Loop() {
		board := boardWith(rows...)
		tetris.CheckCompletion(board)
		tetris.DeleteCompleteLines(board)
	}
}
