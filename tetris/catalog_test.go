package tetris_test

import (
	"testing"

	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	t.Run("simple shapes have four cells", func(t *testing.T) {
		for i := 0; i < tetris.SimpleShapes; i++ {
			assert.Len(t, tetris.ShapeFor(i).Cells(), 4, "shape %d", i)
		}
	})

	t.Run("advanced shapes have three to five cells", func(t *testing.T) {
		for i := tetris.SimpleShapes; i < tetris.ShapeCount; i++ {
			n := len(tetris.ShapeFor(i).Cells())
			assert.GreaterOrEqual(t, n, 3, "shape %d", i)
			assert.LessOrEqual(t, n, 5, "shape %d", i)
		}
	})

	t.Run("bar is horizontal on mask row one", func(t *testing.T) {
		assert.Equal(t, []tetris.Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, tetris.ShapeFor(3).Cells())
	})

	t.Run("every shape is named", func(t *testing.T) {
		for i, name := range tetris.ShapeNames {
			assert.NotEmpty(t, name, "shape %d", i)
		}
	})
}

func TestPieceRotated(t *testing.T) {
	t.Run("bar turns vertical on mask column one", func(t *testing.T) {
		turned := tetris.ShapeFor(3).Rotated()
		assert.Equal(t, []tetris.Point{{1, 0}, {1, 1}, {1, 2}, {1, 3}}, turned.Cells())
	})

	t.Run("four turns restore every shape", func(t *testing.T) {
		for i := range tetris.ShapeCount {
			p := tetris.ShapeFor(i)
			assert.Equal(t, p, p.Rotated().Rotated().Rotated().Rotated(), "shape %d", i)
		}
	})

	t.Run("a turn keeps the cell count", func(t *testing.T) {
		for i := range tetris.ShapeCount {
			p := tetris.ShapeFor(i)
			assert.Len(t, p.Rotated().Cells(), len(p.Cells()), "shape %d", i)
		}
	})

	t.Run("each mask position moves to exactly one place", func(t *testing.T) {
		seen := map[tetris.Point]bool{}
		for y := range tetris.PieceSize {
			for x := range tetris.PieceSize {
				var p tetris.Piece
				p[y][x] = true
				cells := p.Rotated().Cells()
				if assert.Len(t, cells, 1) {
					assert.False(t, seen[cells[0]], "position %v reached twice", cells[0])
					seen[cells[0]] = true
				}
			}
		}
		assert.Len(t, seen, 16)
	})
}
