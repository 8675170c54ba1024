package tetris_test

import (
	"testing"

	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestResolveRotation(t *testing.T) {
	t.Run("bar turns around its anchor", func(t *testing.T) {
		b := tetris.NewBoard("")
		spawnShape(b, 3)
		for range 4 {
			tetris.ApplyGravity(b)
		}

		assert.True(t, tetris.ResolveRotation(b))

		assert.Equal(t,
			[]tetris.Point{{5, 4}, {5, 5}, {5, 6}, {5, 7}},
			movingCells(b))
		assert.Equal(t, tetris.ShapeFor(3).Rotated(), b.Active)
	})

	t.Run("a settled target vetoes the turn", func(t *testing.T) {
		b := tetris.NewBoard("")
		spawnShape(b, 3)
		for range 4 {
			tetris.ApplyGravity(b)
		}
		// The cell at mask (0,1) would move to mask (1,3).
		b.Grid.Set(b.Anchor.X+1, b.Anchor.Y+3, tetris.Full)
		before := b.Grid

		assert.True(t, tetris.RotationVetoed(b))
		assert.True(t, tetris.ResolveRotation(b))
		assert.Equal(t, before, b.Grid)
		assert.Equal(t, tetris.ShapeFor(3), b.Active)
	})

	t.Run("a settled cell outside the table does not veto", func(t *testing.T) {
		b := tetris.NewBoard("")
		spawnShape(b, 3)
		for range 4 {
			tetris.ApplyGravity(b)
		}
		// (3,3) would only matter if (0,3) held a moving cell.
		b.Grid.Set(b.Anchor.X+3, b.Anchor.Y+3, tetris.Full)

		assert.False(t, tetris.RotationVetoed(b))
	})

	t.Run("walls are never overwritten", func(t *testing.T) {
		b := tetris.NewBoard("")
		spawnShape(b, 3)
		tetris.ResolveRotation(b)
		for !tetris.ResolveLateral(b, tetris.Right) {
		}

		for range 4 {
			tetris.ResolveRotation(b)
			assert.True(t, wallsIntact(&b.Grid))
			assert.Len(t, movingCells(b), 4)
		}
	})

	t.Run("cube is unchanged by a turn", func(t *testing.T) {
		b := tetris.NewBoard("")
		spawnShape(b, 0)
		before := b.Grid

		tetris.ResolveRotation(b)
		assert.Equal(t, before, b.Grid)
	})
}
