package tetris_test

import (
	"testing"

	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawShape(t *testing.T) {
	t.Run("low draw keeps to simple shapes", func(t *testing.T) {
		rng := &script{values: []int{223, 6}}
		assert.Equal(t, 6, tetris.DrawShape(rng, 0))
		assert.Equal(t, []int{223, 6}, rng.maxes)
	})

	t.Run("a draw of exactly 300 is not enough", func(t *testing.T) {
		rng := &script{values: []int{300, 0}}
		tetris.DrawShape(rng, 100)
		assert.Equal(t, []int{323, 6}, rng.maxes)
	})

	t.Run("a draw above 300 opens the advanced shapes", func(t *testing.T) {
		rng := &script{values: []int{301, 21}}
		assert.Equal(t, 21, tetris.DrawShape(rng, 78))
		assert.Equal(t, []int{301, 21}, rng.maxes)
	})

	t.Run("no advanced shapes without cleared lines", func(t *testing.T) {
		rng := tetris.NewPCG(1)
		for range 10000 {
			require.LessOrEqual(t, tetris.DrawShape(rng, 0), tetris.LastSimpleShape)
		}
	})

	t.Run("advanced share follows the weight formula", func(t *testing.T) {
		// lines=177 gives a draw in [0, 400]; 100 of 401 values exceed 300
		// and 15 of the 22 shapes are advanced.
		const samples = 10000
		rng := tetris.NewPCG(7)
		advanced := 0
		for range samples {
			if tetris.DrawShape(rng, 177) > tetris.LastSimpleShape {
				advanced++
			}
		}
		expected := 100.0 / 401.0 * 15.0 / 22.0
		assert.InDelta(t, expected, float64(advanced)/samples, 0.03)
	})

	t.Run("advanced shapes never get less likely", func(t *testing.T) {
		share := func(lines int) float64 {
			rng := tetris.NewPCG(3)
			n := 0
			for range 5000 {
				if tetris.DrawShape(rng, lines) > tetris.LastSimpleShape {
					n++
				}
			}
			return float64(n) / 5000
		}
		assert.LessOrEqual(t, share(100), share(400)+0.02)
	})
}

func TestSpawn(t *testing.T) {
	t.Run("first spawn fills the preview first", func(t *testing.T) {
		b := tetris.NewBoard("ada")
		rng := &script{values: []int{0, 3, 0, 0}}

		require.True(t, tetris.Spawn(b, rng))

		assert.False(t, b.BeginPlay)
		assert.Equal(t, 3, b.ActiveShape)
		assert.Equal(t, 0, b.IncomingShape)
		assert.Equal(t, tetris.ShapeFor(0), b.Incoming)
		assert.Equal(t, tetris.Point{X: tetris.SpawnX, Y: 0}, b.Anchor)
		assert.Len(t, rng.maxes, 4)
		assert.Equal(t,
			[]tetris.Point{{4, 1}, {5, 1}, {6, 1}, {7, 1}},
			movingCells(b))
	})

	t.Run("later spawns promote the preview", func(t *testing.T) {
		b := tetris.NewBoard("ada")
		tetris.Spawn(b, &script{values: []int{0, 3, 0, 5}})
		b.Grid.Reset()

		rng := &script{values: []int{0, 2}}
		tetris.Spawn(b, rng)

		assert.Equal(t, 5, b.ActiveShape)
		assert.Equal(t, 2, b.IncomingShape)
		assert.Len(t, rng.maxes, 2)
		assert.Equal(t, 2, b.Pieces)
	})

	t.Run("difficulty uses the board's lines", func(t *testing.T) {
		b := tetris.NewBoard("ada")
		b.Lines = 40
		rng := &script{}
		tetris.Spawn(b, rng)
		assert.Equal(t, 263, rng.maxes[0])
	})
}
