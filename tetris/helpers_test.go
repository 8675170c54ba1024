package tetris_test

import "github.com/plus3/stackfall/tetris"

// script is a Random that replays fixed values and records the bounds it
// was asked for.
type script struct {
	values []int
	maxes  []int
}

func (s *script) Value(max int) int {
	s.maxes = append(s.maxes, max)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return min(v, max)
}

// keys is an Input with fixed pressed and held sets.
type keys struct {
	pressed map[tetris.Action]bool
	held    map[tetris.Action]bool
}

func press(actions ...tetris.Action) keys {
	k := keys{pressed: map[tetris.Action]bool{}, held: map[tetris.Action]bool{}}
	for _, a := range actions {
		k.pressed[a] = true
	}
	return k
}

func hold(actions ...tetris.Action) keys {
	k := keys{pressed: map[tetris.Action]bool{}, held: map[tetris.Action]bool{}}
	for _, a := range actions {
		k.held[a] = true
	}
	return k
}

func (k keys) Pressed(a tetris.Action) bool { return k.pressed[a] }
func (k keys) Held(a tetris.Action) bool    { return k.held[a] }

// spawnShape spawns shape as the active piece of b. The preview is filled
// with the cube.
func spawnShape(b *tetris.Board, shape int) {
	b.BeginPlay = false
	b.Incoming = tetris.ShapeFor(shape)
	b.IncomingShape = shape
	b.PieceActive = tetris.Spawn(b, &script{})
}

func movingCells(b *tetris.Board) []tetris.Point {
	var cells []tetris.Point
	for y := range tetris.GridHeight {
		for x := range tetris.GridWidth {
			if b.Grid.At(x, y) == tetris.Moving {
				cells = append(cells, tetris.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

func shifted(cells []tetris.Point, dx, dy int) []tetris.Point {
	out := make([]tetris.Point, len(cells))
	for i, c := range cells {
		out[i] = tetris.Point{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

func wallsIntact(g *tetris.Grid) bool {
	for y := range tetris.GridHeight {
		for x := range tetris.GridWidth {
			if tetris.IsWall(x, y) && g.At(x, y) != tetris.Block {
				return false
			}
		}
	}
	return true
}
