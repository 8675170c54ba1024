package tetris

// rotationCheck pairs a mask offset that currently holds a Moving cell with
// the offset that cell would occupy after a quarter turn.
type rotationCheck struct {
	source, target Point
}

// rotationChecks is the rotation veto table: a turn is refused when any
// source holds a Moving cell and its target is already settled. Each entry
// follows one step of rotationCycles.
//
// This is a known simplification rather than a full overlap test. It only
// looks at these sixteen pairs inside the 4x4 window, so it can let a turn
// through onto a settled cell or refuse one that would fit.
var rotationChecks = [16]rotationCheck{
	{Point{3, 0}, Point{0, 0}},
	{Point{3, 3}, Point{3, 0}},
	{Point{0, 3}, Point{3, 3}},
	{Point{0, 0}, Point{0, 3}},
	{Point{1, 0}, Point{0, 2}},
	{Point{3, 1}, Point{1, 0}},
	{Point{2, 3}, Point{3, 1}},
	{Point{0, 2}, Point{2, 3}},
	{Point{2, 0}, Point{0, 1}},
	{Point{3, 2}, Point{2, 0}},
	{Point{1, 3}, Point{3, 2}},
	{Point{0, 1}, Point{1, 3}},
	{Point{1, 1}, Point{1, 2}},
	{Point{2, 1}, Point{1, 1}},
	{Point{2, 2}, Point{2, 1}},
	{Point{1, 2}, Point{2, 2}},
}

// RotationVetoed evaluates the veto table against the grid window anchored
// at the active piece.
func RotationVetoed(b *Board) bool {
	at := func(p Point) Cell {
		return b.Grid.At(b.Anchor.X+p.X, b.Anchor.Y+p.Y)
	}
	for _, c := range rotationChecks {
		if at(c.source) == Moving && at(c.target).Settled() {
			return true
		}
	}
	return false
}

// rotationEscapes reports whether the turned mask would put a cell outside
// the grid or onto a wall. The veto table usually catches this through the
// wall cells, but not always, and walls must never be overwritten.
func rotationEscapes(b *Board, turned Piece) bool {
	for _, c := range turned.Cells() {
		x, y := b.Anchor.X+c.X, b.Anchor.Y+c.Y
		if !InBounds(x, y) || IsWall(x, y) {
			return true
		}
	}
	return false
}

// ResolveRotation turns the active piece a quarter turn around its anchor
// unless the veto table refuses it, then re-stamps the piece into the grid.
// It always reports true: a refused turn still consumes the turn cadence.
func ResolveRotation(b *Board) bool {
	if !RotationVetoed(b) {
		if turned := b.Active.Rotated(); !rotationEscapes(b, turned) {
			b.Active = turned
		}
	}

	b.Grid.clearMoving()
	b.stamp()
	return true
}
