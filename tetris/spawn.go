package tetris

const (
	// spawnWeightBase is added to the cleared line count to form the upper
	// bound of the difficulty draw.
	spawnWeightBase = 223
	// advancedThreshold is the difficulty draw value above which the
	// advanced shapes become eligible.
	advancedThreshold = 300
)

// DrawShape picks a catalog index for a board that has cleared lines rows.
// A first draw in [0, lines+223] decides whether advanced shapes are
// eligible (draw > 300), so they become more likely as lines grow and are
// impossible before 78 lines.
func DrawShape(rng Random, lines int) int {
	last := LastSimpleShape
	if rng.Value(lines+spawnWeightBase) > advancedThreshold {
		last = LastAdvancedShape
	}
	return rng.Value(last)
}

func (b *Board) drawIncoming(rng Random) {
	b.IncomingShape = DrawShape(rng, b.Lines)
	b.Incoming = ShapeFor(b.IncomingShape)
}

// Spawn promotes the incoming piece to the active slot at the spawn anchor,
// draws a fresh incoming piece and stamps the active piece into the grid.
// The very first spawn of a game draws an extra piece to fill the preview.
// It reports whether a piece is now active, which is always the case.
func Spawn(b *Board, rng Random) bool {
	b.Anchor = Point{X: SpawnX, Y: 0}

	if b.BeginPlay {
		b.drawIncoming(rng)
		b.BeginPlay = false
	}

	b.Active = b.Incoming
	b.ActiveShape = b.IncomingShape
	b.drawIncoming(rng)

	b.stamp()
	b.Pieces++
	return true
}
