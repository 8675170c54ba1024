package tetris

// StepResult describes what happened to a board during one Step.
type StepResult struct {
	Spawned bool
	// Settled is set when the active piece locked into place.
	Settled bool
	// Marked is the number of rows flagged for clearing.
	Marked int
	// Cleared is the number of rows removed at the end of a fade.
	Cleared int
	// Ended is set on the step that put the board into game over.
	Ended bool
}

// Step advances the board by one frame.
//
// A board that is over does nothing; restarting is up to the caller. While
// rows are fading, piece logic is suspended and only the animation runs.
// Otherwise the board spawns a piece if it has none, or advances the
// cadence counters and applies gravity, lateral movement and rotation as
// they come due. Game over is checked at the end of every non-suspended
// step.
func (b *Board) Step(in Input, rng Random) StepResult {
	var res StepResult
	if b.GameOver {
		return res
	}

	if b.LineToDelete {
		res.Cleared = advanceFade(b)
		return res
	}

	if !b.PieceActive {
		b.PieceActive = Spawn(b, rng)
		b.Counters.FastFall = 0
		res.Spawned = true
	} else {
		b.fall(in, &res)
	}

	if toppedOut(&b.Grid) {
		b.GameOver = true
		res.Ended = true
	}
	return res
}

func (b *Board) fall(in Input, res *StepResult) {
	c := &b.Counters
	c.FastFall++
	c.Gravity++
	c.Lateral++
	c.Turn++

	if in.Pressed(MoveLeft) || in.Pressed(MoveRight) {
		c.Lateral = LateralSpeed
	}
	if in.Pressed(Rotate) {
		c.Turn = TurningSpeed
	}
	if in.Held(SoftDrop) && c.FastFall >= FastFallAwaitCounter {
		c.Gravity += b.GravitySpeed
	}

	if c.Gravity >= b.GravitySpeed {
		res.Settled = ApplyGravity(b)
		res.Marked = CheckCompletion(b)
		c.Gravity = 0
	}

	// The piece may have settled above; a settled piece has no Moving cells
	// left and must not be re-stamped by a late rotation.
	if !b.PieceActive {
		return
	}

	if c.Lateral >= LateralSpeed {
		if !ResolveLateral(b, lateralDirection(in)) {
			c.Lateral = 0
		}
	}

	if c.Turn >= TurningSpeed && active(in, Rotate) {
		if ResolveRotation(b) {
			c.Turn = 0
		}
	}
}

// toppedOut reports whether a settled cell reached the top two rows.
func toppedOut(g *Grid) bool {
	for y := 0; y < 2; y++ {
		for x := 1; x < GridWidth-1; x++ {
			if g[y][x] == Full {
				return true
			}
		}
	}
	return false
}
