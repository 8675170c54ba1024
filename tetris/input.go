package tetris

import "math/rand/v2"

// Action is a logical control of a single board.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	Rotate
	SoftDrop

	ActionCount = int(SoftDrop) + 1
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Rotate:
		return "rotate"
	case SoftDrop:
		return "soft-drop"
	}
	return "unknown"
}

// Input is the per-board input source. Pressed reports an edge this frame,
// Held reports the control being down.
type Input interface {
	Pressed(Action) bool
	Held(Action) bool
}

// Idle is an Input that never reports anything.
type Idle struct{}

func (Idle) Pressed(Action) bool { return false }
func (Idle) Held(Action) bool    { return false }

// Random draws uniform integers in [0, max].
type Random interface {
	Value(max int) int
}

// PCG is the default Random backed by math/rand/v2.
type PCG struct {
	r *rand.Rand
}

// NewPCG returns a deterministic Random for the given seed.
func NewPCG(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *PCG) Value(max int) int {
	if max <= 0 {
		return 0
	}
	return p.r.IntN(max + 1)
}

// Direction is a lateral movement direction.
type Direction int

const (
	NoDirection Direction = 0
	Left        Direction = -1
	Right       Direction = 1
)

// active reports whether the action is held or was pressed this frame.
func active(in Input, a Action) bool {
	return in.Held(a) || in.Pressed(a)
}

// lateralDirection resolves the requested direction; left wins when both
// directions are active.
func lateralDirection(in Input) Direction {
	switch {
	case active(in, MoveLeft):
		return Left
	case active(in, MoveRight):
		return Right
	}
	return NoDirection
}
