// Package input provides device independent input sources for boards. Bots
// and scripted sources sample their state in Poll, which the session calls
// once per frame before stepping the board.
package input

import "github.com/plus3/stackfall/tetris"

// State is a snapshot of every action for one frame.
type State struct {
	Pressed [tetris.ActionCount]bool
	Held    [tetris.ActionCount]bool
}

// Press returns a State with the given actions pressed.
func Press(actions ...tetris.Action) State {
	var s State
	for _, a := range actions {
		s.Pressed[a] = true
	}
	return s
}

// Hold returns a State with the given actions held.
func Hold(actions ...tetris.Action) State {
	var s State
	for _, a := range actions {
		s.Held[a] = true
	}
	return s
}

// Scripted replays a fixed list of frames and then goes idle.
type Scripted struct {
	frames []State
	cur    State
	next   int
}

// NewScripted returns a source that reports frames[i] on the i-th poll.
func NewScripted(frames ...State) *Scripted {
	return &Scripted{frames: frames}
}

// Repeat returns n copies of s, for building scripts.
func Repeat(s State, n int) []State {
	out := make([]State, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func (s *Scripted) Poll() {
	if s.next >= len(s.frames) {
		s.cur = State{}
		return
	}
	s.cur = s.frames[s.next]
	s.next++
}

// Done reports whether every frame was replayed.
func (s *Scripted) Done() bool {
	return s.next >= len(s.frames)
}

func (s *Scripted) Pressed(a tetris.Action) bool { return s.cur.Pressed[a] }
func (s *Scripted) Held(a tetris.Action) bool    { return s.cur.Held[a] }
