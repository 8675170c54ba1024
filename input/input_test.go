package input_test

import (
	"testing"

	"github.com/plus3/stackfall/input"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ session.Poller = (*input.Scripted)(nil)
	_ session.Poller = (*input.Bot)(nil)
	_ tetris.Input   = (*input.Bot)(nil)
)

func TestScripted(t *testing.T) {
	s := input.NewScripted(
		input.Press(tetris.MoveLeft),
		input.Hold(tetris.SoftDrop, tetris.Rotate),
	)

	assert.False(t, s.Pressed(tetris.MoveLeft))

	s.Poll()
	assert.True(t, s.Pressed(tetris.MoveLeft))
	assert.False(t, s.Held(tetris.MoveLeft))

	s.Poll()
	assert.False(t, s.Pressed(tetris.MoveLeft))
	assert.True(t, s.Held(tetris.SoftDrop))
	assert.True(t, s.Held(tetris.Rotate))
	assert.True(t, s.Done())

	s.Poll()
	assert.False(t, s.Held(tetris.SoftDrop))
}

func TestScriptedDrivesABoard(t *testing.T) {
	script := input.NewScripted(append(
		[]input.State{{}, input.Press(tetris.MoveLeft), input.Press(tetris.MoveLeft)},
		input.Repeat(input.Hold(tetris.MoveLeft), 30)...,
	)...)

	s, err := session.New([]session.Player{{Input: script}}, session.Options{Seed: 3})
	require.NoError(t, err)

	for !script.Done() {
		s.Once()
	}
	assert.Equal(t, 1, minColumn(s.Boards()[0]))
}

// minColumn returns the leftmost column offset of the active mask.
func minColumn(b *tetris.Board) int {
	lowest := tetris.PieceSize
	for _, c := range b.Active.Cells() {
		lowest = min(lowest, c.X)
	}
	return b.Anchor.X + lowest
}

func TestBot(t *testing.T) {
	bot := input.NewBot(tetris.NewPCG(5))

	var pressed, held [tetris.ActionCount]int
	for range 5000 {
		bot.Poll()
		for a := range tetris.ActionCount {
			if bot.Pressed(tetris.Action(a)) {
				pressed[a]++
			}
			if bot.Held(tetris.Action(a)) {
				held[a]++
			}
		}
	}

	for a := range tetris.ActionCount {
		assert.Positive(t, pressed[a], tetris.Action(a).String())
		assert.Positive(t, held[a], tetris.Action(a).String())
		assert.Less(t, pressed[a], 2500, tetris.Action(a).String())
	}
}
