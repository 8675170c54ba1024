package session_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetris"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commands presses the queued commands on the next frame only.
type commands struct {
	next map[session.Command]bool
	now  map[session.Command]bool
}

func (c *commands) queue(cmds ...session.Command) {
	if c.next == nil {
		c.next = map[session.Command]bool{}
	}
	for _, cmd := range cmds {
		c.next[cmd] = true
	}
}

func (c *commands) Pressed(cmd session.Command) bool {
	if cmd == session.CommandPause {
		c.now, c.next = c.next, nil
	}
	return c.now[cmd]
}

// polled counts how often it was polled.
type polled struct {
	tetris.Idle
	polls int
}

func (p *polled) Poll() { p.polls++ }

type fixture struct {
	s    *session.Session
	out  *bytes.Buffer
	ctl  *commands
	hook *logtest.Hook
}

func newFixture(t *testing.T, names ...string) *fixture {
	t.Helper()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	players := make([]session.Player, len(names))
	for i, n := range names {
		players[i] = session.Player{Name: n}
	}

	f := &fixture{out: &bytes.Buffer{}, ctl: &commands{}, hook: hook}
	s, err := session.New(players, session.Options{
		Controls: f.ctl,
		Out:      f.out,
		Logger:   logger,
		Seed:     7,
	})
	require.NoError(t, err)
	f.s = s
	return f
}

// endGame puts a board over on the next frame.
func endGame(b *tetris.Board) {
	b.Grid.Set(1, 1, tetris.Full)
}

func TestNew(t *testing.T) {
	t.Run("needs a player", func(t *testing.T) {
		_, err := session.New(nil, session.Options{})
		assert.ErrorIs(t, err, session.ErrNoPlayers)
	})

	t.Run("rejects more than four players", func(t *testing.T) {
		_, err := session.New(make([]session.Player, 5), session.Options{})
		assert.ErrorIs(t, err, session.ErrTooManyPlayers)
	})

	t.Run("creates one board per player", func(t *testing.T) {
		f := newFixture(t, "ada", "bob", "cy")
		assert.Equal(t, 3, f.s.Len())
		assert.Equal(t, []session.BoardID{1, 2, 3}, f.s.IDs())

		b, ok := f.s.Board(2)
		require.True(t, ok)
		assert.Equal(t, "bob", b.Name)

		_, ok = f.s.Board(9)
		assert.False(t, ok)
	})
}

func TestSessionOnce(t *testing.T) {
	t.Run("steps every board", func(t *testing.T) {
		f := newFixture(t, "ada", "bob")
		f.s.Once()

		for _, b := range f.s.Boards() {
			assert.True(t, b.PieceActive)
			assert.Equal(t, 1, b.Pieces)
		}
		assert.EqualValues(t, 1, f.s.Frames())
	})

	t.Run("a seed replays the same game", func(t *testing.T) {
		a, b := newFixture(t, "ada", "bob"), newFixture(t, "ada", "bob")
		for range 500 {
			a.s.Once()
			b.s.Once()
		}

		for i := range a.s.Boards() {
			assert.Equal(t, a.s.Boards()[i], b.s.Boards()[i])
		}
	})

	t.Run("polls inputs before stepping", func(t *testing.T) {
		in := &polled{}
		s, err := session.New([]session.Player{{Input: in}}, session.Options{Out: &bytes.Buffer{}})
		require.NoError(t, err)

		for range 3 {
			s.Once()
		}
		assert.Equal(t, 3, in.polls)
	})

	t.Run("pause freezes every board", func(t *testing.T) {
		f := newFixture(t, "ada", "bob")
		f.s.Once()
		before := *f.s.Boards()[0]

		f.ctl.queue(session.CommandPause)
		f.s.Once()
		require.True(t, f.s.Paused())
		for range 50 {
			f.s.Once()
		}
		assert.Equal(t, before, *f.s.Boards()[0])

		f.ctl.queue(session.CommandPause)
		f.s.Once()
		assert.False(t, f.s.Paused())
		assert.Equal(t, before.Counters.Gravity+1, f.s.Boards()[0].Counters.Gravity)
	})

	t.Run("game over is announced once", func(t *testing.T) {
		f := newFixture(t, "ada", "bob")
		f.s.Boards()[0].Lines = 12
		endGame(f.s.Boards()[0])

		for range 10 {
			f.s.Once()
		}

		assert.Equal(t, "Player ada reached 12 lines.\n", f.out.String())
		assert.True(t, f.s.Boards()[0].GameOver)
		assert.False(t, f.s.Boards()[1].GameOver)

		over := 0
		for _, e := range f.hook.AllEntries() {
			if e.Message == "game over" {
				over++
				assert.Equal(t, 12, e.Data["lines"])
				assert.Equal(t, "ada", e.Data["player"])
			}
		}
		assert.Equal(t, 1, over)
	})

	t.Run("restart resets boards that are over and unpauses", func(t *testing.T) {
		f := newFixture(t, "ada", "bob")
		endGame(f.s.Boards()[0])
		for range 5 {
			f.s.Once()
		}
		live := f.s.Boards()[1].Pieces
		f.s.SetPaused(true)

		f.ctl.queue(session.CommandRestart)
		f.s.Once()

		a := f.s.Boards()[0]
		assert.False(t, a.GameOver)
		assert.Equal(t, "ada", a.Name)
		assert.Zero(t, a.Grid.Count(tetris.Full))
		assert.False(t, f.s.Paused())
		assert.Equal(t, live, f.s.Boards()[1].Pieces)
	})

	t.Run("restart by id", func(t *testing.T) {
		f := newFixture(t, "ada")
		assert.False(t, f.s.Restart(1))

		endGame(f.s.Boards()[0])
		f.s.Once()
		require.True(t, f.s.AllOver())

		assert.True(t, f.s.Restart(1))
		assert.False(t, f.s.AllOver())
		assert.False(t, f.s.Restart(5))
	})
}

func TestSessionRun(t *testing.T) {
	f := newFixture(t, "ada")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f.s.Run(ctx, time.Millisecond)
	assert.Positive(t, f.s.Frames())
}

func TestSessionStats(t *testing.T) {
	f := newFixture(t, "ada", "")
	for range 40 {
		f.s.Once()
	}

	stats := f.s.GetStats()
	assert.EqualValues(t, 40, stats.Frames)
	assert.EqualValues(t, 80, stats.TotalSteps)
	require.Len(t, stats.Boards, 2)

	assert.Equal(t, "ada", stats.Boards[0].Name)
	assert.Equal(t, "PLAYER 2", stats.Boards[1].Name)
	for _, b := range stats.Boards {
		assert.EqualValues(t, 40, b.StepCount)
		assert.LessOrEqual(t, b.MinDuration, b.AvgDuration)
		assert.LessOrEqual(t, b.AvgDuration, b.MaxDuration)
		assert.Equal(t, b.TotalDuration/40, b.AvgDuration)
	}
}
