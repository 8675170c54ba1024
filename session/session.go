// Package session runs several independent boards side by side. It owns the
// process wide pause flag, restarts boards that are over, reports game over
// and ranks the players at the end of a run.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/stackfall/tetris"
	"github.com/sirupsen/logrus"
)

// MaxPlayers is the largest number of boards a session can hold.
const MaxPlayers = 4

var (
	ErrNoPlayers      = errors.New("session needs at least one player")
	ErrTooManyPlayers = fmt.Errorf("session supports at most %d players", MaxPlayers)
)

// BoardID identifies a board for the lifetime of a session.
type BoardID uint32

// Player describes one slot of a session.
type Player struct {
	Name  string
	Input tetris.Input
}

// Poller is implemented by inputs that sample their state once per frame.
// The session polls them right before stepping their board.
type Poller interface {
	Poll()
}

// Options configures a Session. The zero value is usable.
type Options struct {
	// Controls provides the pause and restart commands.
	Controls Controls
	// Out receives player facing announcements. Defaults to os.Stdout.
	Out io.Writer
	// Logger defaults to the logrus standard logger.
	Logger *logrus.Logger
	// Seed seeds the piece draws. Board slot i draws from Seed+i.
	Seed uint64
	// Random overrides the per slot piece source when set.
	Random func(slot int) tetris.Random
}

// Session manages every board of a game.
type Session struct {
	boards []*tetris.Board
	inputs []tetris.Input
	rngs   []tetris.Random
	ids    []BoardID
	index  *intmap.Map[BoardID, int]

	controls Controls
	out      io.Writer
	log      *logrus.Logger

	paused bool
	frames int64
	stats  []*boardStatsInternal
}

// New creates a session with one board per player, in slot order.
func New(players []Player, opts Options) (*Session, error) {
	switch {
	case len(players) == 0:
		return nil, ErrNoPlayers
	case len(players) > MaxPlayers:
		return nil, fmt.Errorf("%w: got %d", ErrTooManyPlayers, len(players))
	}

	s := &Session{
		index:    intmap.New[BoardID, int](MaxPlayers),
		controls: opts.Controls,
		out:      opts.Out,
		log:      opts.Logger,
	}
	if s.controls == nil {
		s.controls = NoControls{}
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}

	for slot, p := range players {
		in := p.Input
		if in == nil {
			in = tetris.Idle{}
		}

		var rng tetris.Random
		if opts.Random != nil {
			rng = opts.Random(slot)
		} else {
			rng = tetris.NewPCG(opts.Seed + uint64(slot))
		}

		id := BoardID(slot + 1)
		s.boards = append(s.boards, tetris.NewBoard(p.Name))
		s.inputs = append(s.inputs, in)
		s.rngs = append(s.rngs, rng)
		s.ids = append(s.ids, id)
		s.index.Put(id, slot)
		s.stats = append(s.stats, &boardStatsInternal{
			name:        DisplayName(p.Name, slot),
			minDuration: time.Duration(1<<63 - 1),
		})
	}

	s.log.WithField("players", len(players)).Info("session created")
	return s, nil
}

// Once advances every board by one frame.
//
// Commands are read once per frame: a pause request toggles the pause flag,
// and a restart request resets every board that is over and unpauses. Live
// boards are stepped in slot order unless the session is paused.
func (s *Session) Once() {
	s.frames++

	if s.controls.Pressed(CommandPause) {
		s.SetPaused(!s.paused)
	}
	restart := s.controls.Pressed(CommandRestart)

	for slot, b := range s.boards {
		if b.GameOver {
			if restart {
				s.restart(slot)
			}
			continue
		}
		if s.paused {
			continue
		}
		s.step(slot)
	}
}

func (s *Session) step(slot int) {
	b := s.boards[slot]
	in := s.inputs[slot]
	if p, ok := in.(Poller); ok {
		p.Poll()
	}

	start := time.Now()
	res := b.Step(in, s.rngs[slot])
	s.stats[slot].record(time.Since(start))

	fields := logrus.Fields{"board": s.ids[slot], "player": DisplayName(b.Name, slot)}
	if res.Spawned {
		s.log.WithFields(fields).WithField("shape", tetris.ShapeNames[b.ActiveShape]).Trace("piece spawned")
	}
	if res.Marked > 0 {
		s.log.WithFields(fields).WithField("rows", res.Marked).Debug("rows completed")
	}
	if res.Cleared > 0 {
		s.stats[slot].cleared += int64(res.Cleared)
		s.log.WithFields(fields).WithFields(logrus.Fields{
			"rows":  res.Cleared,
			"lines": b.Lines,
		}).Debug("rows cleared")
	}
	if res.Ended {
		s.stats[slot].games++
		s.log.WithFields(fields).WithField("lines", b.Lines).Info("game over")
		fmt.Fprintf(s.out, "Player %s reached %d lines.\n", b.Name, b.Lines)
	}
}

func (s *Session) restart(slot int) {
	b := s.boards[slot]
	b.Reset()
	s.paused = false
	s.log.WithFields(logrus.Fields{
		"board":  s.ids[slot],
		"player": DisplayName(b.Name, slot),
	}).Info("board restarted")
}

// Restart resets the board with the given id if it is over and unpauses the
// session. It reports whether the board was restarted.
func (s *Session) Restart(id BoardID) bool {
	slot, ok := s.index.Get(id)
	if !ok || !s.boards[slot].GameOver {
		return false
	}
	s.restart(slot)
	return true
}

// Run steps the session at the given interval until the context is cancelled.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Once()
		}
	}
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// SetPaused sets the pause flag.
func (s *Session) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	s.log.WithField("paused", paused).Info("pause toggled")
}

// Frames returns the number of frames run so far.
func (s *Session) Frames() int64 {
	return s.frames
}

// Len returns the number of boards.
func (s *Session) Len() int {
	return len(s.boards)
}

// Boards returns the boards in slot order. The slice must not be modified.
func (s *Session) Boards() []*tetris.Board {
	return s.boards
}

// IDs returns the board ids in slot order.
func (s *Session) IDs() []BoardID {
	return s.ids
}

// Board returns the board with the given id.
func (s *Session) Board(id BoardID) (*tetris.Board, bool) {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil, false
	}
	return s.boards[slot], true
}

// AllOver reports whether every board is over.
func (s *Session) AllOver() bool {
	for _, b := range s.boards {
		if !b.GameOver {
			return false
		}
	}
	return true
}

// DisplayName returns the name shown for a player, falling back to the slot
// number for anonymous players.
func DisplayName(name string, slot int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("PLAYER %d", slot+1)
}
