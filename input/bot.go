package input

import "github.com/plus3/stackfall/tetris"

const (
	// botPressOdds is the 1-in-n chance per frame of pressing an idle action.
	botPressOdds = 24
	// botMaxHold is the longest a bot keeps an action held, in frames.
	botMaxHold = 40
)

// Bot mashes controls at random. It is meant for soak runs, not for play.
type Bot struct {
	rng   tetris.Random
	state State
	hold  [tetris.ActionCount]int
}

// NewBot returns a bot drawing its decisions from rng.
func NewBot(rng tetris.Random) *Bot {
	return &Bot{rng: rng}
}

func (b *Bot) Poll() {
	for a := range tetris.ActionCount {
		b.state.Pressed[a] = false

		if b.hold[a] > 0 {
			b.hold[a]--
			b.state.Held[a] = b.hold[a] > 0
			continue
		}

		b.state.Held[a] = false
		if b.rng.Value(botPressOdds-1) == 0 {
			b.state.Pressed[a] = true
			b.hold[a] = b.rng.Value(botMaxHold)
			b.state.Held[a] = b.hold[a] > 0
		}
	}
}

func (b *Bot) Pressed(a tetris.Action) bool { return b.state.Pressed[a] }
func (b *Bot) Held(a tetris.Action) bool    { return b.state.Held[a] }
