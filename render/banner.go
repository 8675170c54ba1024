package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// bannerFadeIn is how long the results banner takes to appear, in seconds.
const bannerFadeIn = 0.6

// Banner is the end of game message. It fades in over a short tween.
type Banner struct {
	Text string

	tween *gween.Tween
	alpha float32
	done  bool
}

// NewBanner returns a banner that starts fully transparent.
func NewBanner(text string) *Banner {
	return &Banner{
		Text:  text,
		tween: gween.New(0, 1, bannerFadeIn, ease.OutQuad),
	}
}

// Update advances the fade by dt seconds.
func (b *Banner) Update(dt float32) {
	if b.done {
		return
	}
	b.alpha, b.done = b.tween.Update(dt)
}

// Alpha returns the current opacity in [0, 1].
func (b *Banner) Alpha() float32 {
	return b.alpha
}

// Shown reports whether the fade has finished.
func (b *Banner) Shown() bool {
	return b.done
}
