package gfx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeSeconds is how long a paused screen takes to fade in.
const FadeSeconds = 0.4

// Fade tracks the opacity of a paused screen that was just entered.
type Fade struct {
	tween *gween.Tween
	alpha float32
	done  bool
}

// NewFade starts a fade from transparent to opaque.
func NewFade() *Fade {
	return &Fade{tween: gween.New(0, 1, FadeSeconds, ease.OutQuad)}
}

// Update advances the fade by dt seconds and returns the new opacity.
func (f *Fade) Update(dt float32) float32 {
	if f.done {
		return f.alpha
	}
	f.alpha, f.done = f.tween.Update(dt)
	return f.alpha
}

// Alpha returns the current opacity.
func (f *Fade) Alpha() float32 {
	return f.alpha
}

// Done returns true once the screen is fully opaque.
func (f *Fade) Done() bool {
	return f.done
}
