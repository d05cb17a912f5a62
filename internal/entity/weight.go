package entity

import (
	"math/rand"

	"github.com/samdwyer/squish/internal/world"
)

// Weight is the sixteen ton weight dropped on the banana.
type Weight struct {
	Rect   world.Rect
	Speed  int  // Pixels fallen per tick
	Landed bool // Top edge has reached the bottom of the play area

	area world.Rect
	rng  *rand.Rand
}

// NewWeight creates a weight of the given size above the play area.
func NewWeight(width, height, speed int, area world.Rect, rng *rand.Rand) *Weight {
	w := &Weight{
		Rect:  world.Rect{W: width, H: height},
		Speed: speed,
		area:  area,
		rng:   rng,
	}
	w.Reset()
	return w
}

// Reset moves the weight back above the screen at a random horizontal
// position inside the play area.
func (w *Weight) Reset() {
	x := w.area.Left()
	if w.area.W > 0 {
		x += w.rng.Intn(w.area.W)
	}
	w.Rect.SetMidBottom(x, 0)
	w.Landed = false
}

// Update advances the weight by one tick.
func (w *Weight) Update() {
	w.Rect.Y += w.Speed
	w.Landed = w.Rect.Top() >= w.area.Bottom()
}

// Bounds returns the weight's rectangle.
func (w *Weight) Bounds() world.Rect {
	return w.Rect
}
