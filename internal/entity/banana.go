package entity

import "github.com/samdwyer/squish/internal/world"

// Banana is the player's sprite. It sits on the bottom of the play area and
// follows the pointer horizontally.
type Banana struct {
	Rect    world.Rect
	PadTop  int // Trimmed off the top of the hit box
	PadSide int // Trimmed off the hit box width, half on each side

	area world.Rect
}

// NewBanana creates a banana of the given size centered on the bottom of the play area.
func NewBanana(width, height, padTop, padSide int, area world.Rect) *Banana {
	b := &Banana{
		Rect:    world.Rect{W: width, H: height},
		PadTop:  padTop,
		PadSide: padSide,
		area:    area,
	}
	b.Rect.SetMidBottom(area.CenterX(), area.Bottom())
	return b
}

// Follow centers the banana on pointer x position x, kept inside the play area.
func (b *Banana) Follow(x int) {
	b.Rect.SetCenterX(x)
	b.Rect = b.Rect.Clamp(b.area)
}

// HitBox returns the part of the banana that can be squished: its rectangle
// shrunk by the padding, with the bottom edge left in place.
func (b *Banana) HitBox() world.Rect {
	box := b.Rect.Inflate(-b.PadSide, -b.PadTop)
	box.SetBottom(b.Rect.Bottom())
	return box
}

// Touches returns true if the weight overlaps the banana's hit box.
func (b *Banana) Touches(w *Weight) bool {
	return b.HitBox().Collides(w.Rect)
}

// Bounds returns the banana's rectangle.
func (b *Banana) Bounds() world.Rect {
	return b.Rect
}
