// Package world provides the geometry of the play field.
package world

// Rect is an axis-aligned rectangle in screen pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// SetBottom moves the rectangle vertically so its bottom edge is at y.
func (r *Rect) SetBottom(y int) {
	r.Y = y - r.H
}

// SetCenterX moves the rectangle horizontally so it is centered on x.
func (r *Rect) SetCenterX(x int) {
	r.X = x - r.W/2
}

// SetMidBottom places the midpoint of the bottom edge at (x, y).
func (r *Rect) SetMidBottom(x, y int) {
	r.SetCenterX(x)
	r.SetBottom(y)
}

// Inflate returns a copy grown by dx horizontally and dy vertically,
// keeping the center in place. Negative values shrink the rectangle.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{
		X: r.X - dx/2,
		Y: r.Y - dy/2,
		W: r.W + dx,
		H: r.H + dy,
	}
}

// Clamp returns a copy moved to lie inside area. On an axis where the
// rectangle is larger than area it is centered on area instead.
func (r Rect) Clamp(area Rect) Rect {
	out := r

	if r.W >= area.W {
		out.X = area.X + area.W/2 - r.W/2
	} else if r.X < area.X {
		out.X = area.X
	} else if r.Right() > area.Right() {
		out.X = area.Right() - r.W
	}

	if r.H >= area.H {
		out.Y = area.Y + area.H/2 - r.H/2
	} else if r.Y < area.Y {
		out.Y = area.Y
	} else if r.Bottom() > area.Bottom() {
		out.Y = area.Bottom() - r.H
	}

	return out
}

// Collides returns true if this rectangle overlaps other.
// Rectangles that only share an edge do not collide, and an empty or
// negative-sized rectangle collides with nothing.
func (r Rect) Collides(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
