package world

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	if r.Left() != 10 || r.Right() != 40 {
		t.Errorf("Left/Right = %d/%d, want 10/40", r.Left(), r.Right())
	}
	if r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("Top/Bottom = %d/%d, want 20/60", r.Top(), r.Bottom())
	}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("Center = (%d,%d), want (25,40)", r.CenterX(), r.CenterY())
	}
}

func TestRectSetMidBottom(t *testing.T) {
	r := Rect{W: 20, H: 10}
	r.SetMidBottom(100, 0)

	if r.X != 90 || r.Y != -10 {
		t.Errorf("SetMidBottom(100, 0) = (%d,%d), want (90,-10)", r.X, r.Y)
	}
	if r.Bottom() != 0 {
		t.Errorf("Bottom() = %d, want 0", r.Bottom())
	}
}

func TestRectInflate(t *testing.T) {
	tests := []struct {
		name     string
		in       Rect
		dx, dy   int
		expected Rect
	}{
		{"grow", Rect{10, 10, 10, 10}, 4, 2, Rect{8, 9, 14, 12}},
		{"shrink", Rect{0, 0, 100, 50}, -20, -40, Rect{10, 20, 80, 10}},
		{"odd shrink truncates", Rect{0, 0, 10, 10}, -5, -3, Rect{2, 1, 5, 7}},
		{"zero", Rect{1, 2, 3, 4}, 0, 0, Rect{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		got := tt.in.Inflate(tt.dx, tt.dy)
		if got != tt.expected {
			t.Errorf("%s: Inflate(%d, %d) = %+v, want %+v", tt.name, tt.dx, tt.dy, got, tt.expected)
		}
	}
}

func TestRectClamp(t *testing.T) {
	area := Rect{X: 30, Y: 30, W: 740, H: 540}

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"inside", Rect{100, 100, 50, 50}, Rect{100, 100, 50, 50}},
		{"left", Rect{0, 100, 50, 50}, Rect{30, 100, 50, 50}},
		{"right", Rect{760, 100, 50, 50}, Rect{720, 100, 50, 50}},
		{"below", Rect{100, 600, 50, 50}, Rect{100, 520, 50, 50}},
		{"too wide is centered", Rect{0, 100, 800, 50}, Rect{0, 100, 800, 50}},
		{"wider than area", Rect{-50, 100, 760, 50}, Rect{20, 100, 760, 50}},
	}

	for _, tt := range tests {
		got := tt.in.Clamp(area)
		if got != tt.expected {
			t.Errorf("%s: Clamp() = %+v, want %+v", tt.name, got, tt.expected)
		}
	}
}

func TestRectCollides(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 10, H: 10}

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"overlap", Rect{15, 15, 10, 10}, true},
		{"contained", Rect{12, 12, 2, 2}, true},
		{"shares right edge", Rect{20, 10, 10, 10}, false},
		{"shares bottom edge", Rect{10, 20, 10, 10}, false},
		{"far away", Rect{100, 100, 10, 10}, false},
		{"empty", Rect{12, 12, 0, 5}, false},
		{"negative width", Rect{25, 12, -10, 5}, false},
	}

	for _, tt := range tests {
		if got := base.Collides(tt.other); got != tt.expected {
			t.Errorf("%s: Collides(%+v) = %v, want %v", tt.name, tt.other, got, tt.expected)
		}
		if got := tt.other.Collides(base); got != tt.expected {
			t.Errorf("%s: reversed Collides = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestPlayArea(t *testing.T) {
	area := PlayArea(800, 600, 30)
	expected := Rect{X: 30, Y: 30, W: 740, H: 540}

	if area != expected {
		t.Errorf("PlayArea(800, 600, 30) = %+v, want %+v", area, expected)
	}
}
