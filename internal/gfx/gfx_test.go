package gfx

import "testing"

func TestFade(t *testing.T) {
	f := NewFade()

	if f.Alpha() != 0 {
		t.Errorf("NewFade().Alpha() = %v, want 0", f.Alpha())
	}

	prev := f.Alpha()
	for i := 0; i < 10; i++ {
		a := f.Update(FadeSeconds / 20)
		if a < prev {
			t.Fatalf("Alpha decreased from %v to %v", prev, a)
		}
		prev = a
	}
	if f.Done() {
		t.Error("Fade should not be done halfway through")
	}

	f.Update(FadeSeconds)
	if !f.Done() {
		t.Error("Fade should be done after its duration")
	}
	if f.Alpha() != 1 {
		t.Errorf("Finished fade Alpha() = %v, want 1", f.Alpha())
	}
	if got := f.Update(1); got != 1 {
		t.Errorf("Update() after done = %v, want 1", got)
	}
}

func TestFont(t *testing.T) {
	small, err := NewFont(24)
	if err != nil {
		t.Fatalf("NewFont(24) error: %v", err)
	}
	large, err := NewFont(48)
	if err != nil {
		t.Fatalf("NewFont(48) error: %v", err)
	}

	if small.LineHeight() <= 0 {
		t.Errorf("LineHeight() = %d, want positive", small.LineHeight())
	}
	if large.LineHeight() <= small.LineHeight() {
		t.Errorf("48pt line height %d should exceed 24pt %d", large.LineHeight(), small.LineHeight())
	}

	short, long := large.Width("Game Over!"), large.Width("Click to Restart, Esc to Quit")
	if short <= 0 || long <= short {
		t.Errorf("Width ordering wrong: %v, %v", short, long)
	}
}
