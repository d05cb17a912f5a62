package game

// Input is what a frontend read from the player during one tick.
type Input struct {
	PointerX int  // Pointer x position in screen pixels
	Pressed  bool // Any key or mouse button went down this tick
	Quit     bool // Escape, or the window or terminal asked to close
}
