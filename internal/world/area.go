package world

// PlayArea returns the region sprites move in: the screen shrunk by
// margin on every side.
func PlayArea(screenWidth, screenHeight, margin int) Rect {
	screen := Rect{W: screenWidth, H: screenHeight}
	return screen.Inflate(-margin*2, -margin*2)
}
