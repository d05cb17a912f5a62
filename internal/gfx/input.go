package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/samdwyer/squish/internal/game"
)

var clickButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// readInput collects this tick's pointer position and presses.
func (a *App) readInput() game.Input {
	x, _ := ebiten.CursorPosition()
	in := game.Input{PointerX: x}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Quit = true
		return in
	}

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	if len(a.keys) > 0 {
		in.Pressed = true
	}
	for _, b := range clickButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.Pressed = true
		}
	}
	return in
}
