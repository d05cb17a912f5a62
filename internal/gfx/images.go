package gfx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG format

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/samdwyer/squish/internal/gamedata"
)

// DecodeImage turns an encoded sprite image into an ebiten.Image.
func DecodeImage(img *gamedata.Image) (*ebiten.Image, error) {
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", img.Name, err)
	}
	return ebiten.NewImageFromImage(decoded), nil
}
