package gfx

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font draws paused screen text in Go Regular.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// NewFont loads Go Regular at the given size.
func NewFont(size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	// Compute line height from metrics
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// LineHeight returns the distance between the tops of two lines, in whole pixels.
func (f *Font) LineHeight() int {
	return int(math.Ceil(f.lh))
}

// Width returns the rendered width of s.
func (f *Font) Width(s string) float64 {
	w, _ := text.Measure(s, f.face, f.lh)
	return w
}

// DrawCentered draws s with the middle of its top edge at (centerX, top).
func (f *Font) DrawCentered(dst *ebiten.Image, s string, centerX, top int, clr color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(centerX)-f.Width(s)/2, float64(top))
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}
