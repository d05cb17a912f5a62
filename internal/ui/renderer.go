package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/squish/internal/entity"
	"github.com/samdwyer/squish/internal/game"
	"github.com/samdwyer/squish/internal/gamedata"
	"github.com/samdwyer/squish/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen

	weight tcell.Style
	banana tcell.Style
	text   tcell.Style

	weightGlyph rune
	bananaGlyph rune
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, style gamedata.TerminalStyle) *Renderer {
	return &Renderer{
		screen:      screen,
		weight:      tcell.StyleDefault.Foreground(gamedata.TCellColor(style.WeightColor, tcell.ColorGray)),
		banana:      tcell.StyleDefault.Foreground(gamedata.TCellColor(style.BananaColor, tcell.ColorYellow)).Bold(true),
		text:        tcell.StyleDefault.Foreground(gamedata.TCellColor(style.TextColor, tcell.ColorWhite)),
		weightGlyph: gamedata.GlyphRune(style.WeightGlyph),
		bananaGlyph: gamedata.GlyphRune(style.BananaGlyph),
	}
}

// Viewport returns the mapping from the game screen onto the terminal.
func (r *Renderer) Viewport(settings *gamedata.Settings) Viewport {
	cols, rows := r.screen.Size()
	return Viewport{Cols: cols, Rows: rows, Width: settings.ScreenWidth, Height: settings.ScreenHeight}
}

// Render draws the active game screen.
func (r *Renderer) Render(g *game.Game) {
	r.screen.Clear()

	view := r.Viewport(g.Settings())
	st := g.State()
	if st.Paused() {
		r.renderCaption(view, st)
	} else {
		r.renderLevel(view, st.Level)
	}

	r.screen.Show()
}

// renderLevel draws the weight, the banana and a status line.
func (r *Renderer) renderLevel(view Viewport, level *game.Level) {
	for _, sprite := range level.Sprites() {
		switch sprite.(type) {
		case *entity.Weight:
			r.fill(view.CellRect(sprite.Bounds()), r.weightGlyph, r.weight)
		case *entity.Banana:
			r.fill(view.CellRect(sprite.Bounds()), r.bananaGlyph, r.banana)
		}
	}

	r.RenderMessage(fmt.Sprintf("Level %d  Weights left %d", level.Number, level.Remaining), 0)
}

// renderCaption draws a paused screen's text centered, with its image above.
func (r *Renderer) renderCaption(view Viewport, st *game.State) {
	var imgCols, imgRows int
	if st.Image != nil {
		imgCols, imgRows = view.Scale(st.Image.Width, st.Image.Height)
	}

	screen := world.Rect{W: view.Cols, H: view.Rows}
	caption := world.LayoutCaption(screen, len(st.Lines), 1, imgCols, imgRows, 1)

	if st.Image != nil {
		r.fill(caption.Image, r.weightGlyph, r.weight)
	}
	for i, line := range st.Lines {
		runes := []rune(line)
		x := screen.CenterX() - len(runes)/2
		for j, ch := range runes {
			r.screen.SetContent(x+j, caption.LineTops[i], ch, r.text)
		}
	}
}

// fill paints every cell of rect that is on screen.
func (r *Renderer) fill(rect world.Rect, glyph rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	bounds := world.Rect{W: cols, H: rows}
	for y := rect.Top(); y < rect.Bottom(); y++ {
		for x := rect.Left(); x < rect.Right(); x++ {
			if bounds.Contains(x, y) {
				r.screen.SetContent(x, y, glyph, style)
			}
		}
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, r.text)
	}
}
