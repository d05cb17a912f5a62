// Package gfx provides the windowed frontend using Ebitengine.
package gfx

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/samdwyer/squish/internal/entity"
	"github.com/samdwyer/squish/internal/game"
	"github.com/samdwyer/squish/internal/gamedata"
	"github.com/samdwyer/squish/internal/world"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Fruit Self Defense"

// imageGap separates a paused screen's image from its text.
const imageGap = 20

// App adapts a game.Game to ebiten.Game.
type App struct {
	ctx  context.Context
	game *game.Game

	images     map[*gamedata.Image]*ebiten.Image
	font       *Font
	background color.RGBA
	textColor  color.RGBA
	fade       *Fade
	keys       []ebiten.Key
}

// NewApp decodes the game's images and fonts for drawing.
func NewApp(ctx context.Context, g *game.Game) (*App, error) {
	s := g.Settings()

	font, err := NewFont(float64(s.FontSize))
	if err != nil {
		return nil, err
	}
	background, err := gamedata.ParseHexColor(s.BackgroundColor)
	if err != nil {
		return nil, err
	}
	textColor, err := gamedata.ParseHexColor(s.TextColor)
	if err != nil {
		return nil, err
	}

	images := make(map[*gamedata.Image]*ebiten.Image)
	assets := g.Assets()
	for _, img := range []*gamedata.Image{assets.Weight, assets.Banana, assets.Splash} {
		if img == nil {
			continue
		}
		decoded, err := DecodeImage(img)
		if err != nil {
			return nil, err
		}
		images[img] = decoded
	}

	return &App{
		ctx:        ctx,
		game:       g,
		images:     images,
		font:       font,
		background: background,
		textColor:  textColor,
		fade:       NewFade(),
	}, nil
}

// Run opens the window and blocks until the player quits.
func (a *App) Run() error {
	s := a.game.Settings()
	ebiten.SetWindowSize(s.ScreenWidth, s.ScreenHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetFullscreen(s.FullScreen)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	return ebiten.RunGame(a)
}

// Update: Logic (60 TPS)
func (a *App) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}

	err := a.game.Update(a.ctx, a.readInput())
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if a.game.Entered() {
		a.fade = NewFade()
	}
	if !a.fade.Done() {
		a.fade.Update(1 / float32(ebiten.TPS()))
	}
	return nil
}

// Draw: Rendering (VSync)
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)

	st := a.game.State()
	if st.Paused() {
		a.drawCaption(screen, st)
		return
	}

	assets := a.game.Assets()
	for _, sprite := range st.Level.Sprites() {
		switch sprite.(type) {
		case *entity.Weight:
			a.drawImage(screen, a.images[assets.Weight], sprite.Bounds(), 1)
		case *entity.Banana:
			a.drawImage(screen, a.images[assets.Banana], sprite.Bounds(), 1)
		}
	}
}

// Layout: Always render at the configured screen size and let Ebiten scale it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := a.game.Settings()
	return s.ScreenWidth, s.ScreenHeight
}

// drawCaption draws a paused screen: centered text with its image above.
func (a *App) drawCaption(screen *ebiten.Image, st *game.State) {
	s := a.game.Settings()
	bounds := world.Rect{W: s.ScreenWidth, H: s.ScreenHeight}

	var imgW, imgH int
	if st.Image != nil {
		imgW, imgH = st.Image.Width, st.Image.Height
	}
	caption := world.LayoutCaption(bounds, len(st.Lines), a.font.LineHeight(), imgW, imgH, imageGap)

	alpha := a.fade.Alpha()
	if st.Image != nil {
		a.drawImage(screen, a.images[st.Image], caption.Image, alpha)
	}
	for i, line := range st.Lines {
		a.font.DrawCentered(screen, line, bounds.CenterX(), caption.LineTops[i], a.textColor, alpha)
	}
}

// drawImage draws img with its top-left corner at r.
func (a *App) drawImage(screen, img *ebiten.Image, r world.Rect, alpha float32) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}
