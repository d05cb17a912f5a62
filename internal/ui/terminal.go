package ui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/squish/internal/game"
)

// TickRate is how many times per second the terminal frontend updates the game.
const TickRate = 60

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Terminal runs the game in a terminal.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	game     *game.Game

	input   game.Input       // Collected between ticks
	buttons tcell.ButtonMask // Mouse buttons held at the last mouse event
}

// NewTerminal opens the terminal screen for g.
func NewTerminal(g *game.Game) (*Terminal, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen, g), nil
}

func newTerminal(screen *Screen, g *game.Game) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen, g.Settings().Terminal),
		game:     g,
		input:    game.Input{PointerX: g.Area().CenterX()},
	}
}

// Run executes the main loop until the player quits or ctx is canceled.
// The screen is closed when Run returns.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.screen.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / TickRate)
	defer tick.Stop()

	t.renderer.Render(t.game)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			t.handleEvent(ev)
		case <-tick.C:
			if err := t.step(ctx); err != nil {
				if errors.Is(err, game.ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// step feeds the collected input to the game and redraws.
func (t *Terminal) step(ctx context.Context) error {
	in := t.input
	t.input.Pressed = false

	if err := t.game.Update(ctx, in); err != nil {
		return err
	}
	t.renderer.Render(t.game)
	return nil
}

// handleEvent folds a terminal event into the pending input.
func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKeyEvent(ev)
	case *tcell.EventMouse:
		t.handleMouseEvent(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (t *Terminal) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.input.Quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			t.input.Quit = true
		default:
			t.input.Pressed = true
		}
	default:
		t.input.Pressed = true
	}
}

// handleMouseEvent tracks the pointer and turns button presses into clicks.
func (t *Terminal) handleMouseEvent(ev *tcell.EventMouse) {
	col, _ := ev.Position()
	t.input.PointerX = t.renderer.Viewport(t.game.Settings()).PixelX(col)

	held := ev.Buttons() & clickButtons
	if held&^t.buttons != 0 {
		t.input.Pressed = true
	}
	t.buttons = held
}
