package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/squish/internal/gamedata"
	"github.com/samdwyer/squish/internal/telemetry"
	"github.com/samdwyer/squish/internal/world"
)

// ErrQuit is returned by Update when the player asked to leave the game.
var ErrQuit = errors.New("game: quit")

// Game holds the entire game state.
type Game struct {
	settings gamedata.Settings
	assets   *gamedata.Assets
	area     world.Rect
	rng      *rand.Rand

	state   *State
	next    *State // Promoted to state at the end of the tick
	entered bool   // state changed during the last tick

	sessionID string
}

// New creates a new game instance showing the start-up screen.
func New(cfg Config) (*Game, error) {
	if cfg.Assets == nil || cfg.Assets.Weight == nil || cfg.Assets.Banana == nil {
		return nil, errors.New("game: weight and banana images are required")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := cfg.Settings
	return &Game{
		settings:  s,
		assets:    cfg.Assets,
		area:      world.PlayArea(s.ScreenWidth, s.ScreenHeight, s.Margin),
		rng:       rand.New(rand.NewSource(seed)),
		state:     newStartUp(cfg.Assets.Splash),
		entered:   true,
		sessionID: uuid.NewString(),
	}, nil
}

// State returns the active screen.
func (g *Game) State() *State {
	return g.state
}

// Entered returns true when the active screen was entered during the last
// Update, or has not been updated yet.
func (g *Game) Entered() bool {
	return g.entered
}

// Settings returns the settings the game was created with.
func (g *Game) Settings() *gamedata.Settings {
	return &g.settings
}

// Assets returns the sprite images.
func (g *Game) Assets() *gamedata.Assets {
	return g.assets
}

// Area returns the play area sprites move in.
func (g *Game) Area() world.Rect {
	return g.area
}

// SessionID identifies this run of the game in traces.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Update advances the game by one tick. It returns ErrQuit when the
// player quits.
func (g *Game) Update(ctx context.Context, in Input) error {
	g.entered = false

	if in.Quit {
		g.trace(ctx, "game.quit", attribute.String("state", g.state.Kind.String()))
		return ErrQuit
	}

	if g.state.Paused() {
		g.updatePaused(ctx, in)
	} else {
		g.updateLevel(ctx, in)
	}

	if g.next != nil {
		g.state = g.next
		g.next = nil
		g.entered = true
	}
	return nil
}

// updatePaused dismisses a paused screen on any key or click.
func (g *Game) updatePaused(ctx context.Context, in Input) {
	if in.Pressed {
		g.state.finished = true
	}
	if g.state.finished {
		g.next = g.continuation(ctx, g.state)
	}
}

// continuation returns the screen that follows a dismissed paused screen.
func (g *Game) continuation(ctx context.Context, s *State) *State {
	switch s.Kind {
	case KindStartUp:
		return newInfo()
	case KindLevelCleared:
		return g.newLevelState(ctx, s.Number+1)
	default:
		return g.newLevelState(ctx, 1)
	}
}

// updateLevel runs one tick of play and picks the next screen.
func (g *Game) updateLevel(ctx context.Context, in Input) {
	level := g.state.Level

	var span string
	outcome := level.Update(in.PointerX)
	switch outcome {
	case OutcomeSquished:
		span = "game.over"
		g.next = newGameOver()
	case OutcomeCleared:
		span = "level.cleared"
		g.next = newLevelCleared(level.Number)
	default:
		return
	}

	g.trace(ctx, span,
		attribute.String("level.outcome", outcome.String()),
		attribute.Int("level.number", level.Number),
		attribute.Int("level.remaining", level.Remaining),
	)
}

// newLevelState starts level number.
func (g *Game) newLevelState(ctx context.Context, number int) *State {
	level := NewLevel(number, &g.settings, g.assets, g.area, g.rng)
	g.trace(ctx, "level.start",
		attribute.Int("level.number", number),
		attribute.Int("level.speed", level.Weight.Speed),
		attribute.Int("level.weights", level.Remaining),
	)
	return &State{
		Kind:   KindLevel,
		Number: number,
		Level:  level,
	}
}

// trace records a point-in-time span for a game event.
func (g *Game) trace(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, name)
	span.SetAttributes(attribute.String("session.id", g.sessionID))
	span.SetAttributes(attrs...)
	span.End()
}

// itoa is a simple int to string helper.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	if i < 0 {
		return "-" + itoa(-i)
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}
