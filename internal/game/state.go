// Package game provides the main game loop and state management.
package game

import "github.com/samdwyer/squish/internal/gamedata"

// Kind identifies which screen a State is.
type Kind int

const (
	// KindStartUp is the splash screen shown when the game starts.
	KindStartUp Kind = iota
	// KindInfo explains the premise of the game.
	KindInfo
	// KindLevel is active play: the weight falls and the banana dodges.
	KindLevel
	// KindLevelCleared announces that a level was survived.
	KindLevelCleared
	// KindGameOver is shown after the banana is squished.
	KindGameOver
)

// String returns a human-readable state name.
func (k Kind) String() string {
	switch k {
	case KindStartUp:
		return "start_up"
	case KindInfo:
		return "info"
	case KindLevel:
		return "level"
	case KindLevelCleared:
		return "level_cleared"
	case KindGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is one screen of the game. Which fields are set depends on Kind:
// paused screens carry Lines and optionally Image, KindLevelCleared carries
// the cleared Number, and KindLevel carries Level.
type State struct {
	Kind   Kind
	Lines  []string        // Text shown on a paused screen, top to bottom
	Image  *gamedata.Image // Drawn above the text; may be nil
	Number int             // Level number for KindLevel and KindLevelCleared
	Level  *Level          // Only for KindLevel

	finished bool // A paused screen was dismissed
}

// Paused returns true for every screen that waits for a key or click.
func (s *State) Paused() bool {
	return s.Kind != KindLevel
}

var infoText = []string{
	"In this game you are a banana,",
	"trying to survive a course in",
	"self-defense against fruit, where the",
	"participants will \"defend\" themselves",
	"against you with a 16 ton weight.",
}

func newStartUp(splash *gamedata.Image) *State {
	return &State{
		Kind:  KindStartUp,
		Lines: []string{"Welcome to Squish!"},
		Image: splash,
	}
}

func newInfo() *State {
	return &State{Kind: KindInfo, Lines: infoText}
}

func newLevelCleared(number int) *State {
	return &State{
		Kind:   KindLevelCleared,
		Number: number,
		Lines: []string{
			"Level " + itoa(number) + " cleared",
			"Click to start next level",
		},
	}
}

func newGameOver() *State {
	return &State{
		Kind: KindGameOver,
		Lines: []string{
			"Game Over!",
			"Click to Restart, Esc to Quit",
		},
	}
}
