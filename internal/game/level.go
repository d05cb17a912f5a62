package game

import (
	"math/rand"

	"github.com/samdwyer/squish/internal/entity"
	"github.com/samdwyer/squish/internal/gamedata"
	"github.com/samdwyer/squish/internal/world"
)

// Outcome is the result of one tick of a level.
type Outcome int

const (
	// OutcomeNone means play continues.
	OutcomeNone Outcome = iota
	// OutcomeSquished means the weight touched the banana.
	OutcomeSquished
	// OutcomeCleared means the last weight of the level landed safely.
	OutcomeCleared
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSquished:
		return "squished"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Level counts the weights dropped in one level of play.
type Level struct {
	Number    int // Starts at 1
	Remaining int // Weights left to dodge
	Weight    *entity.Weight
	Banana    *entity.Banana
}

// NewLevel creates level number with weights falling at the level's speed.
func NewLevel(number int, s *gamedata.Settings, assets *gamedata.Assets, area world.Rect, rng *rand.Rand) *Level {
	return &Level{
		Number:    number,
		Remaining: s.WeightsPerLevel,
		Weight:    entity.NewWeight(assets.Weight.Width, assets.Weight.Height, s.LevelSpeed(number), area, rng),
		Banana:    entity.NewBanana(assets.Banana.Width, assets.Banana.Height, s.BananaPadTop, s.BananaPadSide, area),
	}
}

// Update moves both sprites for one tick and applies the rules: a touch
// squishes the banana, otherwise a landed weight is dropped again and
// counted.
func (l *Level) Update(pointerX int) Outcome {
	l.Weight.Update()
	l.Banana.Follow(pointerX)

	if l.Banana.Touches(l.Weight) {
		return OutcomeSquished
	}

	if l.Weight.Landed {
		l.Weight.Reset()
		if l.Remaining > 0 {
			l.Remaining--
		}
		if l.Remaining == 0 {
			return OutcomeCleared
		}
	}

	return OutcomeNone
}

// Sprites returns the sprites in drawing order.
func (l *Level) Sprites() []entity.Sprite {
	return []entity.Sprite{l.Weight, l.Banana}
}
