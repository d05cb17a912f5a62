// Package entity provides the sprites of the game: the falling weight and the banana.
package entity

import "github.com/samdwyer/squish/internal/world"

// Sprite is anything drawn at a rectangle on the play field.
type Sprite interface {
	Bounds() world.Rect
}
