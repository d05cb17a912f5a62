package game

import "github.com/samdwyer/squish/internal/gamedata"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible weight drops.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Settings gamedata.Settings
	Assets   *gamedata.Assets
}
