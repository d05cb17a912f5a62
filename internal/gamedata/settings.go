package gamedata

import (
	"errors"
	"fmt"
	"strconv"
)

// Environment variables that override the settings file.
const (
	EnvConfig     = "SQUISH_CONFIG"
	EnvFullScreen = "SQUISH_FULLSCREEN"
	EnvAssetDir   = "SQUISH_ASSET_DIR"
)

// ImageNames maps each sprite to its image file.
type ImageNames struct {
	Weight string `json:"weight"`
	Banana string `json:"banana"`
	Splash string `json:"splash"` // Shown on the start-up screen; empty for none
}

// TerminalStyle controls how sprites look in the terminal frontend.
type TerminalStyle struct {
	WeightGlyph string `json:"weightGlyph"`
	WeightColor string `json:"weightColor"`
	BananaGlyph string `json:"bananaGlyph"`
	BananaColor string `json:"bananaColor"`
	TextColor   string `json:"textColor"`
}

// Settings holds every tunable value of the game.
type Settings struct {
	ScreenWidth     int    `json:"screenWidth"`
	ScreenHeight    int    `json:"screenHeight"`
	FullScreen      bool   `json:"fullScreen"`
	Margin          int    `json:"margin"`          // Border between the screen edge and the play area
	BackgroundColor string `json:"backgroundColor"` // Hex color code (e.g., "#FFFFFF")
	TextColor       string `json:"textColor"`
	FontSize        int    `json:"fontSize"`

	DropSpeed       int `json:"dropSpeed"`       // Pixels per tick on level 1
	SpeedIncrease   int `json:"speedIncrease"`   // Added to the drop speed for each later level
	WeightsPerLevel int `json:"weightsPerLevel"` // Safe landings needed to clear a level

	BananaPadTop  int `json:"bananaPadTop"`  // Trimmed off the top of the banana's hit box
	BananaPadSide int `json:"bananaPadSide"` // Trimmed off the width of the banana's hit box, split across both sides

	Images   ImageNames    `json:"images"`
	Terminal TerminalStyle `json:"terminal"`

	// AssetDir, when set, is a directory images are read from instead of
	// the embedded copies. It is only set from the environment.
	AssetDir string `json:"-"`
}

// DefaultSettings returns the embedded squish.json settings.
func DefaultSettings() (Settings, error) {
	return Load[Settings]("squish.json")
}

// LoadSettings returns the embedded defaults, overlaid with the JSON file at
// path when path is not empty.
func LoadSettings(path string) (Settings, error) {
	s, err := DefaultSettings()
	if err != nil {
		return s, err
	}
	if path == "" {
		return s, nil
	}
	if err := Overlay(path, &s); err != nil {
		return s, err
	}
	return s, nil
}

// ApplyEnv overrides settings from environment variables.
// lookup has the signature of os.LookupEnv.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFullScreen); ok && v != "" {
		full, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvFullScreen, v, err)
		}
		s.FullScreen = full
	}
	if v, ok := lookup(EnvAssetDir); ok {
		s.AssetDir = v
	}
	return nil
}

// Validate checks that the settings describe a playable game.
func (s *Settings) Validate() error {
	var errs []error

	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", s.ScreenWidth, s.ScreenHeight))
	}
	if s.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin %d must not be negative", s.Margin))
	} else if 2*s.Margin >= s.ScreenWidth || 2*s.Margin >= s.ScreenHeight {
		errs = append(errs, fmt.Errorf("margin %d leaves no play area", s.Margin))
	}
	if s.WeightsPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("weightsPerLevel %d must be positive", s.WeightsPerLevel))
	}
	if s.DropSpeed <= 0 {
		errs = append(errs, fmt.Errorf("dropSpeed %d must be positive", s.DropSpeed))
	}
	if s.SpeedIncrease < 0 {
		errs = append(errs, fmt.Errorf("speedIncrease %d must not be negative", s.SpeedIncrease))
	}
	if s.BananaPadTop < 0 || s.BananaPadSide < 0 {
		errs = append(errs, errors.New("banana padding must not be negative"))
	}
	if s.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("fontSize %d must be positive", s.FontSize))
	}
	if s.Images.Weight == "" || s.Images.Banana == "" {
		errs = append(errs, errors.New("weight and banana images are required"))
	}
	for _, hex := range []string{s.BackgroundColor, s.TextColor} {
		if _, err := ParseHexColor(hex); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// LevelSpeed returns the fall speed of weights on the given level.
func (s *Settings) LevelSpeed(level int) int {
	return s.DropSpeed + (level-1)*s.SpeedIncrease
}
