// Package gamedata provides embedded game settings and images and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds the default settings and sprite images at build time.
//
//go:embed squish.json images/*.png
var dataFS embed.FS
