package gamedata

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"os"
	"path/filepath"
)

// Image is an encoded sprite image with its decoded dimensions.
type Image struct {
	Name   string
	Data   []byte
	Width  int
	Height int
}

// Assets holds the images the game draws.
type Assets struct {
	Weight *Image
	Banana *Image
	Splash *Image // nil when no splash image is configured
}

// LoadAssets reads the images named in s. Images come from s.AssetDir when
// it is set and from the embedded images otherwise.
func LoadAssets(s Settings) (*Assets, error) {
	weight, err := LoadImage(s.AssetDir, s.Images.Weight)
	if err != nil {
		return nil, err
	}
	banana, err := LoadImage(s.AssetDir, s.Images.Banana)
	if err != nil {
		return nil, err
	}

	// The hit box is the banana shrunk by the padding; it must not vanish.
	if s.BananaPadSide >= banana.Width || s.BananaPadTop >= banana.Height {
		return nil, fmt.Errorf("banana padding %dx%d leaves no hit box on %dx%d image %s",
			s.BananaPadSide, s.BananaPadTop, banana.Width, banana.Height, banana.Name)
	}

	assets := &Assets{Weight: weight, Banana: banana}
	if s.Images.Splash != "" {
		assets.Splash, err = LoadImage(s.AssetDir, s.Images.Splash)
		if err != nil {
			return nil, err
		}
	}
	return assets, nil
}

// LoadImage reads a PNG image from dir, or from the embedded images when dir
// is empty, and decodes its dimensions.
func LoadImage(dir, name string) (*Image, error) {
	var (
		data []byte
		err  error
	)
	if dir != "" {
		data, err = os.ReadFile(filepath.Join(dir, name))
	} else {
		data, err = dataFS.ReadFile("images/" + name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", name, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}

	return &Image{
		Name:   name,
		Data:   data,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
