package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/squish/internal/game"
	"github.com/samdwyer/squish/internal/gamedata"
)

func TestLoadConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squish.json")
	if err := os.WriteFile(path, []byte(`{"weightsPerLevel": 4}`), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	t.Setenv(gamedata.EnvConfig, path)
	t.Setenv(gamedata.EnvFullScreen, "false")
	t.Setenv(envSeed, "7")

	cfg, err := loadConfig("", 0)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.Settings.WeightsPerLevel != 4 {
		t.Errorf("WeightsPerLevel = %d, want 4", cfg.Settings.WeightsPerLevel)
	}
	if cfg.Settings.FullScreen {
		t.Error("FullScreen should be disabled by the environment")
	}
	if cfg.Assets == nil || cfg.Assets.Weight == nil {
		t.Error("Assets should be loaded")
	}
}

func TestLoadConfigFlagSeedWins(t *testing.T) {
	t.Setenv(envSeed, "7")

	cfg, err := loadConfig("", 99)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("bad seed", func(t *testing.T) {
		t.Setenv(envSeed, "lots")
		if _, err := loadConfig("", 0); err == nil {
			t.Error("loadConfig() should reject a non-numeric seed")
		}
	})

	t.Run("missing assets", func(t *testing.T) {
		t.Setenv(gamedata.EnvAssetDir, t.TempDir())
		if _, err := loadConfig("", 1); err == nil {
			t.Error("loadConfig() should fail when images are missing")
		}
	})

	t.Run("invalid settings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "squish.json")
		if err := os.WriteFile(path, []byte(`{"margin": 1000}`), 0o644); err != nil {
			t.Fatalf("Failed to write settings: %v", err)
		}
		if _, err := loadConfig(path, 1); err == nil {
			t.Error("loadConfig() should reject a margin that leaves no play area")
		}
	})
}

func TestRunUnknownFrontend(t *testing.T) {
	cfg, err := loadConfig("", 1)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New() error: %v", err)
	}

	if err := run(context.Background(), "hologram", g); err == nil {
		t.Error("run() should reject an unknown frontend")
	}
}
