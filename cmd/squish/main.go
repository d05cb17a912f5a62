// Package main is the entry point for Squish.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	_ "github.com/ebitengine/hideconsole"
	"github.com/joho/godotenv"

	"github.com/samdwyer/squish/internal/game"
	"github.com/samdwyer/squish/internal/gamedata"
	"github.com/samdwyer/squish/internal/gfx"
	"github.com/samdwyer/squish/internal/telemetry"
	"github.com/samdwyer/squish/internal/ui"
)

// envSeed seeds weight drops when -seed is not given.
const envSeed = "SQUISH_SEED"

func main() {
	frontend := flag.String("frontend", "window", "where to play: window or terminal")
	seed := flag.Int64("seed", 0, "random seed for weight drops (0 picks one)")
	configPath := flag.String("config", "", "JSON settings file overriding the defaults (or $"+gamedata.EnvConfig+")")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		if !errors.Is(err, telemetry.ErrNotConfigured) {
			log.Printf("Warning: telemetry setup failed: %v", err)
		}
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := loadConfig(*configPath, *seed)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := run(ctx, *frontend, g); err != nil {
		log.Fatalf("Game error: %v", err)
	}
	log.Printf("Session %s ended", g.SessionID())
}

// loadConfig gathers settings, images and the seed from flags and the environment.
func loadConfig(path string, seed int64) (game.Config, error) {
	if path == "" {
		path = os.Getenv(gamedata.EnvConfig)
	}

	settings, err := gamedata.LoadSettings(path)
	if err != nil {
		return game.Config{}, err
	}
	if err := settings.ApplyEnv(os.LookupEnv); err != nil {
		return game.Config{}, err
	}
	if err := settings.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("invalid settings: %w", err)
	}

	assets, err := gamedata.LoadAssets(settings)
	if err != nil {
		return game.Config{}, err
	}

	if seed == 0 {
		if v := os.Getenv(envSeed); v != "" {
			seed, err = strconv.ParseInt(v, 10, 64)
			if err != nil {
				return game.Config{}, fmt.Errorf("invalid %s value %q: %w", envSeed, v, err)
			}
		}
	}

	return game.Config{Seed: seed, Settings: settings, Assets: assets}, nil
}

// run plays g on the chosen frontend until the player quits.
func run(ctx context.Context, frontend string, g *game.Game) error {
	switch frontend {
	case "window":
		app, err := gfx.NewApp(ctx, g)
		if err != nil {
			return err
		}
		return app.Run()
	case "terminal":
		term, err := ui.NewTerminal(g)
		if err != nil {
			return err
		}
		return term.Run(ctx)
	default:
		return fmt.Errorf("unknown frontend %q (want window or terminal)", frontend)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_SQUISH_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_SQUISH_DATASET")
	if dataset == "" {
		dataset = "squish" // default dataset name
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
