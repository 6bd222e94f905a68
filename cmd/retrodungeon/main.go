// Package main is the entry point for RetroDungeon.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/retrodungeon/internal/game"
	"github.com/samdwyer/retrodungeon/internal/telemetry"
	"github.com/samdwyer/retrodungeon/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_RETRODUNGEON_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// buildConfig layers defaults, config file, environment and flags.
func buildConfig() (game.Config, error) {
	cfg := game.DefaultConfig()

	configPath := flag.String("config", "", "path to YAML config file")
	seed := flag.Int64("seed", cfg.Seed, "random seed (0 = time-derived)")
	name := flag.String("name", cfg.PlayerName, "player name")
	saveFile := flag.String("save", cfg.SaveFile, "save file path")
	generator := flag.String("gen", cfg.Generator, "map generator: room or bsp")
	plain := flag.Bool("plain", false, "render with raw ANSI escapes instead of tcell")
	flag.Parse()

	if *configPath != "" {
		if err := game.LoadConfigFile(*configPath, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := game.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	// Flags win, but only the ones the user actually set.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "name":
			cfg.PlayerName = *name
		case "save":
			cfg.SaveFile = *saveFile
		case "gen":
			cfg.Generator = *generator
		case "plain":
			cfg.PlainRender = *plain
		}
	})

	return cfg, nil
}

// run wires the chosen renderer and input source and starts the loop.
func run(ctx context.Context, cfg game.Config) error {
	if cfg.PlainRender {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer term.Restore(int(os.Stdin.Fd()), oldState)

		g, err := game.New(cfg, ui.NewANSIRenderer(os.Stdout))
		if err != nil {
			return err
		}
		return g.Run(ctx, ui.NewTermInput(os.Stdin))
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Close()

	g, err := game.New(cfg, ui.NewScreenRenderer(screen))
	if err != nil {
		return err
	}
	return g.Run(ctx, ui.NewTcellInput(screen))
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_RETRODUNGEON_API_KEY")
	dataset := os.Getenv("HONEYCOMB_RETRODUNGEON_DATASET")
	if dataset == "" {
		dataset = "retrodungeon" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
