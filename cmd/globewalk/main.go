package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"globewalk/internal/config"
	"globewalk/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	sceneName := flag.String("scene", "minimal", fmt.Sprintf("built-in scene (%s)", strings.Join(config.PresetNames(), ", ")))
	configPath := flag.String("config", "", "JSON file overriding the scene settings")
	autopilot := flag.Bool("autopilot", false, "walk the globe without mouse input")
	flag.Parse()

	cfg, err := config.Preset(*sceneName)
	if err != nil {
		log.Fatal(err)
	}
	if *configPath != "" {
		if cfg, err = config.Load(*configPath, cfg); err != nil {
			log.Fatal(err)
		}
	}

	g, err := game.New(cfg, game.Options{Autopilot: *autopilot})
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := g.Run(ctx); err != nil {
		log.Printf("globewalk: %v", err)
		stop()
		os.Exit(1)
	}
}
