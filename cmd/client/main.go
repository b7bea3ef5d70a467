package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"tempest/pkg/client"
	"tempest/pkg/logger"
	"tempest/pkg/shared/config"
)

func main() {
	settingsPath := flag.String("config", "data/settings.yaml", "settings file")
	flag.Parse()

	logger.Init()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Log.Fatalf("Failed to load settings: %v", err)
		}
		logger.Log.Warnf("No settings at %s, using defaults", *settingsPath)
	}
	logger.SetLevel(settings.LogLevel)

	game, err := client.NewGame(settings)
	if err != nil {
		logger.Log.Fatalf("Failed to start game: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tempest")
	ebiten.SetTPS(config.FPS)

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		logger.Log.WithError(err).Error("Failed to save player")
	}
	if runErr != nil && !client.IsTermination(runErr) {
		logger.Log.Fatal(runErr)
	}
}
