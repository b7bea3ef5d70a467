package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os/signal"
	"syscall"

	"tempest/pkg/logger"
	"tempest/pkg/server"
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

	gameServer, err := server.NewGameServer(settings)
	if err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := gameServer.Run(ctx); err != nil {
		logger.Log.Fatalf("Server stopped: %v", err)
	}
}
