// Command watch follows a headless server's telemetry feed and logs a summary
// of each actor once per second.
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"tempest/pkg/logger"
	"tempest/pkg/network"
	protocol "tempest/pkg/shared/network"
)

func main() {
	url := flag.String("url", "ws://localhost:8081/ws", "telemetry socket")
	every := flag.Duration("every", time.Second, "summary interval")
	flag.Parse()

	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := network.NewWatcher(*url)
	var last time.Time
	w.OnFrame = func(f protocol.Frame) {
		if time.Since(last) < *every {
			return
		}
		last = time.Now()
		for _, a := range f.Actors {
			logger.Log.WithFields(logrus.Fields{
				"tick":   f.Tick,
				"actor":  a.Name,
				"status": a.Status,
				"health": a.Health,
				"energy": a.Energy,
				"weapon": a.Weapon,
				"spell":  a.Spell,
			}).Infof("%.0f,%.0f", a.X, a.Y)
		}
	}

	if err := w.Run(ctx); err != nil {
		logger.Log.Fatalf("Watch stopped: %v", err)
	}
	logger.Log.Info("Telemetry closed")
}
