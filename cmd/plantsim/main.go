// Command plantsim serves a simulated plant device on /gethumidity and
// /startmotor for developing the panel without hardware.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/luki/plantcare/internal/config"
	"github.com/luki/plantcare/internal/logger"
	"github.com/luki/plantcare/internal/server"
	"github.com/luki/plantcare/internal/simulator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadSimulator(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	soil := simulator.NewSoil(cfg.Soil, time.Now())
	metrics := simulator.NewMetrics()
	handler := simulator.NewHandler(soil, metrics, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go soil.Run(ctx, cfg.Soil.Tick, metrics.SoilRaw.Set)

	srv := server.New(cfg.Listen, handler.InitRoutes())
	go func() {
		log.Infow("plantsim listening", "addr", srv.Addr(), "start", cfg.Soil.Start)
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(cancel, srv, log)
}

// waitForShutdown blocks until SIGINT/SIGTERM, then stops the soil model and
// drains the HTTP server.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down plantsim...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
