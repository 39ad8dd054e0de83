// Command plantcare is a terminal panel that shows the soil humidity of a
// remote plant device and lets the user start a watering cycle.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/luki/plantcare/internal/config"
	"github.com/luki/plantcare/internal/logger"
	"github.com/luki/plantcare/internal/panel"
	"github.com/luki/plantcare/internal/remote"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := remote.New(cfg.Remote.BaseURL, cfg.Remote.Timeout)
	log.Infow("starting panel",
		"remote", client.BaseURL(),
		"poll_interval", cfg.Poll.Interval,
		"cooldown", cfg.Watering.Cooldown,
	)

	m := panel.New(ctx, client, log, panel.Options{
		PollInterval: cfg.Poll.Interval,
		Cooldown:     cfg.Watering.Cooldown,
		HistorySize:  cfg.History.Size,
		Source:       client.BaseURL(),
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		log.Errorw("panel exited with error", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log.Infow("panel stopped")
	return 0
}
