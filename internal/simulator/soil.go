// Package simulator stands in for the plant device: a drifting soil model
// served over the same two endpoints the panel uses.
package simulator

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/luki/plantcare/internal/config"
)

// Soil is a raw moisture value that rises (dries) over time and drops when
// watered, clamped to the configured bounds.
type Soil struct {
	mu      sync.Mutex
	cfg     config.SoilConfig
	raw     float64
	updated time.Time
}

// NewSoil starts the model at cfg.Start as of now.
func NewSoil(cfg config.SoilConfig, now time.Time) *Soil {
	return &Soil{cfg: cfg, raw: cfg.Start, updated: now}
}

// Step applies drying for the time elapsed since the previous step.
func (s *Soil) Step(now time.Time) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	elapsed := now.Sub(s.updated).Seconds()
	if elapsed > 0 {
		s.raw = s.clamp(s.raw + s.cfg.DryRate*elapsed)
		s.updated = now
	}
	return s.raw
}

// Raw returns the current value rounded the way the device reports it.
func (s *Soil) Raw() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(math.Round(s.raw))
}

// Water removes one watering worth of dryness and returns the rounded values
// before and after.
func (s *Soil) Water() (before, after int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before = int(math.Round(s.raw))
	s.raw = s.clamp(s.raw - s.cfg.WaterDrop)
	return before, int(math.Round(s.raw))
}

func (s *Soil) clamp(v float64) float64 {
	return math.Max(s.cfg.Min, math.Min(s.cfg.Max, v))
}

// Run steps the model every tick until ctx is canceled. onStep, if set, sees
// each new value.
func (s *Soil) Run(ctx context.Context, tick time.Duration, onStep func(float64)) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			v := s.Step(now)
			if onStep != nil {
				onStep(v)
			}
		}
	}
}
