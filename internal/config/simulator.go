package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SimulatorConfig configures plantsim, the stand-in device service.
type SimulatorConfig struct {
	Listen string     `mapstructure:"listen"`
	Soil   SoilConfig `mapstructure:"soil"`
	Log    LogConfig  `mapstructure:"log"`
}

// SoilConfig drives the simulated raw sensor value.
type SoilConfig struct {
	Start     float64       `mapstructure:"start"`
	DryRate   float64       `mapstructure:"dry_rate"`   // raw units per second
	WaterDrop float64       `mapstructure:"water_drop"` // raw units per watering
	Min       float64       `mapstructure:"min"`
	Max       float64       `mapstructure:"max"`
	Tick      time.Duration `mapstructure:"tick"`
}

// LoadSimulator parses args into a validated SimulatorConfig.
func LoadSimulator(args []string) (*SimulatorConfig, error) {
	fs := pflag.NewFlagSet("plantsim", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("listen", ":8080", "listen address")
	fs.Float64("start", 850, "initial raw humidity")
	fs.Float64("dry-rate", 2, "raw units the soil dries per second")
	fs.Float64("water-drop", 120, "raw units removed by one watering")
	fs.String("log-level", DefaultLogLevel, "debug|info|warn|error")

	v := viper.New()
	v.SetDefault("listen", ":8080")
	v.SetDefault("soil.start", 850.0)
	v.SetDefault("soil.dry_rate", 2.0)
	v.SetDefault("soil.water_drop", 120.0)
	v.SetDefault("soil.min", 650.0)
	v.SetDefault("soil.max", 1050.0)
	v.SetDefault("soil.tick", time.Second)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "-")

	bindings := map[string]string{
		"listen":          "listen",
		"soil.start":      "start",
		"soil.dry_rate":   "dry-rate",
		"soil.water_drop": "water-drop",
		"log.level":       "log-level",
	}

	var cfg SimulatorConfig
	if err := load(v, fs, "PLANTSIM", bindings, args, &cfg); err != nil {
		return nil, err
	}
	if err := ValidateSimulator(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateSimulator checks simulator configuration. It does not mutate cfg.
func ValidateSimulator(cfg *SimulatorConfig) error {
	s := cfg.Soil
	if cfg.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if s.Min >= s.Max {
		return fmt.Errorf("soil.min (%v) must be below soil.max (%v)", s.Min, s.Max)
	}
	if s.Start < s.Min || s.Start > s.Max {
		return fmt.Errorf("soil.start %v outside [%v, %v]", s.Start, s.Min, s.Max)
	}
	if s.DryRate < 0 || s.WaterDrop < 0 {
		return fmt.Errorf("soil.dry_rate and soil.water_drop must be >= 0")
	}
	if s.Tick <= 0 {
		return fmt.Errorf("soil.tick must be > 0, got %s", s.Tick)
	}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level)
	}
	return nil
}
