// Package config loads panel and simulator settings from defaults, an
// optional YAML file, environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Panel defaults reproduce the stock device setup.
const (
	DefaultBaseURL      = "https://embedded-server.onrender.com"
	DefaultPollInterval = 3 * time.Second
	DefaultCooldown     = 5 * time.Second
	DefaultHistorySize  = 200
	DefaultLogLevel     = "info"
	DefaultLogFile      = "plantcare.log"
)

// Config is the display panel configuration.
type Config struct {
	Remote   RemoteConfig   `mapstructure:"remote"`
	Poll     PollConfig     `mapstructure:"poll"`
	Watering WateringConfig `mapstructure:"watering"`
	History  HistoryConfig  `mapstructure:"history"`
	Log      LogConfig      `mapstructure:"log"`
}

// RemoteConfig addresses the device service.
type RemoteConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 = none
}

type PollConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type WateringConfig struct {
	Cooldown time.Duration `mapstructure:"cooldown"`
}

type HistoryConfig struct {
	Size int `mapstructure:"size"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // "-" = stderr
}

// Load parses args (without the program name) into a validated Config.
// pflag.ErrHelp is returned unwrapped when -h/--help is given.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("plantcare", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("base-url", DefaultBaseURL, "device service root URL")
	fs.Duration("timeout", 0, "per-request timeout (0 = none)")
	fs.Duration("poll-interval", DefaultPollInterval, "humidity poll period")
	fs.Duration("cooldown", DefaultCooldown, "watering busy window after a started cycle")
	fs.Int("history", DefaultHistorySize, "readings kept for the sparkline")
	fs.String("log-level", DefaultLogLevel, "debug|info|warn|error")
	fs.String("log-file", DefaultLogFile, "log file path, - for stderr")

	v := viper.New()
	v.SetDefault("remote.base_url", DefaultBaseURL)
	v.SetDefault("remote.timeout", time.Duration(0))
	v.SetDefault("poll.interval", DefaultPollInterval)
	v.SetDefault("watering.cooldown", DefaultCooldown)
	v.SetDefault("history.size", DefaultHistorySize)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", DefaultLogFile)

	bindings := map[string]string{
		"remote.base_url":   "base-url",
		"remote.timeout":    "timeout",
		"poll.interval":     "poll-interval",
		"watering.cooldown": "cooldown",
		"history.size":      "history",
		"log.level":         "log-level",
		"log.file":          "log-file",
	}

	var cfg Config
	if err := load(v, fs, "PLANTCARE", bindings, args, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// load runs the shared viper pipeline: flags, env, optional file, unmarshal.
func load(v *viper.Viper, fs *pflag.FlagSet, envPrefix string, bindings map[string]string, args []string, out any) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("parse flags: %w", err)
	}

	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}
