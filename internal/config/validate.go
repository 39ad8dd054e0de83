package config

import (
	"fmt"
	"net/url"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks panel configuration correctness. It does not mutate cfg.
func Validate(cfg *Config) error {
	if err := validateBaseURL(cfg.Remote.BaseURL); err != nil {
		return err
	}
	if cfg.Remote.Timeout < 0 {
		return fmt.Errorf("remote.timeout must be >= 0, got %s", cfg.Remote.Timeout)
	}
	if cfg.Poll.Interval <= 0 {
		return fmt.Errorf("poll.interval must be > 0, got %s", cfg.Poll.Interval)
	}
	if cfg.Watering.Cooldown <= 0 {
		return fmt.Errorf("watering.cooldown must be > 0, got %s", cfg.Watering.Cooldown)
	}
	if cfg.History.Size < 1 {
		return fmt.Errorf("history.size must be >= 1, got %d", cfg.History.Size)
	}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level)
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("remote.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("remote.base_url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("remote.base_url %q: missing host", raw)
	}
	return nil
}
