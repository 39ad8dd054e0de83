package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.BaseURL != DefaultBaseURL {
		t.Errorf("base url: got %q", cfg.Remote.BaseURL)
	}
	if cfg.Remote.Timeout != 0 {
		t.Errorf("timeout: got %s, want 0", cfg.Remote.Timeout)
	}
	if cfg.Poll.Interval != 3*time.Second {
		t.Errorf("poll interval: got %s", cfg.Poll.Interval)
	}
	if cfg.Watering.Cooldown != 5*time.Second {
		t.Errorf("cooldown: got %s", cfg.Watering.Cooldown)
	}
	if cfg.History.Size != DefaultHistorySize {
		t.Errorf("history: got %d", cfg.History.Size)
	}
	if cfg.Log.Level != "info" || cfg.Log.File != DefaultLogFile {
		t.Errorf("log: got %+v", cfg.Log)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--base-url", "http://10.0.0.7:8080",
		"--poll-interval", "1500ms",
		"--cooldown", "2s",
		"--history", "50",
		"--log-file", "-",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.BaseURL != "http://10.0.0.7:8080" {
		t.Errorf("base url: got %q", cfg.Remote.BaseURL)
	}
	if cfg.Poll.Interval != 1500*time.Millisecond {
		t.Errorf("poll interval: got %s", cfg.Poll.Interval)
	}
	if cfg.Watering.Cooldown != 2*time.Second {
		t.Errorf("cooldown: got %s", cfg.Watering.Cooldown)
	}
	if cfg.History.Size != 50 {
		t.Errorf("history: got %d", cfg.History.Size)
	}
	if cfg.Log.File != "-" {
		t.Errorf("log file: got %q", cfg.Log.File)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plantcare.yaml")
	yaml := `
remote:
  base_url: http://greenhouse.local
poll:
  interval: 10s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANTCARE_WATERING_COOLDOWN", "8s")

	cfg, err := Load([]string{"--config", path, "--poll-interval", "4s"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.BaseURL != "http://greenhouse.local" {
		t.Errorf("base url from file: got %q", cfg.Remote.BaseURL)
	}
	if cfg.Poll.Interval != 4*time.Second {
		t.Errorf("flag should win over file: got %s", cfg.Poll.Interval)
	}
	if cfg.Watering.Cooldown != 8*time.Second {
		t.Errorf("cooldown from env: got %s", cfg.Watering.Cooldown)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level from file: got %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad scheme", []string{"--base-url", "ftp://device"}, "scheme"},
		{"no host", []string{"--base-url", "http://"}, "missing host"},
		{"zero interval", []string{"--poll-interval", "0s"}, "poll.interval"},
		{"negative cooldown", []string{"--cooldown=-1s"}, "watering.cooldown"},
		{"empty history", []string{"--history", "0"}, "history.size"},
		{"bad level", []string{"--log-level", "loud"}, "log.level"},
		{"unknown flag", []string{"--nope"}, "parse flags"},
		{"missing file", []string{"--config", "/does/not/exist.yaml"}, "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load([]string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("err = %v, want pflag.ErrHelp", err)
	}
}

func TestLoadSimulator(t *testing.T) {
	cfg, err := LoadSimulator([]string{"--listen", ":9090", "--dry-rate", "0.5"})
	if err != nil {
		t.Fatalf("LoadSimulator: %v", err)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("listen: got %q", cfg.Listen)
	}
	if cfg.Soil.DryRate != 0.5 || cfg.Soil.Start != 850 || cfg.Soil.WaterDrop != 120 {
		t.Errorf("soil: got %+v", cfg.Soil)
	}
	if cfg.Soil.Min != 650 || cfg.Soil.Max != 1050 || cfg.Soil.Tick != time.Second {
		t.Errorf("soil bounds: got %+v", cfg.Soil)
	}
	if cfg.Log.File != "-" {
		t.Errorf("log file: got %q", cfg.Log.File)
	}
}

func TestValidateSimulator(t *testing.T) {
	base := SimulatorConfig{
		Listen: ":8080",
		Soil:   SoilConfig{Start: 850, DryRate: 2, WaterDrop: 120, Min: 650, Max: 1050, Tick: time.Second},
		Log:    LogConfig{Level: "info"},
	}
	if err := ValidateSimulator(&base); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := base
	bad.Soil.Start = 2000
	if err := ValidateSimulator(&bad); err == nil {
		t.Error("start outside bounds accepted")
	}

	bad = base
	bad.Soil.Min, bad.Soil.Max = 900, 800
	if err := ValidateSimulator(&bad); err == nil {
		t.Error("inverted bounds accepted")
	}

	bad = base
	bad.Soil.Tick = 0
	if err := ValidateSimulator(&bad); err == nil {
		t.Error("zero tick accepted")
	}
}
