// Package config loads runtime settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/gravewalk/internal/game"
)

// DefaultPath is where the settings file is looked up when no path is given.
const DefaultPath = "gravewalk.yaml"

// Config holds every runtime setting.
type Config struct {
	Seed      int64         `yaml:"seed"`      // 0 picks a time-based seed
	HalfSize  int           `yaml:"halfSize"`  // Grid spans [-halfSize, halfSize]
	Tick      time.Duration `yaml:"tick"`      // Frame interval of the main loop
	LogFile   string        `yaml:"logFile"`   // The terminal belongs to the renderer
	LogLevel  string        `yaml:"logLevel"`  // logrus level name
	LogFormat string        `yaml:"logFormat"` // "text" or "json"
	Telemetry bool          `yaml:"telemetry"` // Export traces over OTLP
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		HalfSize:  10,
		Tick:      16 * time.Millisecond,
		LogFile:   "gravewalk.log",
		LogLevel:  "info",
		LogFormat: "text",
		Telemetry: true,
	}
}

// Load starts from Default, applies the YAML file at path if it exists, then
// environment overrides. An empty path means DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("GRAVEWALK_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GRAVEWALK_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv("GRAVEWALK_HALF_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRAVEWALK_HALF_SIZE: %w", err)
		}
		c.HalfSize = n
	}
	if v, ok := os.LookupEnv("GRAVEWALK_TICK_MS"); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRAVEWALK_TICK_MS: %w", err)
		}
		c.Tick = time.Duration(ms) * time.Millisecond
	}
	if v, ok := os.LookupEnv("GRAVEWALK_TELEMETRY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GRAVEWALK_TELEMETRY: %w", err)
		}
		c.Telemetry = b
	}
	if v, ok := os.LookupEnv("GRAVEWALK_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.HalfSize < 2 {
		return fmt.Errorf("halfSize must be at least 2, got %d", c.HalfSize)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	return nil
}

// Game returns the session settings.
func (c Config) Game() game.Config {
	return game.Config{
		Seed:     c.Seed,
		HalfSize: c.HalfSize,
	}
}
