package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. SHAPEGRID_DIM.
const Prefix = "SHAPEGRID"

type Config struct {
	Dim        int           `envconfig:"DIM" default:"3"`
	Width      int           `envconfig:"WIDTH" default:"800"`
	Height     int           `envconfig:"HEIGHT" default:"800"`
	Title      string        `envconfig:"TITLE" default:"Shape Grid"`
	Tick       time.Duration `envconfig:"TICK" default:"20ms"`
	BoardScale float64       `envconfig:"BOARD_SCALE" default:"0.75"`
	LogLevel   string        `envconfig:"LOG_LEVEL" default:"info"`
	Debug      bool          `envconfig:"DEBUG" default:"false"`

	ShowFPS       bool   `envconfig:"SHOW_FPS" default:"false"`
	ScreenshotDir string `envconfig:"SCREENSHOT_DIR" default:"screenshots"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Dim < 1:
		return fmt.Errorf("config: DIM must be at least 1, got %d", c.Dim)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	case c.Tick <= 0:
		return fmt.Errorf("config: TICK must be positive, got %v", c.Tick)
	case c.BoardScale <= 0 || c.BoardScale > 1:
		return fmt.Errorf("config: BOARD_SCALE must be in (0, 1], got %v", c.BoardScale)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. Debug forces slog.LevelDebug.
func (c *Config) Level() (slog.Level, error) {
	if c.Debug {
		return slog.LevelDebug, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return l, nil
}
