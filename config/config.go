// Package config loads runtime settings from a YAML file, a .env file and TROLL_* environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/troll-dodge/constants"
	"github.com/lixenwraith/troll-dodge/engine"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid marks a config value outside its allowed range
	ErrInvalid = errors.New("config: invalid value")
	// ErrRead marks an unreadable or malformed config file
	ErrRead = errors.New("config: cannot read file")
)

// Minimum play area; the wall relocation needs room for its 200px/100px margins
const (
	minPlayWidth  = 300
	minPlayHeight = 200
)

// Config holds runtime settings
type Config struct {
	Difficulty    string        `yaml:"difficulty"`
	Seed          int64         `yaml:"seed"` // 0 seeds from the clock
	Debug         bool          `yaml:"debug"`
	LogDir        string        `yaml:"log_dir"`
	FrameInterval time.Duration `yaml:"frame_interval"`

	Audio    AudioConfig    `yaml:"audio"`
	PlayArea PlayAreaConfig `yaml:"play_area"`
}

// AudioConfig controls the sound manager
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	Volume  int  `yaml:"volume"` // 0-100
}

// PlayAreaConfig is the logical play area in pixels
type PlayAreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Difficulty:    "normal",
		LogDir:        "logs",
		FrameInterval: constants.FrameUpdateInterval,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  50,
		},
		PlayArea: PlayAreaConfig{
			Width:  constants.DefaultPlayWidth,
			Height: constants.DefaultPlayHeight,
		},
	}
}

// Load builds the config: defaults, then .env, then the YAML file at path (optional when empty),
// then TROLL_* environment overrides, then validation
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrRead, err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from TROLL_* variables
func (c *Config) applyEnv() error {
	if v := os.Getenv("TROLL_DIFFICULTY"); v != "" {
		c.Difficulty = v
	}
	if v := os.Getenv("TROLL_LOG_DIR"); v != "" {
		c.LogDir = v
	}
	if v := os.Getenv("TROLL_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TROLL_SEED=%q", ErrInvalid, v)
		}
		c.Seed = n
	}
	if v := os.Getenv("TROLL_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TROLL_DEBUG=%q", ErrInvalid, v)
		}
		c.Debug = b
	}
	if v := os.Getenv("TROLL_AUDIO"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TROLL_AUDIO=%q", ErrInvalid, v)
		}
		c.Audio.Enabled = b
	}
	if v := os.Getenv("TROLL_VOLUME"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: TROLL_VOLUME=%q", ErrInvalid, v)
		}
		c.Audio.Volume = n
	}
	if v := os.Getenv("TROLL_FRAME_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: TROLL_FRAME_INTERVAL=%q", ErrInvalid, v)
		}
		c.FrameInterval = d
	}
	return nil
}

// Validate checks ranges
func (c *Config) Validate() error {
	if _, err := engine.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("%w: volume %d outside 0-100", ErrInvalid, c.Audio.Volume)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval %s", ErrInvalid, c.FrameInterval)
	}
	if c.PlayArea.Width < minPlayWidth || c.PlayArea.Height < minPlayHeight {
		return fmt.Errorf("%w: play area %vx%v below %dx%d", ErrInvalid,
			c.PlayArea.Width, c.PlayArea.Height, minPlayWidth, minPlayHeight)
	}
	return nil
}

// DifficultyLevel returns the parsed difficulty; call after Validate
func (c *Config) DifficultyLevel() engine.Difficulty {
	d, _ := engine.ParseDifficulty(c.Difficulty)
	return d
}
