// Package config loads game settings from an optional TOML file with
// environment overrides on top of built-in defaults
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/catagotchi/pet"
	"github.com/lixenwraith/catagotchi/render"
)

// DefaultPath is read when no -config flag is given
const DefaultPath = "catagotchi.toml"

// Environment overrides
const (
	EnvTickInterval = "CATAGOTCHI_TICK_INTERVAL"
	EnvAudioEnabled = "CATAGOTCHI_AUDIO_ENABLED"
	EnvVolume       = "CATAGOTCHI_VOLUME"
	EnvImage        = "CATAGOTCHI_IMAGE"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full settings tree
type Config struct {
	Game   GameConfig   `toml:"game"`
	Pet    PetConfig    `toml:"pet"`
	Input  InputConfig  `toml:"input"`
	Render RenderConfig `toml:"render"`
	Audio  AudioConfig  `toml:"audio"`

	// Source records where the config came from, for logging
	Source string `toml:"-"`
}

// GameConfig holds loop timing
type GameConfig struct {
	TickInterval  time.Duration `toml:"tick_interval"`
	FrameInterval time.Duration `toml:"frame_interval"`
}

// PetConfig holds starting stats and mutator amounts
type PetConfig struct {
	Start pet.Stats `toml:"start"`
	Rules pet.Rules `toml:"rules"`
}

// InputConfig holds the pet key bindings
type InputConfig struct {
	FeedKey    string        `toml:"feed_key"`
	PlayKey    string        `toml:"play_key"`
	SleepKey   string        `toml:"sleep_key"`
	HoldWindow time.Duration `toml:"hold_window"`
}

// RenderConfig holds the background path and screen layout
type RenderConfig struct {
	Image  string        `toml:"image"`
	Layout render.Layout `toml:"layout"`
}

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Game: GameConfig{
			TickInterval:  3000 * time.Millisecond,
			FrameInterval: 16 * time.Millisecond,
		},
		Pet: PetConfig{
			Start: pet.DefaultStats(),
			Rules: pet.DefaultRules(),
		},
		Input: InputConfig{
			FeedKey:    "f",
			PlayKey:    "p",
			SleepKey:   "s",
			HoldWindow: 600 * time.Millisecond,
		},
		Render: RenderConfig{
			Image:  "assets/cat.png",
			Layout: render.DefaultLayout(),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Source: "defaults",
	}
}

// Load reads path over the defaults; a missing file is not an error
// Keys absent from the file keep their default values
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "stat config %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: ignoring unknown key %q in %s", key.String(), path)
	}

	cfg.Source = path
	return cfg, nil
}

// ApplyEnv overrides settings from the environment via lookup (os.LookupEnv in production)
// Malformed values are logged and skipped
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvTickInterval); ok {
		if d, err := time.ParseDuration(v); err == nil {
			c.Game.TickInterval = d
		} else {
			log.Printf("config: bad %s=%q: %v", EnvTickInterval, v, err)
		}
	}

	if v, ok := lookup(EnvAudioEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			log.Printf("config: bad %s=%q: %v", EnvAudioEnabled, v, err)
		}
	}

	// Volume is given as 0-100
	if v, ok := lookup(EnvVolume); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = float64(n) / 100.0
			if c.Audio.Volume < 0 {
				c.Audio.Volume = 0
			}
			if c.Audio.Volume > 1 {
				c.Audio.Volume = 1
			}
		} else {
			log.Printf("config: bad %s=%q: %v", EnvVolume, v, err)
		}
	}

	if v, ok := lookup(EnvImage); ok && v != "" {
		c.Render.Image = v
	}
}

// Validate checks every setting the game depends on
func (c *Config) Validate() error {
	if c.Game.TickInterval <= 0 {
		return errors.Wrap(ErrInvalidConfig, "game.tick_interval must be positive")
	}
	if c.Game.FrameInterval <= 0 {
		return errors.Wrap(ErrInvalidConfig, "game.frame_interval must be positive")
	}
	if c.Input.HoldWindow <= 0 {
		return errors.Wrap(ErrInvalidConfig, "input.hold_window must be positive")
	}
	if err := c.Pet.Rules.Validate(); err != nil {
		// Both sentinels stay matchable with errors.Is
		return fmt.Errorf("%w: pet rules: %w", ErrInvalidConfig, err)
	}

	seen := make(map[rune]string, 3)
	for _, k := range []struct{ name, value string }{
		{"input.feed_key", c.Input.FeedKey},
		{"input.play_key", c.Input.PlayKey},
		{"input.sleep_key", c.Input.SleepKey},
	} {
		if utf8.RuneCountInString(k.value) != 1 {
			return errors.Wrapf(ErrInvalidConfig, "%s must be a single character, got %q", k.name, k.value)
		}
		r := []rune(strings.ToLower(k.value))[0]
		if r == 'q' {
			return errors.Wrapf(ErrInvalidConfig, "%s conflicts with quit", k.name)
		}
		if other, dup := seen[r]; dup {
			return errors.Wrapf(ErrInvalidConfig, "%s duplicates %s", k.name, other)
		}
		seen[r] = k.name
	}

	l := c.Render.Layout
	if l.ImageW < 0 || l.ImageH < 0 {
		return errors.Wrap(ErrInvalidConfig, "render.layout image size must not be negative")
	}
	return nil
}

// Keys returns the feed, play and sleep keys; call after Validate
func (c *Config) Keys() (feed, play, sleep rune) {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(strings.ToLower(s))
		return r
	}
	return first(c.Input.FeedKey), first(c.Input.PlayKey), first(c.Input.SleepKey)
}
