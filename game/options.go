package game

import (
	"time"

	"github.com/lixenwraith/catagotchi/asset"
	"github.com/lixenwraith/catagotchi/config"
	"github.com/lixenwraith/catagotchi/engine"
	"github.com/lixenwraith/catagotchi/input"
	"github.com/lixenwraith/catagotchi/pet"
	"github.com/lixenwraith/catagotchi/render"
	"github.com/lixenwraith/catagotchi/status"
)

type options struct {
	start         pet.Stats
	rules         pet.Rules
	tickInterval  time.Duration
	frameInterval time.Duration
	holdWindow    time.Duration
	feedKey       rune
	playKey       rune
	sleepKey      rune
	layout        render.Layout
	imagePath     string
	background    *asset.Image
	clock         engine.TimeProvider
	sounds        Sounds
	muted         bool
	metrics       *status.Registry
}

func defaultOptions() options {
	return options{
		start:         pet.DefaultStats(),
		rules:         pet.DefaultRules(),
		tickInterval:  3000 * time.Millisecond,
		frameInterval: 16 * time.Millisecond,
		holdWindow:    600 * time.Millisecond,
		feedKey:       input.KeyFeed,
		playKey:       input.KeyPlay,
		sleepKey:      input.KeySleep,
		layout:        render.DefaultLayout(),
		clock:         engine.NewMonotonicTimeProvider(),
		sounds:        &silentSounds{},
	}
}

// Option customizes the controller
type Option func(*options)

// WithConfig applies a validated config
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.start = cfg.Pet.Start
		o.rules = cfg.Pet.Rules
		o.tickInterval = cfg.Game.TickInterval
		o.frameInterval = cfg.Game.FrameInterval
		o.holdWindow = cfg.Input.HoldWindow
		o.feedKey, o.playKey, o.sleepKey = cfg.Keys()
		o.layout = cfg.Render.Layout
		o.imagePath = cfg.Render.Image
	}
}

// WithStats sets the starting stats
func WithStats(s pet.Stats) Option {
	return func(o *options) { o.start = s }
}

// WithRules sets the mutator amounts
func WithRules(r pet.Rules) Option {
	return func(o *options) { o.rules = r }
}

// WithTickInterval sets the tick cadence
func WithTickInterval(d time.Duration) Option {
	return func(o *options) { o.tickInterval = d }
}

// WithClock replaces the real clock
func WithClock(c engine.TimeProvider) Option {
	return func(o *options) { o.clock = c }
}

// WithBackground uses an already loaded image instead of reading a file
func WithBackground(img *asset.Image) Option {
	return func(o *options) { o.background = img }
}

// WithSounds enables sound effects; a nil s keeps the silent fallback in step with muted
func WithSounds(s Sounds, muted bool) Option {
	return func(o *options) {
		if s != nil {
			o.sounds = s
		} else {
			o.sounds = &silentSounds{muted: muted}
		}
		o.muted = muted
	}
}

// WithMetrics shares a registry with the caller
func WithMetrics(reg *status.Registry) Option {
	return func(o *options) { o.metrics = reg }
}
