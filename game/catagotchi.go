// Package game hosts the controller that owns the pet, its input and its
// screen, and drives the throttled tick loop off the frame signal
package game

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/catagotchi/asset"
	"github.com/lixenwraith/catagotchi/engine"
	"github.com/lixenwraith/catagotchi/input"
	"github.com/lixenwraith/catagotchi/pet"
	"github.com/lixenwraith/catagotchi/render"
	"github.com/lixenwraith/catagotchi/status"
)

// ErrNoSurface is returned when the controller is built without a drawing surface
var ErrNoSurface = errors.New("no drawing surface")

// Sounds is the subset of the sound manager the controller triggers
type Sounds interface {
	PlayFeed()
	PlayPlay()
	PlaySleep()
	PlayDeath()
	ToggleMute() bool
}

// silentSounds stands in when audio is unavailable; mute still toggles for the HUD
type silentSounds struct {
	muted bool
}

func (s *silentSounds) PlayFeed()  {}
func (s *silentSounds) PlayPlay()  {}
func (s *silentSounds) PlaySleep() {}
func (s *silentSounds) PlayDeath() {}

func (s *silentSounds) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Catagotchi is the controller: surface, cat, key state and tick timing
// All state is owned by the goroutine calling Run, OnFrame or GameTick
type Catagotchi struct {
	surface render.Surface
	canvas  *render.Canvas
	scene   *render.Scene

	cat      *pet.Cat
	keys     *input.KeyListener
	latch    *input.Latch
	keyTable *input.KeyTable
	feedKey  rune
	playKey  rune
	sleepKey rune

	clock    engine.TimeProvider
	frames   *engine.FrameScheduler
	throttle *engine.Throttle

	sounds Sounds
	muted  bool
	ticks  uint64

	metrics  *status.Registry
	mTicks   *atomic.Int64
	mFrames  *atomic.Int64
	mPresses *atomic.Int64
	mResizes *atomic.Int64
	mAlive   *atomic.Bool
	mMuted   *atomic.Bool
}

// New builds the controller, starts the background load and schedules the first frame
func New(surface render.Surface, opts ...Option) (*Catagotchi, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.rules.Validate(); err != nil {
		return nil, errors.Wrap(err, "pet rules")
	}

	canvas := render.NewCanvas(surface)
	background := o.background
	if background == nil && o.imagePath != "" {
		// Fire and forget; the scene draws nothing for it until ready
		background = asset.LoadImage(o.imagePath, o.layout.ImageW, o.layout.ImageH)
	}

	keys := input.NewKeyListener(o.feedKey, o.playKey, o.sleepKey)
	g := &Catagotchi{
		surface:  surface,
		canvas:   canvas,
		scene:    render.NewScene(canvas, background, o.layout),
		cat:      pet.NewCat(o.start, o.rules),
		keys:     keys,
		latch:    input.NewLatch(keys, o.holdWindow),
		keyTable: input.DefaultKeyTable(),
		feedKey:  o.feedKey,
		playKey:  o.playKey,
		sleepKey: o.sleepKey,
		clock:    o.clock,
		frames:   engine.NewFrameScheduler(o.clock, o.frameInterval),
		throttle: engine.NewThrottle(o.tickInterval),
		sounds:   o.sounds,
		muted:    o.muted,
	}
	g.scene.SetKeyHints(o.feedKey, o.playKey, o.sleepKey)
	g.bindMetrics(o.metrics)

	g.frames.RequestFrame(g.OnFrame)
	log.Printf("game: started, %s stats=%+v", g.Timing(), g.cat.Stats())
	return g, nil
}

// OnFrame is the frame callback: tick when an interval has elapsed, then re-register
func (g *Catagotchi) OnFrame(ts time.Duration) {
	g.mFrames.Add(1)
	g.latch.Release(g.clock.Now())

	if g.throttle.Due(ts) {
		g.GameTick()
	}

	g.frames.RequestFrame(g.OnFrame)
}

// GameTick applies decay plus every held action, then redraws
// Held keys apply independently in feed, play, sleep order
// A dead cat makes the tick a no-op
func (g *Catagotchi) GameTick() {
	if !g.cat.IsAlive() {
		return
	}
	g.ticks++
	g.mTicks.Add(1)

	g.cat.Ignore()

	if g.keys.IsKeyDown(g.feedKey) {
		g.cat.Feed()
		g.sounds.PlayFeed()
	}
	if g.keys.IsKeyDown(g.playKey) {
		g.cat.Play()
		g.sounds.PlayPlay()
	}
	if g.keys.IsKeyDown(g.sleepKey) {
		g.cat.Sleep()
		g.sounds.PlaySleep()
	}

	if !g.cat.IsAlive() {
		g.mAlive.Store(false)
		g.sounds.PlayDeath()
		log.Printf("game: cat died on tick %d with %+v", g.ticks, g.cat.Stats())
	} else {
		log.Printf("game: tick %d held=%q stats=%+v", g.ticks, g.keys.Held(), g.cat.Stats())
	}

	g.Render()
}

// Render draws the current state
func (g *Catagotchi) Render() {
	v := render.ViewOf(g.cat)
	v.Held = g.keys.Held()
	v.Muted = g.muted
	v.Ticks = g.ticks
	g.scene.Draw(v)
}

// HandleEvent applies one terminal event; returns false when the player quits
func (g *Catagotchi) HandleEvent(ev tcell.Event) bool {
	intent := g.keyTable.Translate(ev, g.keys)
	return g.apply(intent)
}

// PressKey feeds a printable key as if typed; returns false on quit
func (g *Catagotchi) PressKey(r rune) bool {
	return g.apply(g.keyTable.TranslateRune(r, g.keys))
}

func (g *Catagotchi) apply(intent input.Intent) bool {
	switch intent.Type {
	case input.IntentQuit:
		log.Printf("game: quit after %d ticks, %s", g.ticks, g.metrics.Summary())
		return false
	case input.IntentPetKey:
		g.mPresses.Add(1)
		g.latch.Press(intent.Key, g.clock.Now())
	case input.IntentToggleMute:
		g.muted = g.sounds.ToggleMute()
		g.mMuted.Store(g.muted)
		g.Render()
	case input.IntentResize:
		g.resize()
	case input.IntentRedraw:
		g.sync()
	}
	return true
}

func (g *Catagotchi) resize() {
	g.mResizes.Add(1)
	g.sync()
	g.canvas.Resize()
	g.Render()
}

func (g *Catagotchi) sync() {
	if s, ok := g.surface.(interface{ Sync() }); ok {
		s.Sync()
	}
}

// Run drives the loop until quit or ctx is done
// events carries terminal input from the poller goroutine; a closed channel ends the loop
func (g *Catagotchi) Run(ctx context.Context, events <-chan tcell.Event) error {
	g.frames.Start()
	defer g.frames.Stop()

	g.Render()

	for {
		select {
		case <-ctx.Done():
			log.Printf("game: stopped, %s", g.metrics.Summary())
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				return nil
			}

		case <-g.frames.C():
			g.frames.Dispatch()
		}
	}
}

func (g *Catagotchi) bindMetrics(reg *status.Registry) {
	if reg == nil {
		reg = status.NewRegistry()
	}
	g.metrics = reg
	g.mTicks = reg.Ints.Get(status.MetricTicks)
	g.mFrames = reg.Ints.Get(status.MetricFrames)
	g.mPresses = reg.Ints.Get(status.MetricPresses)
	g.mResizes = reg.Ints.Get(status.MetricResizes)
	g.mAlive = reg.Bools.Get(status.MetricAlive)
	g.mMuted = reg.Bools.Get(status.MetricMuted)

	g.mAlive.Store(g.cat.IsAlive())
	g.mMuted.Store(g.muted)
}

// Metrics returns the runtime counters
func (g *Catagotchi) Metrics() *status.Registry {
	return g.metrics
}

// Cat exposes the pet for inspection
func (g *Catagotchi) Cat() *pet.Cat {
	return g.cat
}

// Keys exposes the key listener
func (g *Catagotchi) Keys() *input.KeyListener {
	return g.keys
}

// Frames exposes the frame scheduler, used to drive frames by hand
func (g *Catagotchi) Frames() *engine.FrameScheduler {
	return g.frames
}

// Ticks returns the number of executed ticks
func (g *Catagotchi) Ticks() uint64 {
	return g.ticks
}

// Timing describes the active tick, frame and key hold intervals
func (g *Catagotchi) Timing() string {
	return fmt.Sprintf("tick=%v frame=%v hold=%v",
		g.throttle.Interval(), g.frames.Interval(), g.latch.HoldWindow())
}

// LastTick returns the frame timestamp of the last executed tick
func (g *Catagotchi) LastTick() time.Duration {
	return g.throttle.Last()
}
