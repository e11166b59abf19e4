package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100
	feedSoundDurationMs     = 90
	feedSoundGapMs          = 40
	playSoundDurationMs     = 350
	sleepSoundDurationMs    = 900
	deathSoundDurationMs    = 1600

	// minVolume below which the master gain is treated as silence
	minVolume = 0.01
)

// SoundManager plays the pet's sound effects through one shared mixer
// Every method is a safe no-op before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume in [0,1]
func NewSoundManager(volume float64) *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
	}
	sm.master = &effects.Volume{Streamer: sm.mixer, Base: 2}
	sm.setVolumeLocked(volume)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup silences everything; beep has no speaker close, clearing the mixer is enough
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// SetMuted toggles output without dropping queued sounds
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	sm.applyGain()
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// ToggleMute flips the mute state and returns the new one
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	sm.applyGain()
	return sm.muted
}

func (sm *SoundManager) setVolumeLocked(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	sm.volume = volume
	sm.applyGain()
}

// applyGain converts linear volume to the log2 gain effects.Volume expects
func (sm *SoundManager) applyGain() {
	silent := sm.muted || sm.volume < minVolume
	gain := 0.0
	if !silent {
		gain = math.Log2(sm.volume)
	}

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = silent
	sm.master.Volume = gain
}

// play queues s on the mixer
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayFeed plays a two-note munch
func (sm *SoundManager) PlayFeed() {
	sm.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*feedSoundDurationMs), NewChirpGenerator(sampleRate, 660, 700)),
		beep.Silence(sampleRate.N(time.Millisecond*feedSoundGapMs)),
		beep.Take(sampleRate.N(time.Millisecond*feedSoundDurationMs), NewChirpGenerator(sampleRate, 880, 940)),
	))
}

// PlayPlay plays a rising meow-like sweep
func (sm *SoundManager) PlayPlay() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*playSoundDurationMs), NewChirpGenerator(sampleRate, 420, 980)))
}

// PlaySleep plays a low purr
func (sm *SoundManager) PlaySleep() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*sleepSoundDurationMs), NewPurrGenerator(sampleRate, 55)))
}

// PlayDeath plays a falling toll
func (sm *SoundManager) PlayDeath() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*deathSoundDurationMs), NewTollGenerator(sampleRate, 330)))
}
