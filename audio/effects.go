package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps linearly from one frequency to another over chirpSweep
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	sweep    int
	pos      int
	phase    float64
}

// chirpSweep is the time to go from the start to the end frequency
const chirpSweep = 300 * time.Millisecond

// NewChirpGenerator creates a sweep generator
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		sweep: sr.N(chirpSweep),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.sweep), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the sweep click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// 10ms attack
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.01, 1.0)
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// PurrGenerator is a low rumble amplitude-modulated at a breathing rate
type PurrGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// purrRate is the breathing modulation in Hz
const purrRate = 2.5

// NewPurrGenerator creates a purr generator at base frequency freq
func NewPurrGenerator(sr beep.SampleRate, freq float64) *PurrGenerator {
	return &PurrGenerator{sr: sr, freq: freq}
}

func (g *PurrGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus harmonics for a rough texture
		sample := 0.5 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.12 * math.Sin(2*math.Pi*g.freq*3*t)

		breath := 0.5 + 0.5*math.Sin(2*math.Pi*purrRate*t)
		sample *= 0.3 * breath

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PurrGenerator) Err() error {
	return nil
}

// TollGenerator is a bell-like tone that falls in pitch and decays exponentially
type TollGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	phase float64
}

// NewTollGenerator creates a toll starting at freq
func NewTollGenerator(sr beep.SampleRate, freq float64) *TollGenerator {
	return &TollGenerator{sr: sr, freq: freq}
}

func (g *TollGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch drops an octave per second
		freq := g.freq * math.Pow(0.5, t)
		// Unwrapped so the inharmonic partial stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		decay := math.Exp(-2.5 * t)
		sample := 0.35 * decay * (math.Sin(g.phase) + 0.3*math.Sin(2.76*g.phase))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TollGenerator) Err() error {
	return nil
}
