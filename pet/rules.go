package pet

import (
	"github.com/pkg/errors"
)

// Attribute bounds
const (
	MinStat = 0
	MaxStat = 100
)

// ErrInvalidRules is returned when a rule set carries a negative magnitude
var ErrInvalidRules = errors.New("invalid pet rules")

// Stats is a snapshot of the bounded attributes
type Stats struct {
	Hunger int `toml:"hunger"`
	Energy int `toml:"energy"`
	Mood   int `toml:"mood"`
}

// DefaultStats returns the mid-range starting values
func DefaultStats() Stats {
	return Stats{Hunger: 50, Energy: 50, Mood: 50}
}

// Rules holds the fixed amounts applied by each mutator
// All fields are magnitudes; the sign is implied by the mutator
type Rules struct {
	FeedHunger  int `toml:"feed_hunger"`
	PlayMood    int `toml:"play_mood"`
	PlayEnergy  int `toml:"play_energy"`
	SleepEnergy int `toml:"sleep_energy"`
	DecayHunger int `toml:"decay_hunger"`
	DecayEnergy int `toml:"decay_energy"`
	DecayMood   int `toml:"decay_mood"`
}

// DefaultRules returns the stock rule set
func DefaultRules() Rules {
	return Rules{
		FeedHunger:  20,
		PlayMood:    15,
		PlayEnergy:  10,
		SleepEnergy: 25,
		DecayHunger: 5,
		DecayEnergy: 3,
		DecayMood:   4,
	}
}

// Validate rejects negative magnitudes
func (r Rules) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"feed_hunger", r.FeedHunger},
		{"play_mood", r.PlayMood},
		{"play_energy", r.PlayEnergy},
		{"sleep_energy", r.SleepEnergy},
		{"decay_hunger", r.DecayHunger},
		{"decay_energy", r.DecayEnergy},
		{"decay_mood", r.DecayMood},
	}
	for _, f := range fields {
		if f.value < 0 {
			return errors.Wrapf(ErrInvalidRules, "%s must not be negative, got %d", f.name, f.value)
		}
	}
	return nil
}

// Clamp returns a copy with every attribute forced into [MinStat, MaxStat]
func (s Stats) Clamp() Stats {
	return Stats{
		Hunger: clamp(s.Hunger),
		Energy: clamp(s.Energy),
		Mood:   clamp(s.Mood),
	}
}

func clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
