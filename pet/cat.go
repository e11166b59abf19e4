package pet

// Cat is the pet: three bounded attributes and a terminal aliveness flag
// Not safe for concurrent use; the game loop owns it
type Cat struct {
	stats Stats
	rules Rules
	alive bool
}

// NewCat creates a living cat with the given starting stats, clamped to bounds
// Death is only evaluated by mutators, so a cat created at zero dies on its first decay
func NewCat(start Stats, rules Rules) *Cat {
	return &Cat{
		stats: start.Clamp(),
		rules: rules,
		alive: true,
	}
}

// NewDefaultCat creates a cat with stock stats and rules
func NewDefaultCat() *Cat {
	return NewCat(DefaultStats(), DefaultRules())
}

// Feed raises hunger satiation
func (c *Cat) Feed() {
	c.apply(c.rules.FeedHunger, 0, 0)
}

// Play raises mood at the cost of energy
func (c *Cat) Play() {
	c.apply(0, -c.rules.PlayEnergy, c.rules.PlayMood)
}

// Sleep restores energy
func (c *Cat) Sleep() {
	c.apply(0, c.rules.SleepEnergy, 0)
}

// Ignore applies one tick of passive decay
func (c *Cat) Ignore() {
	c.apply(-c.rules.DecayHunger, -c.rules.DecayEnergy, -c.rules.DecayMood)
}

// apply is the single mutation path: no-op when dead, clamp, then death check
func (c *Cat) apply(dHunger, dEnergy, dMood int) {
	if !c.alive {
		return
	}

	c.stats = Stats{
		Hunger: c.stats.Hunger + dHunger,
		Energy: c.stats.Energy + dEnergy,
		Mood:   c.stats.Mood + dMood,
	}.Clamp()

	// Starvation or exhaustion; mood at zero is survivable
	if c.stats.Hunger <= MinStat || c.stats.Energy <= MinStat {
		c.alive = false
	}
}

// IsAlive reports whether the cat is still alive, false is permanent
func (c *Cat) IsAlive() bool {
	return c.alive
}

func (c *Cat) Hunger() int { return c.stats.Hunger }
func (c *Cat) Energy() int { return c.stats.Energy }
func (c *Cat) Mood() int   { return c.stats.Mood }

// Stats returns a snapshot of the current attributes
func (c *Cat) Stats() Stats {
	return c.stats
}
