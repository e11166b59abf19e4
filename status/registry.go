// Package status keeps lightweight runtime counters for the debug log
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names
const (
	MetricTicks   = "game.ticks"
	MetricFrames  = "game.frames"
	MetricPresses = "input.presses"
	MetricResizes = "screen.resizes"
	MetricAlive   = "pet.alive"
	MetricMuted   = "audio.muted"
)

const summarySeparator = " "

// Registry is the metrics facade
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// Summary renders every metric as key=value in key order, ints first
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	return strings.Join(parts, summarySeparator)
}
