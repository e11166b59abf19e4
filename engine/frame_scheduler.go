package engine

import "time"

// FrameCallback receives the frame timestamp as an offset from scheduler start
type FrameCallback func(ts time.Duration)

// FrameScheduler is the display-refresh signal: callbacks are one-shot and must
// re-register every frame to keep receiving frames
// Dispatch is meant to be called from a single loop goroutine, which keeps
// delivery non-reentrant
type FrameScheduler struct {
	clock    TimeProvider
	start    time.Time
	interval time.Duration
	ticker   *time.Ticker
	pending  FrameCallback
	lastTS   time.Duration
	frames   uint64
}

// NewFrameScheduler creates a scheduler ticking every interval
// The ticker is not started until Start
func NewFrameScheduler(clock TimeProvider, interval time.Duration) *FrameScheduler {
	return &FrameScheduler{
		clock:    clock,
		start:    clock.Now(),
		interval: interval,
	}
}

// Start begins emitting frame signals on C
func (fs *FrameScheduler) Start() {
	if fs.ticker == nil {
		fs.ticker = time.NewTicker(fs.interval)
	}
}

// Stop halts the frame signal
func (fs *FrameScheduler) Stop() {
	if fs.ticker != nil {
		fs.ticker.Stop()
		fs.ticker = nil
	}
}

// C returns the frame signal channel, nil before Start
func (fs *FrameScheduler) C() <-chan time.Time {
	if fs.ticker == nil {
		return nil
	}
	return fs.ticker.C
}

// RequestFrame registers cb for the next frame, replacing any pending callback
func (fs *FrameScheduler) RequestFrame(cb FrameCallback) {
	fs.pending = cb
}

// Pending reports whether a callback is registered
func (fs *FrameScheduler) Pending() bool {
	return fs.pending != nil
}

// Dispatch delivers one frame to the pending callback, if any
// The callback is cleared before it runs so it may re-register itself
func (fs *FrameScheduler) Dispatch() bool {
	cb := fs.pending
	if cb == nil {
		return false
	}
	fs.pending = nil

	ts := fs.clock.Now().Sub(fs.start)
	// Monotonic: a clock step backward repeats the previous timestamp
	if ts < fs.lastTS {
		ts = fs.lastTS
	}
	fs.lastTS = ts
	fs.frames++

	cb(ts)
	return true
}

// Frames returns the number of dispatched frames
func (fs *FrameScheduler) Frames() uint64 {
	return fs.frames
}

// Interval returns the frame cadence
func (fs *FrameScheduler) Interval() time.Duration {
	return fs.interval
}
