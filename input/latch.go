package input

import "time"

// Latch adapts press-only terminal input to the KeyListener's down/up model
// Terminals report presses and autorepeat but never releases, so each press
// holds the key down for a fixed window and Release lets it go afterwards
type Latch struct {
	listener   *KeyListener
	holdWindow time.Duration
	deadlines  map[rune]time.Time
}

// NewLatch creates a latch feeding kl
func NewLatch(kl *KeyListener, holdWindow time.Duration) *Latch {
	return &Latch{
		listener:   kl,
		holdWindow: holdWindow,
		deadlines:  make(map[rune]time.Time),
	}
}

// Press marks code down and (re)arms its release deadline
// Returns false for unmonitored codes
func (l *Latch) Press(code rune, now time.Time) bool {
	if !l.listener.Monitors(code) {
		return false
	}
	code = fold(code)
	l.listener.KeyDown(code)
	l.deadlines[code] = now.Add(l.holdWindow)
	return true
}

// Release synthesizes key-up for every key whose window has elapsed
func (l *Latch) Release(now time.Time) {
	for code, deadline := range l.deadlines {
		if !now.Before(deadline) {
			l.listener.KeyUp(code)
			delete(l.deadlines, code)
		}
	}
}

// HoldWindow returns the configured hold duration
func (l *Latch) HoldWindow() time.Duration {
	return l.holdWindow
}
