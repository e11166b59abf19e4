package input

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestKeyListenerInitiallyUp(t *testing.T) {
	kl := NewKeyListener(KeyFeed, KeyPlay, KeySleep)

	for _, code := range []rune{'f', 'p', 's', 'x', 'F'} {
		if kl.IsKeyDown(code) {
			t.Errorf("Expected %q up before any event", code)
		}
	}
}

func TestKeyListenerDownUp(t *testing.T) {
	kl := NewKeyListener(KeyFeed, KeyPlay, KeySleep)

	kl.KeyDown('f')
	if !kl.IsKeyDown('f') {
		t.Fatal("Expected f down after key-down")
	}
	if kl.IsKeyDown('p') || kl.IsKeyDown('s') {
		t.Error("Unrelated keys must not be affected")
	}

	// Autorepeat
	kl.KeyDown('f')
	kl.KeyDown('f')
	if !kl.IsKeyDown('f') {
		t.Error("Repeated key-down must keep the key down")
	}

	kl.KeyUp('f')
	if kl.IsKeyDown('f') {
		t.Error("Expected f up after key-up")
	}
}

func TestKeyListenerCaseFolding(t *testing.T) {
	kl := NewKeyListener('F', 'p')

	kl.KeyDown('f')
	if !kl.IsKeyDown('F') {
		t.Error("Expected F and f to be the same key")
	}
	kl.KeyUp('F')
	if kl.IsKeyDown('f') {
		t.Error("Expected key-up on F to release f")
	}
}

func TestKeyListenerIgnoresUnmonitored(t *testing.T) {
	kl := NewKeyListener(KeyFeed)

	kl.KeyDown('z')
	if kl.IsKeyDown('z') {
		t.Error("Unmonitored codes always report false")
	}
	if kl.Monitors('z') {
		t.Error("z must not be monitored")
	}
}

func TestKeyListenerHeldOrder(t *testing.T) {
	kl := NewKeyListener(KeyFeed, KeyPlay, KeySleep, KeyFeed)

	kl.KeyDown('s')
	kl.KeyDown('f')

	want := []rune{'f', 's'}
	if got := kl.Held(); !reflect.DeepEqual(got, want) {
		t.Errorf("Held() = %q, want %q", got, want)
	}

	kl.Reset()
	if got := kl.Held(); len(got) != 0 {
		t.Errorf("Expected no held keys after Reset, got %q", got)
	}
}

func TestLatchHoldsUntilWindowElapses(t *testing.T) {
	kl := NewKeyListener(KeyFeed, KeyPlay)
	latch := NewLatch(kl, 3*time.Second)
	start := time.Unix(1000, 0)

	if !latch.Press('f', start) {
		t.Fatal("Expected f to be accepted")
	}
	if latch.Press('x', start) {
		t.Error("Expected unmonitored x to be rejected")
	}

	latch.Release(start.Add(2999 * time.Millisecond))
	if !kl.IsKeyDown('f') {
		t.Fatal("Expected f still held inside the window")
	}

	latch.Release(start.Add(3 * time.Second))
	if kl.IsKeyDown('f') {
		t.Error("Expected f released once the window elapsed")
	}
}

func TestLatchHoldWindow(t *testing.T) {
	latch := NewLatch(NewKeyListener(KeyFeed), 600*time.Millisecond)
	if got := latch.HoldWindow(); got != 600*time.Millisecond {
		t.Errorf("HoldWindow() = %v, want 600ms", got)
	}
}

func TestLatchAutorepeatRearms(t *testing.T) {
	kl := NewKeyListener(KeyPlay)
	latch := NewLatch(kl, time.Second)
	start := time.Unix(0, 0)

	latch.Press('p', start)
	latch.Press('P', start.Add(800*time.Millisecond))

	latch.Release(start.Add(1200 * time.Millisecond))
	if !kl.IsKeyDown('p') {
		t.Error("Expected autorepeat to extend the hold")
	}

	latch.Release(start.Add(1800 * time.Millisecond))
	if kl.IsKeyDown('p') {
		t.Error("Expected release after the re-armed window")
	}
}

func TestKeyTableTranslateRune(t *testing.T) {
	kt := DefaultKeyTable()
	kl := NewKeyListener(KeyFeed, KeyPlay, KeySleep)

	tests := []struct {
		name string
		r    rune
		want Intent
	}{
		{"feed", 'f', Intent{Type: IntentPetKey, Key: 'f'}},
		{"sleep upper", 'S', Intent{Type: IntentPetKey, Key: 's'}},
		{"quit", 'q', Intent{Type: IntentQuit, Key: 'q'}},
		{"unbound", 'z', Intent{Type: IntentNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.TranslateRune(tt.r, kl); got != tt.want {
				t.Errorf("TranslateRune(%q) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestKeyTableTranslateResize(t *testing.T) {
	kt := DefaultKeyTable()

	got := kt.Translate(tcell.NewEventResize(80, 24), nil)
	if got.Type != IntentResize {
		t.Errorf("Expected IntentResize, got %v", got.Type)
	}
}
