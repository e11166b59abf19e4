package input

import "unicode"

// KeyListener tracks held state for a fixed set of monitored keys
// Owned by the game loop; not safe for concurrent use
type KeyListener struct {
	order []rune
	held  map[rune]bool
}

// NewKeyListener creates a listener for the given key codes
// Codes are case folded so 'F' and 'f' are the same key
func NewKeyListener(codes ...rune) *KeyListener {
	kl := &KeyListener{
		order: make([]rune, 0, len(codes)),
		held:  make(map[rune]bool, len(codes)),
	}
	for _, c := range codes {
		c = fold(c)
		if _, dup := kl.held[c]; dup {
			continue
		}
		kl.order = append(kl.order, c)
		kl.held[c] = false
	}
	return kl
}

// KeyDown marks code as held, repeated downs are idempotent
func (kl *KeyListener) KeyDown(code rune) {
	code = fold(code)
	if _, ok := kl.held[code]; ok {
		kl.held[code] = true
	}
}

// KeyUp marks code as released
func (kl *KeyListener) KeyUp(code rune) {
	code = fold(code)
	if _, ok := kl.held[code]; ok {
		kl.held[code] = false
	}
}

// IsKeyDown reports whether code is held; unmonitored codes are never held
func (kl *KeyListener) IsKeyDown(code rune) bool {
	return kl.held[fold(code)]
}

// Monitors reports whether code is in the monitored set
func (kl *KeyListener) Monitors(code rune) bool {
	_, ok := kl.held[fold(code)]
	return ok
}

// Held returns the held keys in monitored order
func (kl *KeyListener) Held() []rune {
	var out []rune
	for _, c := range kl.order {
		if kl.held[c] {
			out = append(out, c)
		}
	}
	return out
}

// Reset releases every key
func (kl *KeyListener) Reset() {
	for c := range kl.held {
		kl.held[c] = false
	}
}

func fold(r rune) rune {
	return unicode.ToLower(r)
}
