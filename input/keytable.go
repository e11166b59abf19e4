package input

import "github.com/gdamore/tcell/v2"

// Default pet key bindings
const (
	KeyFeed  = 'f'
	KeyPlay  = 'p'
	KeySleep = 's'
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings outside the pet keys
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default system bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyCtrlL:  IntentRedraw,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
		},
	}
}

// Translate turns a terminal event into an intent
// Rune keys monitored by kl become IntentPetKey; they win over table runes
func (kt *KeyTable) Translate(ev tcell.Event, kl *KeyListener) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return kt.TranslateRune(ev.Rune(), kl)
		}
		if it, ok := kt.SpecialKeys[ev.Key()]; ok {
			return Intent{Type: it}
		}
	}
	return Intent{Type: IntentNone}
}

// TranslateRune resolves a printable key
func (kt *KeyTable) TranslateRune(r rune, kl *KeyListener) Intent {
	if kl != nil && kl.Monitors(r) {
		return Intent{Type: IntentPetKey, Key: fold(r)}
	}
	if it, ok := kt.Runes[fold(r)]; ok {
		return Intent{Type: it, Key: r}
	}
	return Intent{Type: IntentNone}
}
