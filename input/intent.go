package input

// IntentType discriminates what a terminal event means to the game
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, q, Ctrl+C, Ctrl+Q
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event
	IntentRedraw     // Ctrl+L

	// Pet keys
	IntentPetKey // Monitored key pressed, Key holds the code
)

// Intent is the translated form of one terminal event
type Intent struct {
	Type IntentType
	Key  rune
}
