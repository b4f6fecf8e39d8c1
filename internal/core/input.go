package core

import "strings"

// Key is a symbolic key recognized by the game, abstracted from the names
// each host uses for physical keys.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyRestart
	KeyQuit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRestart:
		return "Restart"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseKey maps a host key name to a symbolic key.
// Browser-style ("ArrowLeft", "Left"), bubbletea-style ("left") and
// ebiten-style ("A") names are accepted. Unknown names map to KeyNone.
func ParseKey(name string) Key {
	switch name {
	case "ArrowLeft", "Left", "left", "a", "A", "KeyA":
		return KeyLeft
	case "ArrowRight", "Right", "right", "d", "D", "KeyD":
		return KeyRight
	case "r", "R", "KeyR":
		return KeyRestart
	case "ctrl+c", "esc", "Escape", "q", "Q", "KeyQ":
		return KeyQuit
	}
	if strings.EqualFold(name, "arrowleft") {
		return KeyLeft
	}
	if strings.EqualFold(name, "arrowright") {
		return KeyRight
	}
	return KeyNone
}

// Direction reports whether the key steers the paddle.
func (k Key) Direction() bool {
	return k == KeyLeft || k == KeyRight
}

// Opposite returns the other direction key, or KeyNone.
func (k Key) Opposite() Key {
	switch k {
	case KeyLeft:
		return KeyRight
	case KeyRight:
		return KeyLeft
	default:
		return KeyNone
	}
}

// InputState holds the currently-held direction keys.
// Key events write it; the paddle step reads it once per frame.
type InputState struct {
	MoveLeft  bool
	MoveRight bool
}

// Apply updates the flag for a direction key.
// Non-direction keys are ignored.
func (s *InputState) Apply(k Key, down bool) {
	switch k {
	case KeyLeft:
		s.MoveLeft = down
	case KeyRight:
		s.MoveRight = down
	}
}
