package core

import (
	"github.com/kamstrup/intmap"
)

// KeyCode identifies a physical key, independent of the terminal encoding.
// Values follow the browser keyCode numbering so that bindings stay stable
// across platforms.
type KeyCode int32

// Key codes recognized by the platform.
const (
	KeyNone       KeyCode = 0
	KeySpace      KeyCode = 32
	KeyLeftArrow  KeyCode = 37
	KeyUpArrow    KeyCode = 38
	KeyRightArrow KeyCode = 39
	KeyDownArrow  KeyCode = 40
	KeyC          KeyCode = 67
	KeyX          KeyCode = 88
	KeyZ          KeyCode = 90
)

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyLeftArrow:
		return "Left"
	case KeyUpArrow:
		return "Up"
	case KeyRightArrow:
		return "Right"
	case KeyDownArrow:
		return "Down"
	case KeyC:
		return "C"
	case KeyX:
		return "X"
	case KeyZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// keyState is the held state of a key at the end of the previous frame
// and right now.
type keyState struct {
	previous bool
	current  bool
}

// KeyPressed turns raw key-down/key-up signals into edge-triggered
// "newly pressed" events. Only the key codes given at construction are
// tracked; everything else is ignored.
//
// Call Advance exactly once per processed frame, after every decision for
// that frame has been made, so that each press is seen exactly once.
type KeyPressed struct {
	codes  []KeyCode
	values *intmap.Map[KeyCode, keyState]
}

// NewKeyPressed creates an edge detector tracking the given key codes.
func NewKeyPressed(codes ...KeyCode) *KeyPressed {
	kp := &KeyPressed{
		values: intmap.New[KeyCode, keyState](len(codes)),
	}
	for _, code := range codes {
		if kp.values.Has(code) {
			continue
		}
		kp.codes = append(kp.codes, code)
		kp.values.Put(code, keyState{})
	}
	return kp
}

// Tracked reports whether the key code is recognized by this detector.
func (kp *KeyPressed) Tracked(code KeyCode) bool {
	return kp.values.Has(code)
}

// SetCurrent records the live state of a key (down = true, up = false).
func (kp *KeyPressed) SetCurrent(code KeyCode, down bool) {
	st, ok := kp.values.Get(code)
	if !ok {
		return
	}
	st.current = down
	kp.values.Put(code, st)
}

// IsCurrent reports whether the key is held right now.
func (kp *KeyPressed) IsCurrent(code KeyCode) bool {
	st, _ := kp.values.Get(code)
	return st.current
}

// IsNewlyPressed reports whether the key went from released to held since
// the last Advance.
func (kp *KeyPressed) IsNewlyPressed(code KeyCode) bool {
	st, _ := kp.values.Get(code)
	return st.current && !st.previous
}

// Advance copies the current state of every key into its previous state.
func (kp *KeyPressed) Advance() {
	for _, code := range kp.codes {
		st, _ := kp.values.Get(code)
		st.previous = st.current
		kp.values.Put(code, st)
	}
}

// Reset forgets the state of every tracked key. Used when a round ends so
// that a press from the old round cannot fire into the next one.
func (kp *KeyPressed) Reset() {
	for _, code := range kp.codes {
		kp.values.Put(code, keyState{})
	}
}

// Codes returns the tracked key codes in registration order.
func (kp *KeyPressed) Codes() []KeyCode {
	return append([]KeyCode(nil), kp.codes...)
}
