package input

import (
	"fmt"
	"unicode"
)

// Key is an abstract key code decoupling paddle control from the
// terminal backend. Printable keys are encoded above the special range
// so rune keys and navigation keys share one code space.
type Key uint16

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	keyRuneBase Key = 0x100
)

// KeyRune returns the key code for a printable key
// Letters fold to lower case so bindings ignore shift state
func KeyRune(r rune) Key {
	return keyRuneBase + Key(unicode.ToLower(r))
}

// Rune returns the printable rune for a rune key, or 0 for special keys
func (k Key) Rune() rune {
	if k < keyRuneBase {
		return 0
	}
	return rune(k - keyRuneBase)
}

// String returns the configuration name of the key
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	}
	if r := k.Rune(); r == ' ' {
		return "space"
	} else if r != 0 {
		return string(r)
	}
	return "unknown"
}

// ParseKey resolves a configuration key name: a single printable
// character or one of "up", "down", "left", "right", "space"
func ParseKey(name string) (Key, error) {
	switch name {
	case "up":
		return KeyArrowUp, nil
	case "down":
		return KeyArrowDown, nil
	case "left":
		return KeyArrowLeft, nil
	case "right":
		return KeyArrowRight, nil
	case "space":
		return KeyRune(' '), nil
	}
	runes := []rune(name)
	if len(runes) != 1 || !unicode.IsPrint(runes[0]) || runes[0] == ' ' {
		return KeyNone, fmt.Errorf("invalid key name %q", name)
	}
	return KeyRune(runes[0]), nil
}

// Bindings holds one paddle's movement keys
type Bindings struct {
	Up   Key
	Down Key
}
