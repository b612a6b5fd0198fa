// Package input samples raw key state once per tick and maps players to their turn keys
package input

import (
	"fmt"
	"strings"
)

// Key is a normalized key name: a single lower-case character ("a", "4")
// or a named key ("left", "right", "up", "down", "enter", "space", "esc")
type Key string

var namedKeys = map[string]bool{
	"left": true, "right": true, "up": true, "down": true,
	"enter": true, "space": true, "esc": true, "tab": true, "backspace": true,
}

// ParseKey normalizes a config key name
func ParseKey(s string) (Key, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	switch {
	case k == "":
		return "", fmt.Errorf("empty key name")
	case len([]rune(k)) == 1:
		return Key(k), nil
	case namedKeys[k]:
		return Key(k), nil
	}
	return "", fmt.Errorf("unknown key %q", s)
}

// KeyRune returns the key for a printable character
func KeyRune(r rune) Key {
	if r == ' ' {
		return "space"
	}
	return Key(strings.ToLower(string(r)))
}

// Host control keys, never bound to players
const (
	KeyStart Key = "enter"
	KeyMenu  Key = "esc"
	KeyPause Key = "p"
	KeyQuit  Key = "q"
	KeyMute  Key = "m"
)

// IsControl reports whether k is reserved for the host
func IsControl(k Key) bool {
	switch k {
	case KeyStart, KeyMenu, KeyPause, KeyQuit, KeyMute:
		return true
	}
	return false
}
