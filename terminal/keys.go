package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ninjapiraatti/furious-purpose/input"
)

var namedKeys = map[tcell.Key]input.Key{
	tcell.KeyLeft:      "left",
	tcell.KeyRight:     "right",
	tcell.KeyUp:        "up",
	tcell.KeyDown:      "down",
	tcell.KeyEnter:     input.KeyStart,
	tcell.KeyEscape:    input.KeyMenu,
	tcell.KeyTab:       "tab",
	tcell.KeyBackspace: "backspace",
}

// TranslateKey maps a tcell key code and rune to a normalized key name
func TranslateKey(key tcell.Key, r rune) (input.Key, bool) {
	if key == tcell.KeyRune {
		return input.KeyRune(r), true
	}
	if key == tcell.KeyBackspace2 {
		return "backspace", true
	}
	k, ok := namedKeys[key]
	return k, ok
}
