package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxLabelRunes caps a label; a UUID string fits exactly
const MaxLabelRunes = 36

// Label holds a short text value that can be swapped from any goroutine
// The zero Label reads as ""
type Label struct {
	v atomic.Pointer[string]
}

// Store replaces the text, cutting it at MaxLabelRunes runes
func (l *Label) Store(text string) {
	if utf8.RuneCountInString(text) > MaxLabelRunes {
		n := 0
		for i := range text {
			if n == MaxLabelRunes {
				text = text[:i]
				break
			}
			n++
		}
	}
	l.v.Store(&text)
}

// Load returns the current text
func (l *Label) Load() string {
	if p := l.v.Load(); p != nil {
		return *p
	}
	return ""
}
