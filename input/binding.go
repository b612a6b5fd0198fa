package input

import (
	"fmt"

	"github.com/ninjapiraatti/furious-purpose/component"
)

// Binding ties a player to its turn-left/turn-right key pair
// Either key spawns the player while it is not alive
type Binding struct {
	Player component.PlayerID
	Left   Key
	Right  Key
}

// Turn resolves the edge-triggered turn for this tick
// Left is checked first and wins when both keys were pressed
func (b Binding) Turn(src Source) (left, right bool) {
	if src.JustPressed(b.Left) {
		return true, false
	}
	if src.JustPressed(b.Right) {
		return false, true
	}
	return false, false
}

// AnyPressed reports whether either key of the pair was just pressed
func (b Binding) AnyPressed(src Source) bool {
	return src.JustPressed(b.Left) || src.JustPressed(b.Right)
}

// ValidateBindings rejects keys shared between players or within a pair
func ValidateBindings(bindings []Binding) error {
	owner := make(map[Key]component.PlayerID, 2*len(bindings))
	for _, b := range bindings {
		if b.Left == b.Right {
			return fmt.Errorf("player %d: left and right keys are both %q", b.Player, b.Left)
		}
		for _, k := range []Key{b.Left, b.Right} {
			if other, taken := owner[k]; taken {
				return fmt.Errorf("key %q bound to players %d and %d", k, other, b.Player)
			}
			owner[k] = b.Player
		}
	}
	return nil
}
