// Package asset holds the compiled-in data: default configuration and player sprites
package asset

import (
	"log"
	"sync"

	"github.com/ninjapiraatti/furious-purpose/component"
)

// DefaultSprite is served for names missing from the catalog
var DefaultSprite = component.SpriteComponent{Glyph: '@', Segment: '·', Color: 0xc0c0c0}

// Catalog is the built-in sprite set keyed by sprite name
var Catalog = map[string]component.SpriteComponent{
	"crab":      {Glyph: 'C', Segment: '▒', Color: 0xe0533d},
	"starfish":  {Glyph: 'S', Segment: '▒', Color: 0xf2c14e},
	"frog":      {Glyph: 'F', Segment: '▒', Color: 0x4cb944},
	"jellyfish": {Glyph: 'J', Segment: '▒', Color: 0x7d8ce8},
}

// SpriteProvider resolves a player's display name to a sprite through an alias table
// Unknown names fall back to DefaultSprite and are logged once
type SpriteProvider struct {
	mu      sync.Mutex
	aliases map[string]string
	warned  map[string]bool
}

// NewSpriteProvider creates a provider with name → sprite-name aliases
func NewSpriteProvider(aliases map[string]string) *SpriteProvider {
	a := make(map[string]string, len(aliases))
	for name, sprite := range aliases {
		a[name] = sprite
	}
	return &SpriteProvider{
		aliases: a,
		warned:  make(map[string]bool),
	}
}

// Sprite returns the sprite for a display name or sprite name
func (p *SpriteProvider) Sprite(name string) component.SpriteComponent {
	key := name
	if alias, ok := p.aliases[name]; ok {
		key = alias
	}
	if s, ok := Catalog[key]; ok {
		return s
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.warned[name] {
		p.warned[name] = true
		log.Printf("[asset] no sprite for %q, using default", name)
	}
	return DefaultSprite
}
