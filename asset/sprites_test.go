package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpriteProviderAliases(t *testing.T) {
	p := NewSpriteProvider(map[string]string{"Cookie Crab": "crab"})

	assert.Equal(t, Catalog["crab"], p.Sprite("Cookie Crab"))
	assert.Equal(t, Catalog["frog"], p.Sprite("frog"), "sprite names resolve directly")
}

func TestSpriteProviderFallback(t *testing.T) {
	p := NewSpriteProvider(nil)

	assert.Equal(t, DefaultSprite, p.Sprite("Nobody"))
	assert.Equal(t, DefaultSprite, p.Sprite("Nobody"), "repeat lookups stay on the fallback")
	assert.True(t, p.warned["Nobody"])
}
