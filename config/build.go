package config

import (
	"fmt"
	"slices"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/session"
)

// roster returns the players ascending by id
func (c *Config) roster() []PlayerConfig {
	players := slices.Clone(c.Players)
	slices.SortFunc(players, func(a, b PlayerConfig) int {
		return int(a.ID) - int(b.ID)
	})
	return players
}

// NewState builds the session state with the roster registered
func (c *Config) NewState() (*session.State, error) {
	arena, err := session.NewArena(c.Arena.Width, c.Arena.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	state := session.NewState(arena)

	policy, ok := session.RespawnPolicyByName(c.Game.ScoreOnRespawn)
	if !ok {
		return nil, fmt.Errorf("%w: score_on_respawn %q", ErrInvalidConfig, c.Game.ScoreOnRespawn)
	}
	state.RespawnPolicy = policy

	for _, p := range c.roster() {
		if err := state.Register(component.PlayerID(p.ID), p.Name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return state, nil
}

// Bindings returns the key pairs ascending by player id
func (c *Config) Bindings() ([]input.Binding, error) {
	players := c.roster()
	out := make([]input.Binding, 0, len(players))
	for _, p := range players {
		left, err := input.ParseKey(p.Left)
		if err != nil {
			return nil, fmt.Errorf("%w: player %q left key: %v", ErrInvalidConfig, p.Name, err)
		}
		right, err := input.ParseKey(p.Right)
		if err != nil {
			return nil, fmt.Errorf("%w: player %q right key: %v", ErrInvalidConfig, p.Name, err)
		}
		out = append(out, input.Binding{Player: component.PlayerID(p.ID), Left: left, Right: right})
	}
	return out, nil
}

// SpawnResource returns the spawn policy; Rand is left for the game context to seed
func (c *Config) SpawnResource() engine.SpawnResource {
	starts := make(map[component.PlayerID]engine.SpawnPoint)
	for _, p := range c.Players {
		if len(p.Start) != 2 {
			continue
		}
		dir := component.DirUp
		if d, err := component.ParseDirection(p.Direction); err == nil {
			dir = d
		}
		starts[component.PlayerID(p.ID)] = engine.SpawnPoint{At: startPoint(p), Direction: dir}
	}
	return engine.SpawnResource{
		Mode:      c.Spawn.Mode,
		Margin:    c.Spawn.Margin,
		Attempts:  c.Spawn.Attempts,
		Starts:    starts,
		Respawn:   c.Game.Respawn,
		AutoSpawn: c.Game.AutoSpawn,
	}
}

// SpriteAliases maps display names to sprite names for the asset provider
func (c *Config) SpriteAliases() map[string]string {
	aliases := make(map[string]string, len(c.Players))
	for _, p := range c.Players {
		if p.Sprite != "" {
			aliases[p.Name] = p.Sprite
		}
	}
	return aliases
}

func startPoint(p PlayerConfig) core.Point {
	return core.Point{X: p.Start[0], Y: p.Start[1]}
}

// Resize switches to a width x height arena, scaling fixed starts and the spawn margin
// by the same ratio so the layout keeps its shape
func (c *Config) Resize(width, height uint32) {
	oldW, oldH := uint64(c.Arena.Width), uint64(c.Arena.Height)
	c.Arena = ArenaConfig{Width: width, Height: height}
	if oldW == 0 || oldH == 0 {
		return
	}

	scale := func(v, from, to uint64) uint64 { return v * to / from }
	c.Spawn.Margin = uint32(min(
		scale(uint64(c.Spawn.Margin), oldW, uint64(width)),
		scale(uint64(c.Spawn.Margin), oldH, uint64(height)),
	))
	for i := range c.Players {
		start := c.Players[i].Start
		if len(start) != 2 || start[0] < 0 || start[1] < 0 {
			continue
		}
		c.Players[i].Start = []int32{
			int32(scale(uint64(start[0]), oldW, uint64(width))),
			int32(scale(uint64(start[1]), oldH, uint64(height))),
		}
	}
}
