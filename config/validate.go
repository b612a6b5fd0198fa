package config

import (
	"fmt"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/parameter"
	"github.com/ninjapiraatti/furious-purpose/session"
)

// Validate checks every section and returns the first failure wrapped in ErrInvalidConfig
func (c *Config) Validate() error {
	if _, err := session.NewArena(c.Arena.Width, c.Arena.Height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.TickInterval() < parameter.MinTickInterval {
		return fmt.Errorf("%w: tick_ms %d below %s", ErrInvalidConfig, c.Game.TickMS, parameter.MinTickInterval)
	}
	if _, ok := session.RespawnPolicyByName(c.Game.ScoreOnRespawn); !ok {
		return fmt.Errorf("%w: score_on_respawn %q", ErrInvalidConfig, c.Game.ScoreOnRespawn)
	}

	switch c.Spawn.Mode {
	case parameter.SpawnModeRandom, parameter.SpawnModeFixed:
	default:
		return fmt.Errorf("%w: spawn mode %q", ErrInvalidConfig, c.Spawn.Mode)
	}
	if c.Spawn.Attempts < 1 {
		return fmt.Errorf("%w: spawn attempts %d", ErrInvalidConfig, c.Spawn.Attempts)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f outside 0..1", ErrInvalidConfig, c.Audio.Volume)
	}

	return c.validateRoster()
}

func (c *Config) validateRoster() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("%w: empty roster", ErrInvalidConfig)
	}
	if len(c.Players) > parameter.MaxPlayers {
		return fmt.Errorf("%w: %d players, at most %d", ErrInvalidConfig, len(c.Players), parameter.MaxPlayers)
	}

	ids := make(map[uint8]bool, len(c.Players))
	names := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.ID == uint8(component.NoPlayer) {
			return fmt.Errorf("%w: player %q: id 0 is reserved", ErrInvalidConfig, p.Name)
		}
		if ids[p.ID] {
			return fmt.Errorf("%w: duplicate player id %d", ErrInvalidConfig, p.ID)
		}
		ids[p.ID] = true
		if p.Name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalidConfig, p.ID)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate player name %q", ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true

		if p.Direction != "" {
			if _, err := component.ParseDirection(p.Direction); err != nil {
				return fmt.Errorf("%w: player %q: %v", ErrInvalidConfig, p.Name, err)
			}
		}
		if err := c.validateStart(p); err != nil {
			return err
		}
	}

	bindings, err := c.Bindings()
	if err != nil {
		return err
	}
	if err := input.ValidateBindings(bindings); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, b := range bindings {
		for _, k := range []input.Key{b.Left, b.Right} {
			if input.IsControl(k) {
				return fmt.Errorf("%w: player %d: key %q is a control key", ErrInvalidConfig, b.Player, k)
			}
		}
	}
	return nil
}

func (c *Config) validateStart(p PlayerConfig) error {
	if len(p.Start) == 0 {
		if c.Spawn.Mode == parameter.SpawnModeFixed {
			return fmt.Errorf("%w: player %q needs a start in fixed spawn mode", ErrInvalidConfig, p.Name)
		}
		return nil
	}
	if len(p.Start) != 2 {
		return fmt.Errorf("%w: player %q: start needs [x, y], got %v", ErrInvalidConfig, p.Name, p.Start)
	}
	arena := session.MustArena(c.Arena.Width, c.Arena.Height)
	if at := startPoint(p); !arena.Contains(at) {
		return fmt.Errorf("%w: player %q: start (%d,%d) outside arena", ErrInvalidConfig, p.Name, at.X, at.Y)
	}
	return nil
}
