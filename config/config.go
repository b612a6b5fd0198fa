// Package config loads the game configuration: compiled defaults, an optional
// TOML file, .env/process environment and finally command-line flags
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ninjapiraatti/furious-purpose/asset"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full game configuration
type Config struct {
	Arena   ArenaConfig    `toml:"arena"`
	Game    GameConfig     `toml:"game"`
	Spawn   SpawnConfig    `toml:"spawn"`
	Audio   AudioConfig    `toml:"audio"`
	Players []PlayerConfig `toml:"players"`
}

// ArenaConfig sets the grid dimensions
type ArenaConfig struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

// GameConfig sets loop timing and life rules
type GameConfig struct {
	TickMS         int    `toml:"tick_ms"`
	Respawn        bool   `toml:"respawn"`
	AutoSpawn      bool   `toml:"auto_spawn"`
	ScoreOnRespawn string `toml:"score_on_respawn"` // "persist" or "reset"
	Seed           uint64 `toml:"seed"`
}

// SpawnConfig sets the spawn position policy
type SpawnConfig struct {
	Mode     string `toml:"mode"`
	Margin   uint32 `toml:"margin"`
	Attempts int    `toml:"attempts"`
}

// AudioConfig toggles and scales sound effects
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// PlayerConfig is one roster entry
type PlayerConfig struct {
	ID        uint8   `toml:"id"`
	Name      string  `toml:"name"`
	Sprite    string  `toml:"sprite"`
	Left      string  `toml:"left"`
	Right     string  `toml:"right"`
	Start     []int32 `toml:"start"`
	Direction string  `toml:"direction"`
}

// Default decodes the compiled-in configuration
func Default() (*Config, error) {
	cfg := &Config{}
	if err := decode([]byte(asset.DefaultConfigTOML), cfg); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the TOML file at path
// An empty path loads the defaults only; a file without [[players]] keeps the default roster
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes TOML data over the current values
func (c *Config) Merge(data []byte) error {
	roster := c.Players
	c.Players = nil
	if err := decode(data, c); err != nil {
		c.Players = roster
		return err
	}
	if len(c.Players) == 0 {
		c.Players = roster
	}
	return nil
}

// TickInterval returns the configured tick as a duration
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Game.TickMS) * time.Millisecond
}

// ResolveSeed returns the configured seed, or a clock-derived one for 0
func (c *Config) ResolveSeed() uint64 {
	if c.Game.Seed != 0 {
		return c.Game.Seed
	}
	return uint64(time.Now().UnixNano())
}

func decode(data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return fmt.Errorf("toml decode: %w", err)
	}
	return nil
}
