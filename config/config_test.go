package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/parameter"
	"github.com/ninjapiraatti/furious-purpose/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint32(parameter.ArenaWidth), cfg.Arena.Width)
	assert.Equal(t, uint32(parameter.ArenaHeight), cfg.Arena.Height)
	assert.Equal(t, uint32(parameter.SpawnMargin), cfg.Spawn.Margin)
	assert.Equal(t, parameter.GameUpdateInterval, cfg.TickInterval())
	require.Len(t, cfg.Players, 4)

	names := []string{cfg.Players[0].Name, cfg.Players[1].Name, cfg.Players[2].Name, cfg.Players[3].Name}
	assert.Equal(t, []string{"Cookie Crab", "Sid Starfish", "Foo Frog", "Jabby Jellyfish"}, names)
}

func TestLoadMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aninmals.toml")
	data := `
[arena]
width = 20
height = 10

[spawn]
mode = "fixed"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(20), cfg.Arena.Width)
	assert.Equal(t, 100, cfg.Game.TickMS, "untouched sections keep defaults")
	assert.Len(t, cfg.Players, 4, "roster kept when the file has none")

	// Default starts lie outside a 20x10 arena
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLoadReplacesRoster(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	data := `
[[players]]
id = 7
name = "Solo"
left = "z"
right = "x"
`
	require.NoError(t, cfg.Merge([]byte(data)))
	require.Len(t, cfg.Players, 1)
	assert.Equal(t, "Solo", cfg.Players[0].Name)
	require.NoError(t, cfg.Validate())
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	err = cfg.Merge([]byte("[arena]\ndepth = 3\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Len(t, cfg.Players, 4, "failed merge restores the roster")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Arena.Width = 0 }},
		{"width beyond int32", func(c *Config) { c.Arena.Width = 3_000_000_000 }},
		{"height beyond int32", func(c *Config) { c.Arena.Height = math.MaxInt32 + 1 }},
		{"fast tick", func(c *Config) { c.Game.TickMS = 1 }},
		{"unknown mode", func(c *Config) { c.Spawn.Mode = "corner" }},
		{"unknown respawn policy", func(c *Config) { c.Game.ScoreOnRespawn = "halve" }},
		{"empty roster", func(c *Config) { c.Players = nil }},
		{"duplicate id", func(c *Config) { c.Players[1].ID = c.Players[0].ID }},
		{"reserved id", func(c *Config) { c.Players[0].ID = 0 }},
		{"duplicate name", func(c *Config) { c.Players[1].Name = c.Players[0].Name }},
		{"shared key", func(c *Config) { c.Players[1].Left = c.Players[0].Left }},
		{"control key", func(c *Config) { c.Players[0].Left = "q" }},
		{"bad key", func(c *Config) { c.Players[0].Right = "hyper" }},
		{"bad direction", func(c *Config) { c.Players[0].Direction = "north" }},
		{"bad start", func(c *Config) { c.Players[0].Start = []int32{1} }},
		{"loud", func(c *Config) { c.Audio.Volume = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	t.Setenv(EnvArenaWidth, "32")
	t.Setenv(EnvTickMS, "50")
	t.Setenv(EnvRespawn, "false")
	t.Setenv(EnvSeed, "99")

	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "none.env")))
	assert.Equal(t, uint32(32), cfg.Arena.Width)
	assert.Equal(t, 50, cfg.Game.TickMS)
	assert.False(t, cfg.Game.Respawn)
	assert.Equal(t, uint64(99), cfg.ResolveSeed())
}

func TestApplyEnvOversizedArenaFailsValidation(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	t.Setenv(EnvArenaWidth, "3000000000")
	require.NoError(t, cfg.ApplyEnv(""))
	assert.Equal(t, uint32(3_000_000_000), cfg.Arena.Width)

	err = cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, session.ErrInvalidArena)
}

func TestApplyEnvFile(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvSpawnMode+"=fixed\n"+EnvScoreOnRespawn+"=reset\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(EnvSpawnMode)
		os.Unsetenv(EnvScoreOnRespawn)
	})

	require.NoError(t, cfg.ApplyEnv(path))
	assert.Equal(t, parameter.SpawnModeFixed, cfg.Spawn.Mode)
	assert.Equal(t, "reset", cfg.Game.ScoreOnRespawn)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	t.Setenv(EnvArenaHeight, "tall")
	assert.ErrorIs(t, cfg.ApplyEnv(""), ErrInvalidConfig)
}

func TestResizeToClassic(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	cfg.Resize(parameter.ClassicArenaWidth, parameter.ClassicArenaHeight)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ArenaConfig{Width: 640, Height: 360}, cfg.Arena)
	assert.Equal(t, uint32(24), cfg.Spawn.Margin, "margin follows the tighter ratio")
	assert.Equal(t, []int32{160, 81}, cfg.Players[0].Start)
	assert.Equal(t, []int32{480, 261}, cfg.Players[3].Start)

	cfg.Resize(parameter.ArenaWidth, parameter.ArenaHeight)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int32{20, 4}, cfg.Players[0].Start, "round trip floors")
}

func TestConversions(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Game.ScoreOnRespawn = "reset"

	state, err := cfg.NewState()
	require.NoError(t, err)
	assert.Equal(t, []component.PlayerID{1, 2, 3, 4}, state.IDs())

	bindings, err := cfg.Bindings()
	require.NoError(t, err)
	require.Len(t, bindings, 4)
	assert.Equal(t, input.Binding{Player: 4, Left: "left", Right: "right"}, bindings[3])

	spawn := cfg.SpawnResource()
	assert.Equal(t, parameter.SpawnModeRandom, spawn.Mode)
	require.Contains(t, spawn.Starts, component.PlayerID(2))
	assert.Equal(t, core.Point{X: 60, Y: 5}, spawn.Starts[2].At)
	assert.Equal(t, component.DirLeft, spawn.Starts[2].Direction)

	assert.Equal(t, "frog", cfg.SpriteAliases()["Foo Frog"])
}
