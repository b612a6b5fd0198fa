package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names, highest precedence below flags
const (
	EnvArenaWidth     = "ANINMALS_ARENA_WIDTH"
	EnvArenaHeight    = "ANINMALS_ARENA_HEIGHT"
	EnvTickMS         = "ANINMALS_TICK_MS"
	EnvSpawnMode      = "ANINMALS_SPAWN_MODE"
	EnvSeed           = "ANINMALS_SEED"
	EnvRespawn        = "ANINMALS_RESPAWN"
	EnvScoreOnRespawn = "ANINMALS_SCORE_ON_RESPAWN"
)

// ApplyEnv loads envFile into the process environment, when present, then
// applies every ANINMALS_* override; variables already set in the process win
// over the file
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
			log.Printf("[config] %s not found, using process environment", envFile)
		}
	}

	if err := envUint32(EnvArenaWidth, &c.Arena.Width); err != nil {
		return err
	}
	if err := envUint32(EnvArenaHeight, &c.Arena.Height); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvTickMS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvTickMS, v, err)
		}
		c.Game.TickMS = n
	}
	if v, ok := os.LookupEnv(EnvSpawnMode); ok {
		c.Spawn.Mode = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Game.Seed = n
	}
	if v, ok := os.LookupEnv(EnvRespawn); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvRespawn, v, err)
		}
		c.Game.Respawn = b
	}
	if v, ok := os.LookupEnv(EnvScoreOnRespawn); ok {
		c.Game.ScoreOnRespawn = v
	}
	return nil
}

func envUint32(key string, dst *uint32) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	*dst = uint32(n)
	return nil
}
