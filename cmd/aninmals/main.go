package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ninjapiraatti/furious-purpose/asset"
	"github.com/ninjapiraatti/furious-purpose/audio"
	"github.com/ninjapiraatti/furious-purpose/config"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/parameter"
	"github.com/ninjapiraatti/furious-purpose/render"
	"github.com/ninjapiraatti/furious-purpose/session"
	"github.com/ninjapiraatti/furious-purpose/system"
	"github.com/ninjapiraatti/furious-purpose/terminal"
)

var (
	configFlag  = flag.String("config", "", "TOML config file overriding the defaults")
	envFlag     = flag.String("env", ".env", "dotenv file with ANINMALS_* overrides")
	debugFlag   = flag.Bool("debug", false, "write logs to logs/aninmals.log")
	seedFlag    = flag.Uint64("seed", 0, "spawn seed (0 keeps config)")
	tickFlag    = flag.Int("tick", 0, "tick interval in milliseconds (0 keeps config)")
	spawnFlag   = flag.String("spawn", "", "spawn mode: random or fixed (empty keeps config)")
	muteFlag    = flag.Bool("mute", false, "start with sound muted")
	classicFlag = flag.Bool("classic", false, "use the original 640x360 arena, scaled to the terminal")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "aninmals: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "aninmals: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, file, environment and flags, then validates
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(*envFlag); err != nil {
		return nil, err
	}
	if *classicFlag {
		cfg.Resize(parameter.ClassicArenaWidth, parameter.ClassicArenaHeight)
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *tickFlag != 0 {
		cfg.Game.TickMS = *tickFlag
	}
	if *spawnFlag != "" {
		cfg.Spawn.Mode = *spawnFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	state, err := cfg.NewState()
	if err != nil {
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	keys := input.NewState(true)
	game := engine.NewGameContext(engine.ContextOptions{
		State:    state,
		Source:   keys,
		Bindings: bindings,
		Spawn:    cfg.SpawnResource(),
		Interval: cfg.TickInterval(),
		Seed:     cfg.ResolveSeed(),
	})

	// Bridge host services before systems cache them
	game.World.Resources.Assets = &engine.AssetResource{Sprites: asset.NewSpriteProvider(cfg.SpriteAliases())}

	sound := audio.NewSoundManager(cfg.Audio.Volume, cfg.Audio.Enabled)
	if err := sound.Initialize(); err != nil {
		log.Printf("[host] audio init failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	game.World.Resources.Audio = &engine.AudioResource{Player: sound}
	game.World.Resources.Status.Flags.Get("audio.muted").Store(sound.IsMuted())

	system.Install(game)

	term, err := terminal.New()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	renderer := render.NewRenderer(term.Screen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := engine.NewClockScheduler(game, func() { renderer.Draw(game) })

	if err := game.Phase().Transition(session.PhaseSplash); err != nil {
		return err
	}
	time.AfterFunc(parameter.SplashDuration, func() {
		scheduler.Post(func() {
			if game.Phase().Current() == session.PhaseSplash {
				game.Phase().Advance()
			}
		})
	})

	core.Go(func() {
		term.Poll(ctx, keys, func(k input.Key) {
			scheduler.Post(func() {
				if handleControl(game, k) {
					cancel()
				}
			})
		})
	})

	log.Printf("[host] session %s running", game.SessionID)
	return scheduler.Run(ctx)
}
