package engine

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/parameter"
	"github.com/ninjapiraatti/furious-purpose/session"
	"github.com/ninjapiraatti/furious-purpose/status"
)

// GameContext holds the ECS world, the event plumbing and the session phase
// Every method runs on the tick goroutine except where noted
type GameContext struct {
	// ===== Immutable After Init =====

	World     *World
	Router    *EventRouter
	SessionID uuid.UUID

	eventQueue *event.Queue
	interval   time.Duration

	// ===== Tick Goroutine Exclusive =====

	frame    int64
	gameTime time.Time
}

// ContextOptions configures a new GameContext
type ContextOptions struct {
	State    *session.State
	Source   input.Source
	Bindings []input.Binding
	Spawn    SpawnResource
	Interval time.Duration
	Seed     uint64
}

// NewGameContext creates a GameContext and initializes every core resource
// Host services (audio, assets) are bridged afterwards through World.Resources
func NewGameContext(opts ContextOptions) *GameContext {
	world := NewWorld()

	interval := opts.Interval
	if interval < parameter.MinTickInterval {
		interval = parameter.GameUpdateInterval
	}

	ctx := &GameContext{
		World:      world,
		SessionID:  uuid.New(),
		eventQueue: event.NewQueue(),
		interval:   interval,
		gameTime:   time.Now(),
	}
	ctx.Router = NewEventRouter(ctx.eventQueue)

	// -- Initialize Resource --

	// 0. Status Registry (before other resources that may use it)
	world.Resources.Status = status.NewRegistry()
	world.Resources.Status.Labels.Get("session.id").Store(ctx.SessionID.String())

	// 1. Time Resource (Initial state)
	world.Resources.Time = &TimeResource{
		GameTime:  ctx.gameTime,
		RealTime:  ctx.gameTime,
		DeltaTime: interval,
	}

	// 2. Event Queue Resource
	world.Resources.Event = &EventQueueResource{Queue: ctx.eventQueue}

	// 3. Session state and phase
	world.Resources.Session = opts.State
	world.Resources.Phase = session.NewPhaseMachine()
	world.Resources.Phase.OnTransition(ctx.onPhase)

	// 4. Input
	world.Resources.Input = &InputResource{
		Source:   opts.Source,
		Bindings: opts.Bindings,
	}

	// 5. Spawn policy
	spawn := opts.Spawn
	if spawn.Starts == nil {
		spawn.Starts = make(map[component.PlayerID]SpawnPoint)
	}
	if spawn.Rand == nil {
		spawn.Rand = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	}
	world.Resources.Spawn = &spawn

	ctx.Router.Register(ctx)

	log.Printf("[engine] session %s arena %dx%d tick %s",
		ctx.SessionID, opts.State.Arena.Width(), opts.State.Arena.Height(), interval)

	return ctx
}

// AddSystem registers a system for updates and, if it handles events, for routing
func (ctx *GameContext) AddSystem(s System) {
	ctx.World.AddSystem(s)
	if h, ok := s.(EventHandler); ok {
		ctx.Router.Register(h)
	}
}

// Interval returns the fixed tick interval
func (ctx *GameContext) Interval() time.Duration {
	return ctx.interval
}

// Frame returns the number of game ticks executed
func (ctx *GameContext) Frame() int64 {
	return ctx.frame
}

// Phase returns the session phase machine
func (ctx *GameContext) Phase() *session.PhaseMachine {
	return ctx.World.Resources.Phase
}

// State returns the session state
func (ctx *GameContext) State() *session.State {
	return ctx.World.Resources.Session
}

// Tick runs one fixed step: sample input, settle pending events, and, while in
// the Game phase, run every system in priority order and settle what they emitted
func (ctx *GameContext) Tick() {
	if s, ok := ctx.World.Resources.Input.Source.(input.Sampler); ok {
		s.Sample()
	}

	ctx.Router.DispatchAll()

	if !ctx.Phase().InGame() {
		return
	}

	ctx.frame++
	ctx.gameTime = ctx.gameTime.Add(ctx.interval)
	ctx.World.Resources.Time.Update(ctx.gameTime, time.Now(), ctx.interval, ctx.frame)

	ctx.World.Update()

	ctx.Router.DispatchAll()
}

// Reset clears the world and session state, keeping the phase
func (ctx *GameContext) Reset() {
	ctx.eventQueue.Clear()
	ctx.World.Clear()
	ctx.State().Reset()
	ctx.frame = 0
	ctx.World.Resources.Time.FrameNumber = 0
	ctx.World.PushEvent(event.EventGameReset, nil)
	log.Printf("[engine] session %s reset", ctx.SessionID)
}

// EventTypes implements EventHandler for session-level transitions
func (ctx *GameContext) EventTypes() []event.EventType {
	return []event.EventType{event.EventRoundOver}
}

// HandleEvent moves the session to GameOver when a round ends
func (ctx *GameContext) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventRoundOver && ctx.Phase().CanTransition(session.PhaseGameOver) {
		_ = ctx.Phase().Transition(session.PhaseGameOver)
	}
}

func (ctx *GameContext) onPhase(from, to session.Phase) {
	log.Printf("[engine] phase %s -> %s", from, to)
	ctx.World.Resources.Status.Labels.Get("session.phase").Store(to.String())
	if to != session.PhaseGame {
		return
	}
	if from == session.PhasePaused {
		return
	}
	// A new game after a played one restarts from a clean arena
	if ctx.frame > 0 || ctx.State().SpawnedCount() > 0 {
		ctx.Reset()
	}
	ctx.World.PushEvent(event.EventGameStart, nil)
}
