package system

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

// SpawnSystem turns spawn-key presses of dead or unspawned players into heads
type SpawnSystem struct {
	world *engine.World

	statSpawns *atomic.Int64

	enabled bool
}

// NewSpawnSystem creates the spawn-input system
func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{
		world: world,
	}
	s.statSpawns = world.Resources.Status.Counters.Get("spawn.count")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SpawnSystem) Init() {
	s.statSpawns.Store(0)
	s.enabled = true
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameStart,
		event.EventGameReset,
	}
}

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventGameStart:
		if s.world.Resources.Spawn.AutoSpawn {
			s.spawnRoster()
		}
	}
}

func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	state := s.world.Resources.Session
	spawn := s.world.Resources.Spawn
	src := s.world.Resources.Input.Source

	for _, b := range s.world.Resources.Input.Bindings {
		p, ok := state.Player(b.Player)
		if !ok || p.Alive {
			continue
		}
		if p.Spawned && !spawn.Respawn {
			continue
		}
		if !b.AnyPressed(src) {
			continue
		}
		at, dir := s.pick(b.Player)
		SpawnPlayer(s.world, b.Player, at, dir)
		s.statSpawns.Add(1)
	}
}

// spawnRoster enters every registered player that is not alive
func (s *SpawnSystem) spawnRoster() {
	state := s.world.Resources.Session
	for _, id := range state.IDs() {
		if state.IsAlive(id) {
			continue
		}
		at, dir := s.pick(id)
		SpawnPlayer(s.world, id, at, dir)
		s.statSpawns.Add(1)
	}
}

// pick resolves the spawn cell and heading for the configured policy
func (s *SpawnSystem) pick(id component.PlayerID) (core.Point, component.Direction) {
	spawn := s.world.Resources.Spawn
	if spawn.Mode == parameter.SpawnModeFixed {
		if sp, ok := spawn.Starts[id]; ok {
			return sp.At, sp.Direction
		}
		log.Printf("[spawn] player %d has no fixed start, drawing a random cell", id)
	}
	return s.randomCell(), component.Directions()[spawn.Rand.IntN(4)]
}

// randomCell draws uniformly from the arena interior, redrawing over occupied
// cells up to the configured attempts; the last draw is used regardless
func (s *SpawnSystem) randomCell() core.Point {
	spawn := s.world.Resources.Spawn
	minX, minY, maxX, maxY := s.world.Resources.Session.Arena.Interior(spawn.Margin)

	attempts := max(spawn.Attempts, 1)
	var p core.Point
	for range attempts {
		p = core.Point{
			X: minX + spawn.Rand.Int32N(maxX-minX),
			Y: minY + spawn.Rand.Int32N(maxY-minY),
		}
		if !s.world.Positions.HasAnyAt(p) {
			break
		}
	}
	return p
}

// SpawnPlayer creates the head entity for id at pos facing dir and marks the player alive
// Callers check the alive-flag first; spawning a live player panics
// Segments are untouched and grow from the next movement
func SpawnPlayer(world *engine.World, id component.PlayerID, pos core.Point, dir component.Direction) core.Entity {
	state := world.Resources.Session
	if state.IsAlive(id) {
		panic(fmt.Sprintf("spawn of live player %d", id))
	}
	p := state.Lookup(id)
	respawn := p.Spawned

	head := engine.With(
		engine.With(
			engine.With(
				engine.WithPosition(world.NewEntity(), component.PositionAt(pos)),
				world.Components.Head, component.HeadComponent{
					Direction: dir,
					Player:    id,
					Previous:  component.PositionAt(pos),
					Born:      world.FrameNumber(),
				},
			),
			world.Components.Player, component.PlayerComponent{ID: id},
		),
		world.Components.Sprite, spriteFor(world, p.Name),
	).Build()

	state.MarkAlive(id, head)

	world.PushEvent(event.EventPlayerSpawned, &event.PlayerSpawnedPayload{
		Player:    id,
		Head:      head,
		At:        pos,
		Direction: dir,
		Respawn:   respawn,
	})
	world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundSpawn})

	log.Printf("[spawn] %s (%d) at (%d,%d) heading %s", p.Name, id, pos.X, pos.Y, dir)
	return head
}

// spriteFor resolves the visual through the asset bridge, a plain glyph when absent
func spriteFor(world *engine.World, name string) component.SpriteComponent {
	if assets := world.Resources.Assets; assets != nil && assets.Sprites != nil {
		return assets.Sprites.Sprite(name)
	}
	return component.SpriteComponent{Glyph: '@', Segment: 'o', Color: 0xffffff}
}
