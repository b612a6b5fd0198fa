package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/event"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/session"
)

var (
	crab     = engine.TestPlayer{ID: 1, Name: "Cookie Crab", Left: "a", Right: "s"}
	starfish = engine.TestPlayer{ID: 2, Name: "Sid Starfish", Left: "k", Right: "l"}
	jelly    = engine.TestPlayer{ID: 3, Name: "Jabby Jellyfish", Left: "v", Right: "b"}
)

// recorder captures gameplay events as they are dispatched
type recorder struct {
	events []event.GameEvent
}

func (r *recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerSpawned,
		event.EventPlayerDied,
		event.EventScoreAwarded,
		event.EventRoundOver,
	}
}

func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) of(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

type harness struct {
	t    *testing.T
	game *engine.GameContext
	keys *input.State
	rec  *recorder
}

// newHarness builds a game in the Game phase with the full pipeline installed
func newHarness(t *testing.T, width, height uint32, players ...engine.TestPlayer) *harness {
	t.Helper()
	game, keys := engine.NewTestGameContext(width, height, players...)
	Install(game)
	rec := &recorder{}
	game.Router.Register(rec)
	return &harness{t: t, game: game, keys: keys, rec: rec}
}

func (h *harness) world() *engine.World {
	return h.game.World
}

func (h *harness) spawn(id component.PlayerID, x, y int32, dir component.Direction) {
	SpawnPlayer(h.game.World, id, core.Point{X: x, Y: y}, dir)
}

// tick presses keys and runs one tick
func (h *harness) tick(keys ...input.Key) {
	for _, k := range keys {
		h.keys.Press(k)
	}
	h.game.Tick()
}

func (h *harness) ticks(n int) {
	for range n {
		h.tick()
	}
}

func (h *harness) head(id component.PlayerID) (core.Point, component.HeadComponent) {
	h.t.Helper()
	state := h.game.State()
	require.True(h.t, state.IsAlive(id), "player %d should be alive", id)
	e := state.Head(id)
	p, ok := h.world().Positions.GetPosition(e)
	require.True(h.t, ok)
	head, ok := h.world().Components.Head.GetComponent(e)
	require.True(h.t, ok)
	return p, head
}

func (h *harness) trail(id component.PlayerID) []core.Point {
	h.t.Helper()
	var out []core.Point
	for _, e := range h.game.State().Segments.Of(id) {
		p, ok := h.world().Positions.GetPosition(e)
		require.True(h.t, ok, "segment %d without position", e)
		out = append(out, p)
	}
	return out
}

func (h *harness) player(id component.PlayerID) session.Player {
	return h.game.State().Lookup(id)
}

func pt(x, y int32) core.Point {
	return core.Point{X: x, Y: y}
}
