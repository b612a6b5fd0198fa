package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
)

func newRoster(t *testing.T) *State {
	t.Helper()
	s := NewState(MustArena(10, 10))
	require.NoError(t, s.Register(2, "Sid Starfish"))
	require.NoError(t, s.Register(1, "Cookie Crab"))
	require.NoError(t, s.Register(3, "Foo Frog"))
	return s
}

func TestRegister(t *testing.T) {
	s := newRoster(t)

	assert.Equal(t, []component.PlayerID{1, 2, 3}, s.IDs())
	assert.Error(t, s.Register(component.NoPlayer, "Nobody"))
	assert.Error(t, s.Register(2, "Another"))
	assert.Error(t, s.Register(4, "Foo Frog"))

	p, ok := s.Player(1)
	require.True(t, ok)
	assert.Equal(t, "Cookie Crab", p.Name)
	assert.False(t, p.Alive)
	assert.False(t, p.Spawned)
}

func TestLookupFallback(t *testing.T) {
	s := newRoster(t)

	got := s.Lookup(9)
	assert.Equal(t, component.PlayerID(9), got.ID)
	assert.Equal(t, UnknownPlayer.Name, got.Name)
	assert.True(t, s.warned[9])

	// Copies do not alias the record
	got = s.Lookup(1)
	got.Score = 50
	assert.Zero(t, s.Lookup(1).Score)

	assert.False(t, s.IsAlive(9))
}

func TestAliveLifecycle(t *testing.T) {
	s := newRoster(t)

	s.MarkAlive(1, 42)
	assert.True(t, s.IsAlive(1))
	assert.Equal(t, core.Entity(42), s.Head(1))
	assert.Equal(t, 1, s.AliveCount())
	assert.Equal(t, 1, s.SpawnedCount())

	s.MarkDead(1)
	assert.False(t, s.IsAlive(1))
	assert.Zero(t, s.Head(1))
	assert.Equal(t, uint32(1), s.Lookup(1).Deaths)
	assert.Equal(t, 0, s.AliveCount())
	assert.Equal(t, 1, s.SpawnedCount())

	assert.Panics(t, func() { s.MarkAlive(7, 1) })
}

func TestRespawnPolicy(t *testing.T) {
	s := newRoster(t)
	s.MarkAlive(2, 1)
	s.players[2].Score = 4
	s.MarkDead(2)

	s.MarkAlive(2, 2)
	assert.Equal(t, uint32(4), s.Lookup(2).Score, "score persists by default")
	s.MarkDead(2)

	s.RespawnPolicy = ResetScore
	s.MarkAlive(2, 3)
	assert.Zero(t, s.Lookup(2).Score)
	assert.Equal(t, uint32(2), s.Lookup(2).Deaths)
}

func TestAward(t *testing.T) {
	tests := []struct {
		name string
		c    Casualty
		want bool
	}{
		{"enemy segment", Casualty{Victim: 1, Cause: CauseSegment, Killer: 2}, true},
		{"own segment", Casualty{Victim: 1, Cause: CauseSelf, Killer: 1}, false},
		{"own segment as segment cause", Casualty{Victim: 1, Cause: CauseSegment, Killer: 1}, false},
		{"bounds", Casualty{Victim: 1, Cause: CauseBounds}, false},
		{"unknown owner", Casualty{Victim: 1, Cause: CauseSegment, Killer: 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRoster(t)
			assert.Equal(t, tt.want, s.Award(tt.c))

			var total uint32
			for _, id := range s.IDs() {
				total += s.Lookup(id).Score
			}
			if tt.want {
				assert.Equal(t, uint32(1), total)
				assert.Equal(t, uint32(1), s.Lookup(tt.c.Killer).Score)
			} else {
				assert.Zero(t, total)
			}
		})
	}
}

func TestStandings(t *testing.T) {
	s := newRoster(t)
	s.players[3].Score = 2
	s.players[2].Score = 2
	s.MarkAlive(1, 5)

	rows := s.Standings()
	require.Len(t, rows, 3)
	assert.Equal(t, []component.PlayerID{2, 3, 1}, []component.PlayerID{rows[0].ID, rows[1].ID, rows[2].ID})
	assert.Equal(t, "Sid Starfish", rows[0].Name)
	assert.True(t, rows[2].Alive)
}

func TestStateReset(t *testing.T) {
	s := newRoster(t)
	s.MarkAlive(1, 5)
	s.players[1].Score = 3
	s.Segments.Append(1, 6)
	s.Casualties = append(s.Casualties, Casualty{Victim: 1, Cause: CauseBounds})

	s.Reset()

	p := s.Lookup(1)
	assert.Equal(t, Player{ID: 1, Name: "Cookie Crab"}, p)
	assert.Zero(t, s.Head(1))
	assert.Zero(t, s.Segments.Total())
	assert.Empty(t, s.Casualties)
	assert.Equal(t, []component.PlayerID{1, 2, 3}, s.IDs())
}

func TestRespawnPolicyByName(t *testing.T) {
	for _, name := range []string{"", "persist", "reset"} {
		_, ok := RespawnPolicyByName(name)
		assert.True(t, ok, name)
	}
	_, ok := RespawnPolicyByName("double")
	assert.False(t, ok)
}

func TestDeathCauseString(t *testing.T) {
	assert.Equal(t, "bounds", CauseBounds.String())
	assert.Equal(t, "self", CauseSelf.String())
	assert.Equal(t, "segment", CauseSegment.String())
	assert.Equal(t, "none", DeathCause(0).String())
}
