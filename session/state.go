package session

import (
	"fmt"
	"log"
	"slices"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
)

// State is the explicit per-session game state injected into every system
// Single writer: only systems running inside a tick mutate it
type State struct {
	Arena    Arena
	Segments *Segments

	// Judged this tick by movement, drained by death
	Casualties []Casualty

	ScoreRule     ScoreRule
	RespawnPolicy RespawnPolicy

	players map[component.PlayerID]*Player
	order   []component.PlayerID
	heads   map[component.PlayerID]core.Entity

	warned map[component.PlayerID]bool
}

// NewState creates a state with the canonical score and respawn policies
func NewState(arena Arena) *State {
	return &State{
		Arena:         arena,
		Segments:      NewSegments(),
		ScoreRule:     AwardOtherOwner,
		RespawnPolicy: PersistScore,
		players:       make(map[component.PlayerID]*Player),
		heads:         make(map[component.PlayerID]core.Entity),
		warned:        make(map[component.PlayerID]bool),
	}
}

// Register adds a roster participant; ids and names must be unique
func (s *State) Register(id component.PlayerID, name string) error {
	if id == component.NoPlayer {
		return fmt.Errorf("player %q: id 0 is reserved", name)
	}
	if _, ok := s.players[id]; ok {
		return fmt.Errorf("player id %d already registered", id)
	}
	for _, p := range s.players {
		if p.Name == name {
			return fmt.Errorf("player name %q already registered", name)
		}
	}
	s.players[id] = &Player{ID: id, Name: name}
	s.order = append(s.order, id)
	slices.Sort(s.order)
	return nil
}

// IDs returns every registered player id in ascending order, the tick processing order
func (s *State) IDs() []component.PlayerID {
	return slices.Clone(s.order)
}

// Player returns the mutable record for id
func (s *State) Player(id component.PlayerID) (*Player, bool) {
	p, ok := s.players[id]
	return p, ok
}

// Lookup returns a copy of the record for id, falling back to UnknownPlayer
// Unknown ids are logged once instead of failing the caller's tick
func (s *State) Lookup(id component.PlayerID) Player {
	if p, ok := s.players[id]; ok {
		return *p
	}
	if !s.warned[id] {
		s.warned[id] = true
		log.Printf("[session] unknown player id %d, using fallback record", id)
	}
	fallback := UnknownPlayer
	fallback.ID = id
	return fallback
}

// IsAlive reports the alive-flag, false for unknown ids
func (s *State) IsAlive(id component.PlayerID) bool {
	p, ok := s.players[id]
	return ok && p.Alive
}

// Head returns the player's head entity, 0 when not alive
func (s *State) Head(id component.PlayerID) core.Entity {
	return s.heads[id]
}

// MarkAlive records a spawn, applying the respawn policy to returning players
func (s *State) MarkAlive(id component.PlayerID, head core.Entity) {
	p, ok := s.players[id]
	if !ok {
		panic(fmt.Sprintf("spawn of unregistered player %d", id))
	}
	if p.Spawned {
		*p = s.RespawnPolicy(*p)
	}
	p.Alive = true
	p.Spawned = true
	s.heads[id] = head
}

// MarkDead clears the alive-flag and head reference
func (s *State) MarkDead(id component.PlayerID) {
	if p, ok := s.players[id]; ok {
		p.Alive = false
		p.Deaths++
	}
	delete(s.heads, id)
}

// Award applies the score rule to a casualty, returning true when a point was given
func (s *State) Award(c Casualty) bool {
	if !s.ScoreRule(c) {
		return false
	}
	killer, ok := s.players[c.Killer]
	if !ok {
		s.Lookup(c.Killer)
		return false
	}
	killer.Score++
	return true
}

// AliveCount returns the number of players with a live head
func (s *State) AliveCount() int {
	n := 0
	for _, p := range s.players {
		if p.Alive {
			n++
		}
	}
	return n
}

// SpawnedCount returns the number of players that entered the arena at least once
func (s *State) SpawnedCount() int {
	n := 0
	for _, p := range s.players {
		if p.Spawned {
			n++
		}
	}
	return n
}

// Standings returns the score board, highest score first, ties by id
func (s *State) Standings() []Standing {
	rows := make([]Standing, 0, len(s.order))
	for _, id := range s.order {
		p := s.players[id]
		rows = append(rows, Standing{ID: id, Name: p.Name, Score: p.Score, Alive: p.Alive})
	}
	slices.SortStableFunc(rows, func(a, b Standing) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return int(a.ID) - int(b.ID)
	})
	return rows
}

// Reset returns every player to unspawned with zero score and drops all segments
func (s *State) Reset() {
	for _, p := range s.players {
		*p = Player{ID: p.ID, Name: p.Name}
	}
	s.heads = make(map[component.PlayerID]core.Entity)
	s.Segments.Reset()
	s.Casualties = s.Casualties[:0]
}
