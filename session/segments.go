package session

import (
	"slices"

	"github.com/ninjapiraatti/furious-purpose/component"
	"github.com/ninjapiraatti/furious-purpose/core"
)

// Segments maps each player to its trail entities in growth order, oldest first
type Segments struct {
	byPlayer map[component.PlayerID][]core.Entity
	total    int
}

// NewSegments creates an empty segment index
func NewSegments() *Segments {
	return &Segments{
		byPlayer: make(map[component.PlayerID][]core.Entity),
	}
}

// Append adds a segment to the tail of the player's list
func (s *Segments) Append(id component.PlayerID, e core.Entity) {
	s.byPlayer[id] = append(s.byPlayer[id], e)
	s.total++
}

// Of returns a copy of the player's segments, oldest first
func (s *Segments) Of(id component.PlayerID) []core.Entity {
	return slices.Clone(s.byPlayer[id])
}

// Len returns the player's trail length
func (s *Segments) Len(id component.PlayerID) int {
	return len(s.byPlayer[id])
}

// Total returns the segment count across all players
func (s *Segments) Total() int {
	return s.total
}

// Clear empties the player's list and returns the removed entities
func (s *Segments) Clear(id component.PlayerID) []core.Entity {
	removed := s.byPlayer[id]
	delete(s.byPlayer, id)
	s.total -= len(removed)
	return removed
}

// Players returns the ids holding at least one segment, ascending
func (s *Segments) Players() []component.PlayerID {
	ids := make([]component.PlayerID, 0, len(s.byPlayer))
	for id, list := range s.byPlayer {
		if len(list) > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Reset drops every list
func (s *Segments) Reset() {
	s.byPlayer = make(map[component.PlayerID][]core.Entity)
	s.total = 0
}
