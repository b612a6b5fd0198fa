package component

// PlayerID is the stable participant identifier assigned from the roster
// It is the join key for segments, scores and collision attribution
// Names are display-only and never branch control flow
type PlayerID uint8

// NoPlayer marks an unattributed event (bounds death, no killer)
const NoPlayer PlayerID = 0

// PlayerComponent tags head and segment entities with their owner
type PlayerComponent struct {
	ID PlayerID
}

// HeadComponent holds the movable head state
type HeadComponent struct {
	Direction Direction
	Player    PlayerID

	// Cell occupied at the start of the current tick, the growth site
	Previous PositionComponent

	// Tick the head was spawned on; spawn keys do not also turn that tick
	Born int64
}

// SegmentComponent marks an immobile trail entity
type SegmentComponent struct {
	Owner PlayerID
	Tick  int64 // Tick the segment was laid
}

// SpriteComponent carries the opaque visual handle resolved at spawn
type SpriteComponent struct {
	Glyph   rune
	Segment rune
	Color   uint32 // 0xRRGGBB
}
