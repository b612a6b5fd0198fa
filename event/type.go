package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the implicit zero event, never queued
	EventTick EventType = iota

	// === Lifecycle Event ===

	// EventPlayerSpawned signals a head entered the arena
	// Trigger: SpawnSystem | Payload: *PlayerSpawnedPayload
	EventPlayerSpawned

	// EventPlayerDied signals a head and its trail were removed
	// Trigger: DeathSystem | Payload: *PlayerDiedPayload
	EventPlayerDied

	// EventScoreAwarded signals a segment owner gained a point
	// Trigger: DeathSystem | Payload: *ScoreAwardedPayload
	EventScoreAwarded

	// EventRoundOver signals at most one spawned player remains alive
	// Trigger: RoundSystem | Payload: *RoundOverPayload
	EventRoundOver

	// === Session Event ===

	// EventGameReset clears world and session state for a new game
	// Trigger: GameContext.Reset | Payload: nil
	EventGameReset

	// EventGameStart signals the session entered the Game phase
	// Trigger: phase transition | Payload: nil
	EventGameStart

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent is a queued event stamped with the tick it was emitted on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
