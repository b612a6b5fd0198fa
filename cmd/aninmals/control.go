package main

import (
	"log"

	"github.com/ninjapiraatti/furious-purpose/engine"
	"github.com/ninjapiraatti/furious-purpose/input"
	"github.com/ninjapiraatti/furious-purpose/session"
)

// handleControl applies a host control key on the tick goroutine
// Returns true when the game should exit
func handleControl(game *engine.GameContext, k input.Key) bool {
	phase := game.Phase()

	switch k {
	case input.KeyQuit:
		return true

	case input.KeyStart:
		switch phase.Current() {
		case session.PhaseSplash:
			phase.Advance()
		case session.PhaseMainMenu, session.PhasePaused, session.PhaseGameOver:
			transition(phase, session.PhaseGame)
		}

	case input.KeyPause:
		switch phase.Current() {
		case session.PhaseGame:
			transition(phase, session.PhasePaused)
		case session.PhasePaused:
			transition(phase, session.PhaseGame)
		}

	case input.KeyMenu:
		if phase.CanTransition(session.PhaseMainMenu) {
			transition(phase, session.PhaseMainMenu)
		}

	case input.KeyMute:
		if audio := game.World.Resources.Audio; audio != nil && audio.Player != nil {
			muted := audio.Player.ToggleMute()
			game.World.Resources.Status.Flags.Get("audio.muted").Store(muted)
			log.Printf("[host] muted=%v", muted)
		}
	}
	return false
}

func transition(phase *session.PhaseMachine, to session.Phase) {
	if err := phase.Transition(to); err != nil {
		log.Printf("[host] %v", err)
	}
}
