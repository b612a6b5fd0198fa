package session

import "fmt"

// Phase is the screen/session state controlling whether gameplay systems run
type Phase uint8

const (
	PhaseLoading Phase = iota
	PhaseSplash
	PhaseMainMenu
	PhaseGame
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseSplash:
		return "Splash"
	case PhaseMainMenu:
		return "MainMenu"
	case PhaseGame:
		return "Game"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// phaseEdges lists the legal transitions
var phaseEdges = map[Phase][]Phase{
	PhaseLoading:  {PhaseSplash},
	PhaseSplash:   {PhaseMainMenu},
	PhaseMainMenu: {PhaseGame},
	PhaseGame:     {PhasePaused, PhaseGameOver, PhaseMainMenu},
	PhasePaused:   {PhaseGame, PhaseMainMenu},
	PhaseGameOver: {PhaseMainMenu, PhaseGame},
}

// PhaseListener observes transitions after they are applied
type PhaseListener func(from, to Phase)

// PhaseMachine tracks the current phase and validates transitions
type PhaseMachine struct {
	current   Phase
	listeners []PhaseListener
}

// NewPhaseMachine starts in Loading
func NewPhaseMachine() *PhaseMachine {
	return &PhaseMachine{current: PhaseLoading}
}

// Current returns the active phase
func (m *PhaseMachine) Current() Phase {
	return m.current
}

// InGame reports whether gameplay systems may run
func (m *PhaseMachine) InGame() bool {
	return m.current == PhaseGame
}

// OnTransition registers a listener invoked after each successful transition
func (m *PhaseMachine) OnTransition(fn PhaseListener) {
	m.listeners = append(m.listeners, fn)
}

// CanTransition reports whether to is reachable from the current phase
func (m *PhaseMachine) CanTransition(to Phase) bool {
	for _, next := range phaseEdges[m.current] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves to the target phase or returns an error for illegal edges
func (m *PhaseMachine) Transition(to Phase) error {
	if !m.CanTransition(to) {
		return fmt.Errorf("illegal phase transition %s -> %s", m.current, to)
	}
	from := m.current
	m.current = to
	for _, fn := range m.listeners {
		fn(from, to)
	}
	return nil
}

// Advance walks the boot sequence Loading → Splash → MainMenu → Game
// A no-op once the machine has left the boot phases
func (m *PhaseMachine) Advance() {
	switch m.current {
	case PhaseLoading:
		_ = m.Transition(PhaseSplash)
	case PhaseSplash:
		_ = m.Transition(PhaseMainMenu)
	case PhaseMainMenu:
		_ = m.Transition(PhaseGame)
	}
}
