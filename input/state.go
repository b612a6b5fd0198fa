package input

import "sync"

// Source is the read-only per-tick view of the keyboard consumed by systems
type Source interface {
	// Held reports whether the key is currently down
	Held(k Key) bool

	// JustPressed reports whether the key went down since the previous sample
	JustPressed(k Key) bool
}

// Sampler is implemented by sources that latch device events into tick state
type Sampler interface {
	Sample()
}

// State latches press/release events from the device goroutine and exposes
// them as stable per-tick snapshots after Sample
type State struct {
	mu sync.Mutex

	// Written by the device side
	down    map[Key]bool
	pending map[Key]bool

	// Read by systems, replaced on Sample
	held    map[Key]bool
	pressed map[Key]bool

	// Terminals report no key-up; when set, Sample releases every key
	autoRelease bool
}

// NewState creates an empty key state
// autoRelease treats every press as a tap, for devices without release events
func NewState(autoRelease bool) *State {
	return &State{
		down:        make(map[Key]bool),
		pending:     make(map[Key]bool),
		held:        make(map[Key]bool),
		pressed:     make(map[Key]bool),
		autoRelease: autoRelease,
	}
}

// Press records a key-down; a repeat of an already held key is not a new press
func (s *State) Press(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.down[k] {
		s.pending[k] = true
	}
	s.down[k] = true
}

// Release records a key-up
func (s *State) Release(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.down, k)
}

// Sample publishes the events received since the previous sample
func (s *State) Sample() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pressed = s.pending
	s.pending = make(map[Key]bool)

	held := make(map[Key]bool, len(s.down)+len(s.pressed))
	for k := range s.down {
		held[k] = true
	}
	for k := range s.pressed {
		held[k] = true
	}
	s.held = held

	if s.autoRelease {
		s.down = make(map[Key]bool)
	}
}

// Held reports whether the key was down at the last sample
func (s *State) Held(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[k]
}

// JustPressed reports whether the key went down in the last sampled interval
func (s *State) JustPressed(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pressed[k]
}
