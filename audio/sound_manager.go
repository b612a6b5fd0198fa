package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ninjapiraatti/furious-purpose/core"
	"github.com/ninjapiraatti/furious-purpose/parameter"
)

// SoundManager plays one-shot effects through a beep mixer on the speaker
// Without an output device it runs silent; Play then reports false
type SoundManager struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	volume   float64
	mixer    *beep.Mixer
	lastPlay [core.SoundTypeCount]time.Time

	initialized atomic.Bool
	silent      atomic.Bool
	muted       atomic.Bool

	// now is swapped in tests to exercise the repeat gap
	now func() time.Time
}

// NewSoundManager creates a manager at the given volume (0..1); enabled=false starts muted
func NewSoundManager(volume float64, enabled bool) *SoundManager {
	sm := &SoundManager{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
	sm.muted.Store(!enabled)
	return sm
}

// Initialize opens the speaker; a missing device switches to silent mode instead of failing
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized.Load() {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		log.Printf("[audio] speaker unavailable, running silent: %v", err)
		sm.silent.Store(true)
		sm.initialized.Store(true)
		return nil
	}

	speaker.Play(sm.mixer)
	sm.initialized.Store(true)
	log.Printf("[audio] speaker at %d Hz", sm.rate)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized.Load() {
		return
	}
	if !sm.silent.Load() {
		speaker.Clear()
		speaker.Close()
	}
	sm.initialized.Store(false)
}

// Play queues a sound; false when muted, silent, throttled or unknown
// Repeats of the same sound closer than parameter.MinSoundGap are dropped
func (sm *SoundManager) Play(st core.SoundType) bool {
	if st < 0 || st >= core.SoundTypeCount {
		return false
	}
	if !sm.initialized.Load() || sm.silent.Load() || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	now := sm.now()
	if now.Sub(sm.lastPlay[st]) < parameter.MinSoundGap {
		sm.mu.Unlock()
		return false
	}
	sm.lastPlay[st] = now
	sm.mu.Unlock()

	s := CreateSound(st, sm.rate, sm.volume)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		cur := sm.muted.Load()
		if sm.muted.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// IsMuted reports whether sounds are suppressed
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsSilent reports whether no output device is available
func (sm *SoundManager) IsSilent() bool {
	return sm.silent.Load()
}
