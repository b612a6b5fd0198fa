package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// ClockScheduler drives GameContext.Tick on a fixed interval
// It is the sole scheduler of the tick goroutine: host commands posted from
// other goroutines run there, between ticks, so session state keeps one writer
type ClockScheduler struct {
	game     *GameContext
	interval time.Duration

	commands chan func()
	onFrame  func()

	tickCount atomic.Uint64
	running   atomic.Bool
}

// NewClockScheduler creates a scheduler for game; onFrame runs after every tick (may be nil)
func NewClockScheduler(game *GameContext, onFrame func()) *ClockScheduler {
	return &ClockScheduler{
		game:     game,
		interval: game.Interval(),
		commands: make(chan func(), 64),
		onFrame:  onFrame,
	}
}

// Post queues fn to run on the tick goroutine before the next tick
// Safe for concurrent use; returns false when the command buffer is full
func (cs *ClockScheduler) Post(fn func()) bool {
	select {
	case cs.commands <- fn:
		return true
	default:
		return false
	}
}

// TickCount returns the number of scheduler ticks, including non-game phases
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// IsRunning reports whether Run is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// Run ticks until ctx is cancelled; cancellation is the only way to stop
func (cs *ClockScheduler) Run(ctx context.Context) error {
	cs.running.Store(true)
	defer cs.running.Store(false)

	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-cs.commands:
			fn()
		case <-ticker.C:
			cs.drainCommands()
			cs.game.Tick()
			cs.tickCount.Add(1)
			if cs.onFrame != nil {
				cs.onFrame()
			}
		}
	}
}

func (cs *ClockScheduler) drainCommands() {
	for {
		select {
		case fn := <-cs.commands:
			fn()
		default:
			return
		}
	}
}
