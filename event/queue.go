package event

import (
	"sync/atomic"

	"github.com/ninjapiraatti/furious-purpose/parameter"
)

const queueMask = parameter.EventQueueSize - 1

type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// Queue is a fixed ring of pending events with many producers and one consumer
// Producers claim a write cursor with CAS; a slot is visible to Drain only once its ready flag is set
// When producers lap the reader the oldest unread events are lost
type Queue struct {
	slots [parameter.EventQueueSize]slot
	read  atomic.Uint64
	write atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev; safe from any goroutine
func (q *Queue) Push(ev GameEvent) {
	pos := q.write.Add(1) - 1
	s := &q.slots[pos&queueMask]
	s.ev = ev
	s.ready.Store(true)

	// Drag the reader forward past anything just overwritten
	if r := q.read.Load(); pos+1-r > parameter.EventQueueSize {
		q.read.CompareAndSwap(r, pos+1-parameter.EventQueueSize)
	}
}

// Drain removes and returns the published events in push order
// Stops at the first slot still being written; the rest waits for the next call
func (q *Queue) Drain() []GameEvent {
	for {
		from := q.read.Load()
		to := q.write.Load()
		if to == from {
			return nil
		}
		if to-from > parameter.EventQueueSize {
			from = to - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, to-from)
		for pos := from; pos < to; pos++ {
			s := &q.slots[pos&queueMask]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
			s.ready.Store(false)
		}

		if q.read.CompareAndSwap(from, from+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Pending is the number of unread events, capped at the ring size
func (q *Queue) Pending() int {
	from, to := q.read.Load(), q.write.Load()
	if to <= from {
		return 0
	}
	return int(min(to-from, parameter.EventQueueSize))
}

// Clear discards everything pending
func (q *Queue) Clear() {
	for q.Drain() != nil {
	}
}
