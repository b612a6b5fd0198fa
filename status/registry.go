// Package status holds the live counters and flags behind the status line
package status

import "sync/atomic"

// Registry groups the status tables by cell kind
// Systems resolve their cells once at Init and write them every tick
type Registry struct {
	Flags    *Table[atomic.Bool]
	Counters *Table[atomic.Int64]
	Labels   *Table[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Flags:    NewTable[atomic.Bool](),
		Counters: NewTable[atomic.Int64](),
		Labels:   NewTable[Label](),
	}
}

// Size returns the number of cells across all tables
func (r *Registry) Size() int {
	return r.Flags.Len() + r.Counters.Len() + r.Labels.Len()
}
