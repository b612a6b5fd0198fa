package status

import (
	"slices"
	"sync"
)

// Table maps a dotted name to a cell of type T
// A cell pointer is stable once created, so callers cache it and skip the lock afterwards
type Table[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{cells: make(map[string]*T)}
}

// Get returns the cell for name, allocating a zero cell on first use
func (t *Table[T]) Get(name string) *T {
	t.mu.RLock()
	cell := t.cells[name]
	t.mu.RUnlock()
	if cell != nil {
		return cell
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if cell = t.cells[name]; cell == nil {
		cell = new(T)
		t.cells[name] = cell
	}
	return cell
}

func (t *Table[T]) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.cells[name]
	return ok
}

// Each visits cells in name order
func (t *Table[T]) Each(fn func(name string, cell *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.cells))
	for name := range t.cells {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fn(name, t.cells[name])
	}
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cells)
}
