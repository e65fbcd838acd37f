package hashing

import (
	"sync"
)

// ThreadSafePerftTable wraps PerftTable with mutex protection for concurrent access.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.RWMutex
}

// NewThreadSafePerftTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Lookup returns the stored node count for signature at depth.
// It takes the write lock because lookups update the hit counters.
func (t *ThreadSafePerftTable) Lookup(signature uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(signature, depth)
}

// Store records a node count.
func (t *ThreadSafePerftTable) Store(signature uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(signature, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafePerftTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
