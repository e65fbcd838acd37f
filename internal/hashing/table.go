package hashing

// perftKey identifies a stored node count.
type perftKey struct {
	signature uint64
	depth     int
}

// PerftTable memoises perft node counts by position signature and depth.
type PerftTable struct {
	entries map[perftKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftTable creates a new table.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[perftKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for signature at depth.
func (t *PerftTable) Lookup(signature uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[perftKey{signature, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records a node count. Once the table is full new entries are dropped.
func (t *PerftTable) Store(signature uint64, depth int, nodes uint64) {
	key := perftKey{signature, depth}
	if _, ok := t.entries[key]; !ok && t.IsFull() {
		return
	}
	t.entries[key] = nodes
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *PerftTable) Misses() int {
	return t.misses
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.entries = make(map[perftKey]uint64)
	t.hits = 0
	t.misses = 0
}
