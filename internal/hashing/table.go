package hashing

// Table counts occurrences of position keys.
type Table struct {
	counts map[uint64]int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[uint64]int)}
}

// Add records one occurrence of key and returns its count so far.
func (t *Table) Add(key uint64) int {
	t.counts[key]++
	return t.counts[key]
}

// Count returns how often key has been added.
func (t *Table) Count(key uint64) int {
	return t.counts[key]
}
