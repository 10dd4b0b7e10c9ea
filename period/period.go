// Package period provides cyclic value tables addressed by a stepping cursor.
package period

// Table is a fixed, non-empty sequence of values with a wrapping cursor.
// The cursor is always in [0, Len()).
type Table struct {
	values []float64
	index  int
}

// New creates a table positioned at its first value. Panics on an empty table.
func New(values ...float64) *Table {
	if len(values) == 0 {
		panic("period: empty table")
	}
	v := make([]float64, len(values))
	copy(v, values)
	return &Table{values: v}
}

// Up advances the cursor one step and returns the value now under it
func (t *Table) Up() float64 {
	t.index = (t.index + 1) % len(t.values)
	return t.Value()
}

// Down retreats the cursor one step and returns the value now under it
func (t *Table) Down() float64 {
	t.index = (t.index + len(t.values) - 1) % len(t.values)
	return t.Value()
}

// Value returns the current value without moving
func (t *Table) Value() float64 {
	return t.values[t.index]
}

// Index returns the cursor position
func (t *Table) Index() int {
	return t.index
}

// Len returns the cycle length
func (t *Table) Len() int {
	return len(t.values)
}

// Reset moves the cursor back to the first value
func (t *Table) Reset() {
	t.index = 0
}
