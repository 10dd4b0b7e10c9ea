package status

import (
	"slices"
	"strings"
	"sync"
)

// MetricMap holds metric cells of type T under dotted "component.name" keys.
// Keys stay sorted as they are registered, so the per-frame HUD walk never sorts.
// Only registration locks for writing; cell values are updated through the returned pointer.
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
	keys  []string
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, registering a zero cell on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	cell := m.cells[key]
	m.mu.RUnlock()
	if cell != nil {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell = m.cells[key]; cell == nil {
		cell = new(T)
		m.cells[key] = cell
		i, _ := slices.BinarySearch(m.keys, key)
		m.keys = slices.Insert(m.keys, i, key)
	}
	return cell
}

func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cells[key] != nil
}

// Range visits every cell in key order
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	m.Scope("", fn)
}

// Scope visits the cells under prefix in key order, passing each key with prefix trimmed.
// Scope("engine.", fn) walks one component's metrics.
func (m *MetricMap[T]) Scope(prefix string, fn func(name string, cell *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, _ := slices.BinarySearch(m.keys, prefix)
	for ; i < len(m.keys) && strings.HasPrefix(m.keys[i], prefix); i++ {
		fn(m.keys[i][len(prefix):], m.cells[m.keys[i]])
	}
}

// Components lists the distinct key prefixes before the first dot
func (m *MetricMap[T]) Components() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []string
	for _, k := range m.keys {
		comp, _, _ := strings.Cut(k, ".")
		if len(out) == 0 || out[len(out)-1] != comp {
			out = append(out, comp)
		}
	}
	return out
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}
