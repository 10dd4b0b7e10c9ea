// Package status is the process-wide metric facade.
// Components cache counter pointers at construction and bump them from hot paths.
package status

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
)

// Registry groups counters and flags
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// TotalCount returns the number of registered metrics of every kind
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Bools.Count()
}

// Snapshot copies every counter value
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}

// Components lists every component with at least one metric, sorted
func (r *Registry) Components() []string {
	out := append(r.Ints.Components(), r.Bools.Components()...)
	slices.Sort(out)
	return slices.Compact(out)
}

// Format renders the metrics under prefix as "name=value" pairs: counters first, then flags,
// each sorted by name
func (r *Registry) Format(prefix string) string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	r.Ints.Scope(prefix, func(name string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&b, "%s=%d", name, v.Load())
	})
	r.Bools.Scope(prefix, func(name string, v *atomic.Bool) {
		sep()
		fmt.Fprintf(&b, "%s=%t", name, v.Load())
	})
	return b.String()
}
