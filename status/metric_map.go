package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap hands out stable pointers to named metrics of type T
// Lookups lock; callers cache the pointer and update it lock-free
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	ptr, ok := m.items[key]
	if !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Range visits every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	keys := slices.Sorted(maps.Keys(m.items))
	ptrs := make([]*T, len(keys))
	for i, k := range keys {
		ptrs[i] = m.items[k]
	}
	m.mu.Unlock()

	for i, k := range keys {
		fn(k, ptrs[i])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
