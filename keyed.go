package attrs

import (
	"iter"
	"maps"
)

// ContainerMap holds one Container per attribute key, created on demand.
type ContainerMap[K Key, V any, E Element] struct {
	policy     Policy
	containers map[K]Container[E, V]
}

func newContainerMap[K Key, V any, E Element](policy Policy) *ContainerMap[K, V, E] {
	return &ContainerMap[K, V, E]{
		policy:     policy,
		containers: map[K]Container[E, V]{},
	}
}

// Get returns the container registered for key, creating it on first use.
func (m *ContainerMap[K, V, E]) Get(key K) Container[E, V] {
	container, ok := m.containers[key]
	if !ok {
		container = newContainer[V, E](m.policy)
		m.containers[key] = container
	}

	return container
}

// Find returns the container registered for key without creating it.
func (m *ContainerMap[K, V, E]) Find(key K) (Container[E, V], bool) {
	container, ok := m.containers[key]
	return container, ok
}

// Len returns the number of keys with a container.
func (m *ContainerMap[K, V, E]) Len() int {
	return len(m.containers)
}

func (m *ContainerMap[K, V, E]) Keys() iter.Seq[K] {
	return maps.Keys(m.containers)
}

func (m *ContainerMap[K, V, E]) Policy() Policy {
	return m.policy
}

// Entries returns the number of values stored across all keys.
func (m *ContainerMap[K, V, E]) Entries() int {
	var count int
	for _, container := range m.containers {
		count += container.Len()
	}

	return count
}

func (m *ContainerMap[K, V, E]) release() {
	for _, container := range m.containers {
		container.Clear()
	}

	clear(m.containers)
}
