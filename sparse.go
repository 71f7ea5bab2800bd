package attrs

import (
	"github.com/oliverbestmann/attrs/internal/assert"
)

// sparseIdentity addresses a value within one container. Only one of the
// fields is set, depending on the access mode.
type sparseIdentity[E Element] struct {
	offset  int
	element E
}

// Sparse stores values in a map keyed by either the element offset or the
// element itself. A Sparse belongs to exactly one attribute key.
//
// Pointers returned by Lookup and Find stay valid until the value is erased.
type Sparse[E Element, V any] struct {
	access AccessMode
	values map[sparseIdentity[E]]*V
}

func NewSparse[E Element, V any](access AccessMode) *Sparse[E, V] {
	return &Sparse[E, V]{
		access: access,
		values: map[sparseIdentity[E]]*V{},
	}
}

func (s *Sparse[E, V]) identityOf(element E) sparseIdentity[E] {
	if s.access == ByOffset {
		return sparseIdentity[E]{offset: element.Offset()}
	}

	return sparseIdentity[E]{element: element}
}

func (s *Sparse[E, V]) Find(element E) *V {
	return s.values[s.identityOf(element)]
}

func (s *Sparse[E, V]) Lookup(element E) *V {
	id := s.identityOf(element)

	value, ok := s.values[id]
	if !ok {
		value = new(V)
		s.values[id] = value
	}

	return value
}

func (s *Sparse[E, V]) LookupUnchecked(element E) *V {
	value := s.values[s.identityOf(element)]
	assert.That(value != nil, "no value for element %v", element)
	return value
}

func (s *Sparse[E, V]) Copy(src, dst E) {
	value := s.Find(src)
	if value == nil {
		return
	}

	*s.Lookup(dst) = *value
}

func (s *Sparse[E, V]) Erase(element E) {
	delete(s.values, s.identityOf(element))
}

func (s *Sparse[E, V]) Clear() {
	clear(s.values)
}

func (s *Sparse[E, V]) Resize(int) {
}

func (s *Sparse[E, V]) Len() int {
	return len(s.values)
}

func (s *Sparse[E, V]) Kind() ContainerKind {
	return SparseContainer
}

// Access returns the access mode used to address elements.
func (s *Sparse[E, V]) Access() AccessMode {
	return s.access
}
