package attrs

// Attribute binds a storage and a key of one (element, key, value)
// combination. It caches the resolved container, so repeated access does not
// go through the type registry again.
//
// The cached container is dropped when the storage is cleared.
type Attribute[K Key, V any, E Element] struct {
	storage *Storage
	key     K

	container  Container[E, V]
	generation uint64
}

// AttributeOf returns a handle for the attribute stored under key.
// Creating the handle does not modify the storage.
func AttributeOf[K Key, V any, E Element](s *Storage, key K) *Attribute[K, V, E] {
	return &Attribute[K, V, E]{storage: s, key: key}
}

func (a *Attribute[K, V, E]) Key() K {
	return a.key
}

func (a *Attribute[K, V, E]) cached() (Container[E, V], bool) {
	if a.container != nil && a.generation == a.storage.generation {
		return a.container, true
	}

	container, ok := findContainer[K, V, E](a.storage, a.key)
	if !ok {
		a.container = nil
		return nil, false
	}

	a.container = container
	a.generation = a.storage.generation

	return container, true
}

func (a *Attribute[K, V, E]) resolve() Container[E, V] {
	if container, ok := a.cached(); ok {
		return container
	}

	a.container = ContainerOf[K, V, E](a.storage, a.key)
	a.generation = a.storage.generation

	return a.container
}

func (a *Attribute[K, V, E]) Lookup(element E) *V {
	return a.resolve().Lookup(element)
}

// Find returns the value of element, or nil. Never modifies the storage.
func (a *Attribute[K, V, E]) Find(element E) *V {
	container, ok := a.cached()
	if !ok {
		return nil
	}

	return container.Find(element)
}

func (a *Attribute[K, V, E]) Get(element E) (V, bool) {
	if value := a.Find(element); value != nil {
		return *value, true
	}

	var zero V
	return zero, false
}

func (a *Attribute[K, V, E]) Set(element E, value V) {
	*a.Lookup(element) = value
}

func (a *Attribute[K, V, E]) Has(element E) bool {
	return a.Find(element) != nil
}

func (a *Attribute[K, V, E]) Erase(element E) {
	if container, ok := a.cached(); ok {
		container.Erase(element)
	}
}

func (a *Attribute[K, V, E]) Copy(src, dst E) {
	if container, ok := a.cached(); ok {
		container.Copy(src, dst)
	}
}
