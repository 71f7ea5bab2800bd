package attrs

import (
	"github.com/oliverbestmann/attrs/internal/typekey"
)

// Lookup returns the value of element under key, inserting the zero value
// if none exists yet. Lookup always succeeds.
func Lookup[K Key, V any, E Element](s *Storage, key K, element E) *V {
	return ContainerOf[K, V, E](s, key).Lookup(element)
}

// LookupUnchecked is like Lookup but assumes the value already exists.
// Calling it for a missing value is a programming error that is only
// detected in builds with the attrsdebug tag.
func LookupUnchecked[K Key, V any, E Element](s *Storage, key K, element E) *V {
	return ContainerOf[K, V, E](s, key).LookupUnchecked(element)
}

// Find returns the value of element under key, or nil. Find never modifies
// the storage.
func Find[K Key, V any, E Element](s *Storage, key K, element E) *V {
	container, ok := findContainer[K, V, E](s, key)
	if !ok {
		return nil
	}

	return container.Find(element)
}

// Get returns a copy of the value of element under key and whether it exists.
func Get[K Key, V any, E Element](s *Storage, key K, element E) (V, bool) {
	if value := Find[K, V, E](s, key, element); value != nil {
		return *value, true
	}

	var zero V
	return zero, false
}

// Set stores value for element under key.
func Set[K Key, V any, E Element](s *Storage, key K, element E, value V) {
	*Lookup[K, V, E](s, key, element) = value
}

// Has reports whether element has a value under key.
func Has[K Key, V any, E Element](s *Storage, key K, element E) bool {
	return Find[K, V, E](s, key, element) != nil
}

// Erase removes the value of element under key.
func Erase[K Key, V any, E Element](s *Storage, key K, element E) {
	if container, ok := findContainer[K, V, E](s, key); ok {
		container.Erase(element)
	}
}

// Copy copies the value of src under key to dst. Does nothing if src has
// no value.
func Copy[K Key, V any, E Element](s *Storage, key K, src, dst E) {
	if container, ok := findContainer[K, V, E](s, key); ok {
		container.Copy(src, dst)
	}
}

// Reserve makes room for n elements in the container of key.
func Reserve[K Key, V any, E Element](s *Storage, key K, n int) {
	ContainerOf[K, V, E](s, key).Resize(n)
}

// EraseAllFromElement removes every attribute of element, across every key
// and value type ever used with elements of type E.
func EraseAllFromElement[E Element](s *Storage, element E) {
	for _, acc := range s.byElement[typekey.TypeIdOf[E]()] {
		acc.EraseAll(element)
	}
}

// EraseAllFromElementWithKey removes every attribute of element stored
// under a key of type K.
func EraseAllFromElementWithKey[K Key, E Element](s *Storage, element E) {
	for _, acc := range s.byElementKey[keyPairOf[K, E]()] {
		acc.EraseAll(element)
	}
}

// EraseAllFromElementForKey removes every attribute of element stored
// under key, regardless of the value type.
func EraseAllFromElementForKey[K Key, E Element](s *Storage, element E, key K) {
	for _, acc := range s.byElementKey[keyPairOf[K, E]()] {
		acc.EraseKey(element, key)
	}
}

// EraseAllFromElementWithValueType removes every attribute of element with
// a value of type V.
func EraseAllFromElementWithValueType[V any, E Element](s *Storage, element E) {
	for _, acc := range s.byElementValue[valuePairOf[V, E]()] {
		acc.EraseAll(element)
	}
}

// CopyAllFromElement copies every attribute of src to dst, across every key
// and value type ever used with elements of type E.
func CopyAllFromElement[E Element](s *Storage, src, dst E) {
	for _, acc := range s.byElement[typekey.TypeIdOf[E]()] {
		acc.CopyAll(src, dst)
	}
}

// CopyAllFromElementWithKey copies every attribute of src stored under a
// key of type K to dst.
func CopyAllFromElementWithKey[K Key, E Element](s *Storage, src, dst E) {
	for _, acc := range s.byElementKey[keyPairOf[K, E]()] {
		acc.CopyAll(src, dst)
	}
}

// CopyAllFromElementForKey copies every attribute of src stored under key
// to dst, regardless of the value type.
func CopyAllFromElementForKey[K Key, E Element](s *Storage, src, dst E, key K) {
	for _, acc := range s.byElementKey[keyPairOf[K, E]()] {
		acc.CopyKey(src, dst, key)
	}
}

// CopyAllFromElementWithValueType copies every attribute of src with a
// value of type V to dst.
func CopyAllFromElementWithValueType[V any, E Element](s *Storage, src, dst E) {
	for _, acc := range s.byElementValue[valuePairOf[V, E]()] {
		acc.CopyAll(src, dst)
	}
}

func keyPairOf[K Key, E Element]() typekey.Pair {
	return typekey.Pair{Element: typekey.TypeIdOf[E](), Other: typekey.TypeIdOf[K]()}
}

func valuePairOf[V any, E Element]() typekey.Pair {
	return typekey.Pair{Element: typekey.TypeIdOf[E](), Other: typekey.TypeIdOf[V]()}
}
