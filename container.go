package attrs

// Container stores the values of one attribute, addressed by element.
//
// Both container policies implement the same operation set, so the rest of
// the storage does not care which one backs a given attribute.
type Container[E Element, V any] interface {
	// Find returns the value stored for element or nil. Never allocates.
	Find(element E) *V

	// Lookup returns the value stored for element, inserting the zero value
	// if none is present yet.
	Lookup(element E) *V

	// LookupUnchecked returns the value stored for element, assuming it exists.
	// Absence is only detected in builds with the attrsdebug tag.
	LookupUnchecked(element E) *V

	// Copy copies the value of src to dst. Does nothing if src has no value.
	Copy(src, dst E)

	// Erase removes the value of element, if any.
	Erase(element E)

	// Clear removes all values.
	Clear()

	// Resize hints the container to make room for n elements.
	Resize(n int)

	// Len returns the number of stored values.
	Len() int

	Kind() ContainerKind
}

func newContainer[V any, E Element](policy Policy) Container[E, V] {
	switch policy.Container {
	case DenseContainer:
		return NewDense[E, V]()
	default:
		return NewSparse[E, V](policy.resolvedAccess())
	}
}
