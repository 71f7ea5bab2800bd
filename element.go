package attrs

// Element is the constraint for types attributes can be attached to.
//
// Offset must return a small, stable and non-negative integer that is unique
// among all live elements of the same type. Dense containers index by it
// directly, sparse containers use it when configured with ByOffset.
type Element interface {
	comparable
	Offset() int
}

// Key is the constraint for keys that distinguish independent attributes
// of the same element and value type.
type Key interface {
	comparable
}
