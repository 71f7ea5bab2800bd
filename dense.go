package attrs

import (
	"slices"

	"github.com/oliverbestmann/attrs/internal/assert"
)

type denseSlot[V any] struct {
	value    V
	occupied bool
}

// Dense stores values in a slice indexed by Element.Offset.
//
// Pointers returned by Lookup and Find stay valid until the next Lookup that
// has to grow the slice.
type Dense[E Element, V any] struct {
	slots []denseSlot[V]
	len   int
}

func NewDense[E Element, V any]() *Dense[E, V] {
	return &Dense[E, V]{}
}

func (d *Dense[E, V]) Find(element E) *V {
	offset := element.Offset()
	if offset < 0 || offset >= len(d.slots) {
		return nil
	}

	slot := &d.slots[offset]
	if !slot.occupied {
		return nil
	}

	return &slot.value
}

func (d *Dense[E, V]) Lookup(element E) *V {
	offset := element.Offset()
	assert.NonNegative(offset)

	if offset >= len(d.slots) {
		d.slots = append(d.slots, make([]denseSlot[V], offset+1-len(d.slots))...)
	}

	slot := &d.slots[offset]
	if !slot.occupied {
		slot.occupied = true
		d.len += 1
	}

	return &slot.value
}

func (d *Dense[E, V]) LookupUnchecked(element E) *V {
	offset := element.Offset()

	assert.That(
		offset >= 0 && offset < len(d.slots) && d.slots[offset].occupied,
		"no value for offset %d", offset,
	)

	return &d.slots[offset].value
}

func (d *Dense[E, V]) Copy(src, dst E) {
	value := d.Find(src)
	if value == nil {
		return
	}

	// copy before lookup, growing the slice may move the source value
	copied := *value
	*d.Lookup(dst) = copied
}

func (d *Dense[E, V]) Erase(element E) {
	offset := element.Offset()
	if offset < 0 || offset >= len(d.slots) || !d.slots[offset].occupied {
		return
	}

	d.slots[offset] = denseSlot[V]{}
	d.len -= 1

	if offset != len(d.slots)-1 {
		return
	}

	// trim trailing empty slots so the slice ends with an occupied one
	end := offset
	for end > 0 && !d.slots[end-1].occupied {
		end -= 1
	}

	d.slots = d.slots[:end]
}

func (d *Dense[E, V]) Clear() {
	d.slots = nil
	d.len = 0
}

func (d *Dense[E, V]) Resize(n int) {
	if n > len(d.slots) {
		d.slots = slices.Grow(d.slots, n-len(d.slots))
	}
}

func (d *Dense[E, V]) Len() int {
	return d.len
}

func (d *Dense[E, V]) Kind() ContainerKind {
	return DenseContainer
}

// Span returns the length of the backing slice, including unoccupied slots.
func (d *Dense[E, V]) Span() int {
	return len(d.slots)
}
