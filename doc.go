/*
Package attrs attaches typed attributes to arbitrary elements.

An attribute is a value of type V stored for an element of type E under a
key of type K. Elements do not need to know which attributes will be attached
to them; they only provide a stable offset:

	type Vertex int

	func (v Vertex) Offset() int { return int(v) }

	storage := attrs.NewStorage(nil)

	attrs.Set(storage, "potential", Vertex(3), 1.5)
	attrs.Set(storage, "potential", Vertex(7), 2.5)

	potential := attrs.Find[string, float64](storage, "potential", Vertex(3))

Every (element, key, value) type combination gets its own ContainerMap, which
holds one Container per key. Containers come in two flavours, selected per
combination with a Policies table:

  - Sparse stores values in a map (the default).
  - Dense stores values in a slice indexed by the element offset.

The storage additionally indexes its maps by element type. This allows
removing or copying all attributes of an element without naming a single
key or value type:

	// a cell was split in two, the new cell inherits everything
	attrs.CopyAllFromElement(storage, oldCell, newCell)

	// the vertex was removed from the mesh
	attrs.EraseAllFromElement(storage, Vertex(3))

Find and Get never modify the storage. Lookup and Set create the backing
containers on demand.
*/
package attrs
