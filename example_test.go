package attrs_test

import (
	"fmt"

	"github.com/oliverbestmann/attrs"
)

type Vertex int

func (v Vertex) Offset() int {
	return int(v)
}

type Cell int

func (c Cell) Offset() int {
	return int(c)
}

func Example() {
	storage := attrs.NewStorage(nil)

	attrs.Set(storage, "potential", Vertex(3), 1.5)
	attrs.Set(storage, "potential", Vertex(7), 2.5)

	fmt.Println(*attrs.Find[string, float64](storage, "potential", Vertex(3)))
	fmt.Println(*attrs.Find[string, float64](storage, "potential", Vertex(7)))
	fmt.Println(attrs.Find[string, float64](storage, "potential", Vertex(0)) == nil)

	attrs.EraseAllFromElement(storage, Vertex(3))

	fmt.Println(attrs.Find[string, float64](storage, "potential", Vertex(3)) == nil)
	fmt.Println(*attrs.Find[string, float64](storage, "potential", Vertex(7)))

	// Output:
	// 1.5
	// 2.5
	// true
	// true
	// 2.5
}

func ExampleCopyAllFromElement() {
	storage := attrs.NewStorage(nil)

	attrs.Set(storage, "role", Cell(1), "contact")
	attrs.Set(storage, "doping", Cell(1), 1e16)

	// cell 1 was split, cell 2 inherits all attributes
	attrs.CopyAllFromElement(storage, Cell(1), Cell(2))

	role, _ := attrs.Get[string, string](storage, "role", Cell(2))
	doping, _ := attrs.Get[string, float64](storage, "doping", Cell(2))

	fmt.Println(role, doping)

	// Output:
	// contact 1e+16
}

func ExampleAttributeOf() {
	policies := attrs.NewPolicies()
	_ = attrs.SetPolicy[Vertex, string, float64](policies, attrs.Policy{Container: attrs.DenseContainer})

	storage := attrs.NewStorage(policies)

	potential := attrs.AttributeOf[string, float64, Vertex](storage, "potential")
	for vertex := range Vertex(4) {
		potential.Set(vertex, float64(vertex)/2)
	}

	potential.Erase(Vertex(1))

	for vertex := range Vertex(4) {
		value, ok := potential.Get(vertex)
		fmt.Println(vertex, value, ok)
	}

	// Output:
	// 0 0 true
	// 1 0 false
	// 2 1 true
	// 3 1.5 true
}
