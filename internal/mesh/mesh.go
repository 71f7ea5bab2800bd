package mesh

import (
	"fmt"
	"iter"
)

type Vertex uint32

func (v Vertex) Offset() int {
	return int(v)
}

type Cell uint32

func (c Cell) Offset() int {
	return int(c)
}

// Segment is a named region of the mesh. Segments are addressed by pointer.
type Segment struct {
	Name  string
	Index int
}

func (s *Segment) Offset() int {
	return s.Index
}

func (s *Segment) String() string {
	return s.Name
}

// Mesh is a structured quad mesh. Cells may be split, which introduces
// hanging vertices at the shared edges.
type Mesh struct {
	Bounds Rect

	positions []Vec
	cells     [][4]Vertex
	segments  []*Segment
	segmentOf []*Segment
}

// Grid creates a mesh of nx * ny quads covering bounds. The left half of the
// cells belongs to segment "left", the right half to segment "right".
func Grid(bounds Rect, nx, ny int) (*Mesh, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %dx%d", nx, ny)
	}

	m := &Mesh{
		Bounds: bounds,
		segments: []*Segment{
			{Name: "left", Index: 0},
			{Name: "right", Index: 1},
		},
	}

	size := bounds.Size()

	for y := range ny + 1 {
		for x := range nx + 1 {
			m.positions = append(m.positions, Vec{
				X: bounds.Min.X + size.X*float64(x)/float64(nx),
				Y: bounds.Min.Y + size.Y*float64(y)/float64(ny),
			})
		}
	}

	vertexAt := func(x, y int) Vertex {
		return Vertex(y*(nx+1) + x)
	}

	for y := range ny {
		for x := range nx {
			m.cells = append(m.cells, [4]Vertex{
				vertexAt(x, y),
				vertexAt(x+1, y),
				vertexAt(x+1, y+1),
				vertexAt(x, y+1),
			})

			segment := m.segments[0]
			if 2*x >= nx {
				segment = m.segments[1]
			}

			m.segmentOf = append(m.segmentOf, segment)
		}
	}

	return m, nil
}

func (m *Mesh) VertexCount() int {
	return len(m.positions)
}

func (m *Mesh) CellCount() int {
	return len(m.cells)
}

func (m *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for idx := range m.positions {
			if !yield(Vertex(idx)) {
				return
			}
		}
	}
}

func (m *Mesh) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for idx := range m.cells {
			if !yield(Cell(idx)) {
				return
			}
		}
	}
}

func (m *Mesh) Segments() []*Segment {
	return m.segments
}

func (m *Mesh) Position(v Vertex) Vec {
	return m.positions[v]
}

// Corners returns the vertices of c in counter clockwise order,
// starting at the lower left corner.
func (m *Mesh) Corners(c Cell) [4]Vertex {
	return m.cells[c]
}

func (m *Mesh) SegmentOf(c Cell) *Segment {
	return m.segmentOf[c]
}

func (m *Mesh) Center(c Cell) Vec {
	var center Vec
	for _, v := range m.cells[c] {
		center = center.Add(m.positions[v])
	}

	return center.Mul(0.25)
}

// OnBoundary reports whether v lies on the border of the mesh.
func (m *Mesh) OnBoundary(v Vertex) bool {
	return m.Bounds.OnBoundary(m.positions[v])
}

// Split divides c vertically into two cells. c keeps the left half, the
// returned cell covers the right half. The two new midpoint vertices are
// returned as well.
func (m *Mesh) Split(c Cell) (Cell, [2]Vertex) {
	corners := m.cells[c]

	bottom := m.addVertex(m.positions[corners[0]].Lerp(m.positions[corners[1]], 0.5))
	top := m.addVertex(m.positions[corners[3]].Lerp(m.positions[corners[2]], 0.5))

	m.cells[c] = [4]Vertex{corners[0], bottom, top, corners[3]}

	created := Cell(len(m.cells))
	m.cells = append(m.cells, [4]Vertex{bottom, corners[1], corners[2], top})
	m.segmentOf = append(m.segmentOf, m.segmentOf[c])

	return created, [2]Vertex{bottom, top}
}

func (m *Mesh) addVertex(position Vec) Vertex {
	m.positions = append(m.positions, position)
	return Vertex(len(m.positions) - 1)
}
