package mesh

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	m, err := Grid(RectWithPoints(Vec{X: 2, Y: 2}, Vec{}), 2, 1)
	require.NoError(t, err)

	require.Equal(t, 6, m.VertexCount())
	require.Equal(t, 2, m.CellCount())
	require.Equal(t, Vec{X: 1, Y: 2}, m.Position(Vertex(4)))
	require.Equal(t, [4]Vertex{1, 2, 5, 4}, m.Corners(Cell(1)))
	require.Equal(t, Vec{X: 1.5, Y: 1}, m.Center(Cell(1)))

	require.Equal(t, "left", m.SegmentOf(Cell(0)).Name)
	require.Equal(t, "right", m.SegmentOf(Cell(1)).String())

	require.Equal(t, []Vertex{0, 1, 2, 3, 4, 5}, slices.Collect(m.Vertices()))
	require.Equal(t, []Cell{0, 1}, slices.Collect(m.Cells()))

	// every vertex of a single row grid is on the boundary
	for v := range m.Vertices() {
		require.True(t, m.OnBoundary(v))
	}
}

func TestGrid_Invalid(t *testing.T) {
	_, err := Grid(Rect{}, 0, 3)
	require.EqualError(t, err, "grid size must be positive, got 0x3")
}

func TestSplit(t *testing.T) {
	m, err := Grid(RectWithPoints(Vec{}, Vec{X: 2, Y: 2}), 1, 1)
	require.NoError(t, err)

	created, midpoints := m.Split(Cell(0))

	require.Equal(t, Cell(1), created)
	require.Equal(t, [2]Vertex{4, 5}, midpoints)
	require.Equal(t, Vec{X: 1, Y: 0}, m.Position(midpoints[0]))
	require.Equal(t, Vec{X: 1, Y: 2}, m.Position(midpoints[1]))

	require.Equal(t, Vec{X: 0.5, Y: 1}, m.Center(Cell(0)))
	require.Equal(t, Vec{X: 1.5, Y: 1}, m.Center(created))
	require.Same(t, m.SegmentOf(Cell(0)), m.SegmentOf(created))
}

func TestVec(t *testing.T) {
	a := Vec{X: 3, Y: 4}

	require.Equal(t, 5.0, a.Length())
	require.Equal(t, Vec{X: 1.5, Y: 2}, VecZero.Lerp(a, 0.5))
	require.Equal(t, "vec(x=3, y=4)", a.String())
	require.Equal(t, "Rect(min=vec(x=0, y=0), max=vec(x=3, y=4))", RectWithPoints(a, VecZero).String())
}
