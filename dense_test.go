package attrs

import (
	"testing"

	"github.com/oliverbestmann/attrs/internal/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_LookupFind(t *testing.T) {
	dense := NewDense[Vertex, float64]()

	require.Nil(t, dense.Find(Vertex(0)))
	require.Nil(t, dense.Find(Vertex(10)))

	*dense.Lookup(Vertex(3)) = 1.5

	require.Equal(t, 1.5, *dense.Find(Vertex(3)))
	require.Equal(t, 1.5, *dense.Lookup(Vertex(3)))
	require.Equal(t, 1, dense.Len())

	// slots below the offset exist but are not occupied
	require.Equal(t, 4, dense.Span())
	require.Nil(t, dense.Find(Vertex(0)))
	require.Nil(t, dense.Find(Vertex(2)))
}

func TestDense_StableUnderGrowth(t *testing.T) {
	dense := NewDense[Vertex, int]()

	for idx := range 8 {
		*dense.Lookup(Vertex(idx)) = idx * 10
	}

	*dense.Lookup(Vertex(10_000)) = -1

	for idx := range 8 {
		require.Equal(t, idx*10, *dense.Find(Vertex(idx)))
	}

	require.Equal(t, -1, *dense.Find(Vertex(10_000)))
	require.Equal(t, 9, dense.Len())
}

func TestDense_EraseInterior(t *testing.T) {
	dense := NewDense[Vertex, int]()

	*dense.Lookup(Vertex(1)) = 1
	*dense.Lookup(Vertex(2)) = 2
	*dense.Lookup(Vertex(3)) = 3

	dense.Erase(Vertex(2))

	require.Nil(t, dense.Find(Vertex(2)))
	require.Equal(t, 4, dense.Span())
	require.Equal(t, 2, dense.Len())

	// a new lookup starts from the zero value, not from the erased one
	require.Equal(t, 0, *dense.Lookup(Vertex(2)))
}

func TestDense_EraseTrimsTail(t *testing.T) {
	dense := NewDense[Vertex, int]()

	*dense.Lookup(Vertex(1)) = 1
	*dense.Lookup(Vertex(4)) = 4
	*dense.Lookup(Vertex(6)) = 6

	dense.Erase(Vertex(4))
	require.Equal(t, 7, dense.Span())

	dense.Erase(Vertex(6))
	require.Equal(t, 2, dense.Span())
	require.Equal(t, 1, *dense.Find(Vertex(1)))

	dense.Erase(Vertex(1))
	require.Equal(t, 0, dense.Span())
	require.Equal(t, 0, dense.Len())

	// erasing something that does not exist is fine
	dense.Erase(Vertex(100))
	dense.Erase(Vertex(-1))
}

func TestDense_Copy(t *testing.T) {
	dense := NewDense[Vertex, string]()

	*dense.Lookup(Vertex(0)) = "boundary"

	// destination requires growth
	dense.Copy(Vertex(0), Vertex(1000))

	require.Equal(t, "boundary", *dense.Find(Vertex(1000)))
	require.Equal(t, "boundary", *dense.Find(Vertex(0)))

	// copying a missing value leaves the target alone
	dense.Copy(Vertex(5), Vertex(0))
	require.Equal(t, "boundary", *dense.Find(Vertex(0)))
	require.Nil(t, dense.Find(Vertex(5)))
}

func TestDense_ClearResize(t *testing.T) {
	dense := NewDense[Vertex, int]()

	dense.Resize(128)
	require.Equal(t, 0, dense.Span())
	require.GreaterOrEqual(t, cap(dense.slots), 128)

	*dense.Lookup(Vertex(5)) = 5
	dense.Clear()

	require.Equal(t, 0, dense.Len())
	require.Nil(t, dense.Find(Vertex(5)))
}

func TestDense_NegativeOffset(t *testing.T) {
	dense := NewDense[Vertex, int]()

	require.Nil(t, dense.Find(Vertex(-3)))
	require.PanicsWithValue(t, "negative element offset -3", func() {
		dense.Lookup(Vertex(-3))
	})
}

func TestDense_LookupUnchecked(t *testing.T) {
	dense := NewDense[Vertex, int]()
	*dense.Lookup(Vertex(2)) = 7

	require.Equal(t, 7, *dense.LookupUnchecked(Vertex(2)))

	if assert.Enabled {
		require.Panics(t, func() { dense.LookupUnchecked(Vertex(1)) })
	}
}

func BenchmarkDense_Lookup(b *testing.B) {
	dense := NewDense[Vertex, float64]()
	dense.Resize(1024)

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		for idx := range 1024 {
			*dense.Lookup(Vertex(idx)) += 1
		}
	}
}
