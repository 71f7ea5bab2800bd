package typekey

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type vertex struct{ idx int }

type cell struct{ idx int }

type potential string

func TestTypeIdOf_Stable(t *testing.T) {
	first := TypeIdOf[vertex]()
	second := TypeIdOf[vertex]()

	require.NotZero(t, first)
	require.Equal(t, first, second)
	require.NotEqual(t, first, TypeIdOf[cell]())

	require.Equal(t, "typekey.vertex", Name(first))
	require.Equal(t, "<unknown>", Name(0))
}

func TestOf_DistinctTriples(t *testing.T) {
	a := Of[vertex, potential, float64]()
	b := Of[vertex, potential, float64]()
	c := Of[vertex, potential, int]()
	d := Of[cell, potential, float64]()

	require.Equal(t, a, b)
	require.NotEqual(t, a.Token, c.Token)
	require.NotEqual(t, a.Token, d.Token)

	require.Equal(t, a.KeyPair(), c.KeyPair())
	require.NotEqual(t, a.ValuePair(), c.ValuePair())

	triple, ok := Lookup(a.Token)
	require.True(t, ok)
	require.Equal(t, a.Triple, triple)
	require.Equal(t, "typekey.vertex/typekey.potential/float64", triple.String())

	_, ok = Lookup(0)
	require.False(t, ok)
}

func TestOf_Concurrent(t *testing.T) {
	type racer struct{}

	var wg sync.WaitGroup
	tokens := make([]Token, 32)

	for idx := range tokens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens[idx] = Of[racer, string, racer]().Token
		}()
	}

	wg.Wait()

	for _, token := range tokens {
		require.Equal(t, tokens[0], token)
	}
}

func BenchmarkOf(b *testing.B) {
	_ = Of[vertex, potential, float64]()

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_ = Of[vertex, potential, float64]()
	}
}
