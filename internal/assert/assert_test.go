package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThat(t *testing.T) {
	require.NotPanics(t, func() { That(true, "never") })

	if Enabled {
		require.PanicsWithValue(t, "slot 3 missing", func() { That(false, "slot %d missing", 3) })
	} else {
		require.NotPanics(t, func() { That(false, "slot %d missing", 3) })
	}
}

func TestNonNegative(t *testing.T) {
	require.NotPanics(t, func() { NonNegative(0) })
	require.PanicsWithValue(t, "negative element offset -1", func() { NonNegative(-1) })
}
