package attrs

import (
	"cmp"
	"slices"

	"github.com/oliverbestmann/attrs/internal/typekey"
)

// MapStats describes one ContainerMap of a Storage.
type MapStats struct {
	Token   typekey.Token
	Element string
	Key     string
	Value   string
	Policy  Policy

	// number of keys with a container
	Keys int

	// number of values across all keys
	Entries int
}

type Stats struct {
	Maps       int
	Containers int
	Entries    int

	// sorted by token, i.e. by first use of the type combination in the process
	ByMap []MapStats
}

// Stats collects the current size of the storage.
func (s *Storage) Stats() Stats {
	var stats Stats

	for _, acc := range s.maps {
		mapStats := acc.Stats()

		stats.Maps += 1
		stats.Containers += mapStats.Keys
		stats.Entries += mapStats.Entries
		stats.ByMap = append(stats.ByMap, mapStats)
	}

	slices.SortFunc(stats.ByMap, func(a, b MapStats) int {
		return cmp.Compare(a.Token, b.Token)
	})

	return stats
}
