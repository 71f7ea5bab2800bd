package attrs

import (
	"log/slog"
	"slices"

	"github.com/oliverbestmann/attrs/internal/typekey"
)

// Storage owns every ContainerMap ever created through it, one per
// (element, key, value) type combination, and indexes them by element type
// so that all attributes of an element can be erased or copied without
// naming their types.
//
// A Storage is not safe for concurrent use.
type Storage struct {
	noCopy noCopy

	policies *Policies

	maps map[typekey.Token]erasedAccessor

	byElement      map[typekey.TypeId][]erasedAccessor
	byElementKey   map[typekey.Pair][]erasedAccessor
	byElementValue map[typekey.Pair][]erasedAccessor

	// incremented on Clear, used to invalidate cached containers
	generation uint64
}

// NewStorage creates an empty Storage. If policies is nil, every
// combination uses DefaultPolicy.
func NewStorage(policies *Policies) *Storage {
	if policies == nil {
		policies = NewPolicies()
	}

	return &Storage{
		policies:       policies,
		maps:           map[typekey.Token]erasedAccessor{},
		byElement:      map[typekey.TypeId][]erasedAccessor{},
		byElementKey:   map[typekey.Pair][]erasedAccessor{},
		byElementValue: map[typekey.Pair][]erasedAccessor{},
	}
}

// Empty reports whether no ContainerMap has been created since
// construction or the last Clear.
func (s *Storage) Empty() bool {
	return len(s.maps) == 0
}

// Clear releases every ContainerMap and empties all indices.
func (s *Storage) Clear() {
	if s.Empty() {
		return
	}

	slog.Debug("Clearing attribute storage", slog.Int("maps", len(s.maps)))

	for _, acc := range s.maps {
		acc.release()
	}

	clear(s.maps)
	clear(s.byElement)
	clear(s.byElementKey)
	clear(s.byElementValue)

	s.generation += 1
}

// ContainerMapOf returns the ContainerMap for attributes of type V attached to
// elements of type E under keys of type K, creating it on first use.
func ContainerMapOf[K Key, V any, E Element](s *Storage) *ContainerMap[K, V, E] {
	info := typekey.Of[E, K, V]()

	if acc, ok := s.maps[info.Token]; ok {
		return acc.(*accessor[K, V, E]).containers
	}

	policy, source := s.policies.policyFor(info)
	containers := newContainerMap[K, V, E](policy)

	acc := newAccessor(info, containers)
	s.register(acc)

	slog.Debug(
		"New attribute map created",
		slog.String("element", info.ElementName()),
		slog.String("key", info.KeyName()),
		slog.String("value", info.ValueName()),
		slog.String("policy", policy.String()),
		slog.String("source", source.String()),
	)

	return containers
}

// findContainerMap returns the ContainerMap of the combination if it exists.
func findContainerMap[K Key, V any, E Element](s *Storage) (*ContainerMap[K, V, E], bool) {
	acc, ok := s.maps[typekey.Of[E, K, V]().Token]
	if !ok {
		return nil, false
	}

	return acc.(*accessor[K, V, E]).containers, true
}

func (s *Storage) register(acc erasedAccessor) {
	info := acc.Info()

	s.maps[info.Token] = acc

	s.byElement[info.Triple.Element] = append(s.byElement[info.Triple.Element], acc)
	s.byElementKey[info.KeyPair()] = append(s.byElementKey[info.KeyPair()], acc)
	s.byElementValue[info.ValuePair()] = append(s.byElementValue[info.ValuePair()], acc)
}

// ContainerOf returns the container for key, creating it on first use.
func ContainerOf[K Key, V any, E Element](s *Storage, key K) Container[E, V] {
	return ContainerMapOf[K, V, E](s).Get(key)
}

// findContainer returns the container for key without creating anything.
func findContainer[K Key, V any, E Element](s *Storage, key K) (Container[E, V], bool) {
	containers, ok := findContainerMap[K, V, E](s)
	if !ok {
		return nil, false
	}

	return containers.Find(key)
}

// UnmatchedPolicies returns the named policy entries whose type names match
// no ContainerMap currently held by this storage, formatted as "element/key/value". A
// misspelled type name in a policy file shows up here.
func (s *Storage) UnmatchedPolicies() []string {
	used := map[typeNames]bool{}
	for _, acc := range s.maps {
		used[namesOf(acc.Info())] = true
	}

	var unmatched []string
	for names := range s.policies.byName {
		if !used[names] {
			unmatched = append(unmatched, names.Element+"/"+names.Key+"/"+names.Value)
		}
	}

	slices.Sort(unmatched)
	return unmatched
}
