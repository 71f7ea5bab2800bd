package typekey

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync/atomic"
)

// TypeId is the interned id of a single Go type. The zero value is never assigned.
type TypeId uint32

// Token is the interned id of an (element, key, value) type triple.
// The zero value is never assigned.
type Token uint32

// Triple identifies an (element, key, value) type combination.
type Triple struct {
	Element TypeId
	Key     TypeId
	Value   TypeId
}

func (t Triple) String() string {
	return fmt.Sprintf("%s/%s/%s", Name(t.Element), Name(t.Key), Name(t.Value))
}

// Pair identifies an element type together with one other type.
type Pair struct {
	Element TypeId
	Other   TypeId
}

// Info describes a registered triple.
type Info struct {
	Token  Token
	Triple Triple
}

func (i Info) ElementName() string {
	return Name(i.Triple.Element)
}

func (i Info) KeyName() string {
	return Name(i.Triple.Key)
}

func (i Info) ValueName() string {
	return Name(i.Triple.Value)
}

// KeyPair returns the (element, key) pair of the triple.
func (i Info) KeyPair() Pair {
	return Pair{Element: i.Triple.Element, Other: i.Triple.Key}
}

// ValuePair returns the (element, value) pair of the triple.
func (i Info) ValuePair() Pair {
	return Pair{Element: i.Triple.Element, Other: i.Triple.Value}
}

type snapshot struct {
	typeIds map[reflect.Type]TypeId
	names   []string

	tokens  map[Triple]Token
	triples []Triple
}

func (s *snapshot) clone() *snapshot {
	return &snapshot{
		typeIds: maps.Clone(s.typeIds),
		names:   slices.Clone(s.names),
		tokens:  maps.Clone(s.tokens),
		triples: slices.Clone(s.triples),
	}
}

var registry atomic.Pointer[snapshot]

func init() {
	// initialize the lookup table
	registry.Store(&snapshot{
		typeIds: map[reflect.Type]TypeId{},
		tokens:  map[Triple]Token{},
	})
}

// TypeIdOf returns the interned id of T, registering T on first use.
func TypeIdOf[T any]() TypeId {
	return typeIdOf(reflect.TypeFor[T]())
}

func typeIdOf(ty reflect.Type) TypeId {
	if cached, ok := registry.Load().typeIds[ty]; ok {
		return cached
	}

	for {
		previous := registry.Load()
		if cached, ok := previous.typeIds[ty]; ok {
			return cached
		}

		next := previous.clone()

		id := TypeId(len(next.names) + 1)
		next.typeIds[ty] = id
		next.names = append(next.names, ty.String())

		if registry.CompareAndSwap(previous, next) {
			slog.Debug(
				"New attribute type registered",
				slog.String("name", ty.String()),
				slog.Int("id", int(id)),
			)

			return id
		}
	}
}

// Of returns the token of the (E, K, V) triple, registering it on first use.
func Of[E, K, V any]() Info {
	triple := Triple{
		Element: TypeIdOf[E](),
		Key:     TypeIdOf[K](),
		Value:   TypeIdOf[V](),
	}

	return Info{Token: tokenOf(triple), Triple: triple}
}

func tokenOf(triple Triple) Token {
	if cached, ok := registry.Load().tokens[triple]; ok {
		return cached
	}

	for {
		previous := registry.Load()
		if cached, ok := previous.tokens[triple]; ok {
			return cached
		}

		next := previous.clone()

		token := Token(len(next.triples) + 1)
		next.tokens[triple] = token
		next.triples = append(next.triples, triple)

		if registry.CompareAndSwap(previous, next) {
			return token
		}
	}
}

// Name returns the Go type name registered for id, or "<unknown>".
func Name(id TypeId) string {
	names := registry.Load().names
	if id == 0 || int(id) > len(names) {
		return "<unknown>"
	}

	return names[id-1]
}

// Lookup returns the triple registered for token.
func Lookup(token Token) (Triple, bool) {
	triples := registry.Load().triples
	if token == 0 || int(token) > len(triples) {
		return Triple{}, false
	}

	return triples[token-1], true
}
