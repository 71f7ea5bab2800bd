package attrs

import (
	"errors"
	"strconv"

	"github.com/oliverbestmann/attrs/internal/typekey"
)

// ContainerKind selects the container policy backing an attribute.
type ContainerKind uint8

const (
	// SparseContainer stores values in a map, see Sparse.
	SparseContainer ContainerKind = iota

	// DenseContainer stores values in a slice indexed by offset, see Dense.
	DenseContainer
)

func (k ContainerKind) String() string {
	switch k {
	case SparseContainer:
		return "sparse"
	case DenseContainer:
		return "dense"
	default:
		return "ContainerKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// AccessMode selects how a container derives an element identity.
type AccessMode uint8

const (
	// AccessAuto uses ByIdentity for sparse and ByOffset for dense containers.
	AccessAuto AccessMode = iota

	// ByIdentity addresses elements by their own value. For pointer types this
	// is the address of the element.
	ByIdentity

	// ByOffset addresses elements by Element.Offset.
	ByOffset
)

func (m AccessMode) String() string {
	switch m {
	case AccessAuto:
		return "auto"
	case ByIdentity:
		return "identity"
	case ByOffset:
		return "offset"
	default:
		return "AccessMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Policy configures the container of one (element, key, value) combination.
type Policy struct {
	Container ContainerKind
	Access    AccessMode
}

// DefaultPolicy is used for every combination without an explicit policy.
var DefaultPolicy = Policy{Container: SparseContainer, Access: ByIdentity}

func (p Policy) String() string {
	return p.Container.String() + "/" + p.resolvedAccess().String()
}

func (p Policy) resolvedAccess() AccessMode {
	if p.Access != AccessAuto {
		return p.Access
	}

	if p.Container == DenseContainer {
		return ByOffset
	}

	return ByIdentity
}

func (p Policy) validate() error {
	switch p.Container {
	case SparseContainer, DenseContainer:
	default:
		return UnknownContainerKindError{Name: p.Container.String()}
	}

	switch p.Access {
	case AccessAuto, ByIdentity, ByOffset:
	default:
		return UnknownAccessModeError{Name: p.Access.String()}
	}

	if p.Container == DenseContainer && p.Access == ByIdentity {
		return &PolicyError{Policy: p, Reason: "dense containers can only be addressed by offset"}
	}

	return nil
}

type typeNames struct {
	Element, Key, Value string
}

// Policies maps (element, key, value) combinations to container policies.
// A Policies value must be fully configured before it is passed to NewStorage.
type Policies struct {
	fallback Policy
	byToken  map[typekey.Token]Policy
	byName   map[typeNames]Policy
}

func NewPolicies() *Policies {
	return &Policies{
		fallback: DefaultPolicy,
		byToken:  map[typekey.Token]Policy{},
		byName:   map[typeNames]Policy{},
	}
}

// SetDefault replaces the policy used for combinations without an entry.
func (p *Policies) SetDefault(policy Policy) error {
	if err := policy.validate(); err != nil {
		return err
	}

	p.fallback = policy
	return nil
}

// Default returns the policy used for combinations without an entry.
func (p *Policies) Default() Policy {
	return p.fallback
}

// SetNamedPolicy configures a combination by the names of its Go types as
// printed by reflect.Type.String, e.g. "mesh.Vertex", "string", "float64".
//
// Names are qualified by package name only, not by import path: an entry for
// "mesh.Vertex" applies to the Vertex types of all packages named mesh. Names
// are not checked against any type, use Storage.UnmatchedPolicies to find
// entries that never applied.
func (p *Policies) SetNamedPolicy(element, key, value string, policy Policy) error {
	if err := policy.validate(); err != nil {
		var policyErr *PolicyError
		if errors.As(err, &policyErr) {
			policyErr.Element, policyErr.Key, policyErr.Value = element, key, value
		}

		return err
	}

	p.byName[typeNames{Element: element, Key: key, Value: value}] = policy
	return nil
}

// SetPolicy configures the container policy of attributes of type V attached
// to elements of type E under keys of type K.
func SetPolicy[E Element, K Key, V any](p *Policies, policy Policy) error {
	info := typekey.Of[E, K, V]()

	if err := policy.validate(); err != nil {
		var policyErr *PolicyError
		if errors.As(err, &policyErr) {
			policyErr.Element, policyErr.Key, policyErr.Value = info.ElementName(), info.KeyName(), info.ValueName()
		}

		return err
	}

	p.byToken[info.Token] = policy
	return nil
}

// Len returns the number of explicitly configured combinations.
func (p *Policies) Len() int {
	return len(p.byToken) + len(p.byName)
}

// policySource tells which entry of a Policies table a policy came from.
type policySource uint8

const (
	sourceDefault policySource = iota
	sourceType
	sourceName
)

func (s policySource) String() string {
	switch s {
	case sourceType:
		return "type"
	case sourceName:
		return "name"
	default:
		return "default"
	}
}

func (p *Policies) policyFor(info typekey.Info) (Policy, policySource) {
	if policy, ok := p.byToken[info.Token]; ok {
		return policy, sourceType
	}

	if policy, ok := p.byName[namesOf(info)]; ok {
		return policy, sourceName
	}

	return p.fallback, sourceDefault
}

func namesOf(info typekey.Info) typeNames {
	return typeNames{
		Element: info.ElementName(),
		Key:     info.KeyName(),
		Value:   info.ValueName(),
	}
}
