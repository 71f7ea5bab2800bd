package attrs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyFile is the YAML representation of a Policies table.
//
//	default: {container: sparse, access: identity}
//	policies:
//	  - {element: mesh.Vertex, key: string, value: float64, container: dense}
type PolicyFile struct {
	Default  *PolicyEntry  `yaml:"default"`
	Policies []PolicyEntry `yaml:"policies"`
}

type PolicyEntry struct {
	Element   string        `yaml:"element"`
	Key       string        `yaml:"key"`
	Value     string        `yaml:"value"`
	Container ContainerKind `yaml:"container"`
	Access    AccessMode    `yaml:"access"`
}

func (e PolicyEntry) policy() Policy {
	return Policy{Container: e.Container, Access: e.Access}
}

// LoadPolicies decodes a YAML policy table.
func LoadPolicies(r io.Reader) (*Policies, error) {
	var file PolicyFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode policies: %w", err)
	}

	policies := NewPolicies()

	if file.Default != nil {
		if err := policies.SetDefault(file.Default.policy()); err != nil {
			return nil, fmt.Errorf("default policy: %w", err)
		}
	}

	for idx, entry := range file.Policies {
		if entry.Element == "" || entry.Key == "" || entry.Value == "" {
			return nil, fmt.Errorf("policy %d: element, key and value must be set", idx)
		}

		if err := policies.SetNamedPolicy(entry.Element, entry.Key, entry.Value, entry.policy()); err != nil {
			return nil, fmt.Errorf("policy %d: %w", idx, err)
		}
	}

	return policies, nil
}

// LoadPolicyFile reads a YAML policy table from path.
func LoadPolicyFile(path string) (*Policies, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open policy file: %w", err)
	}

	defer fp.Close()

	return LoadPolicies(fp)
}

func (k *ContainerKind) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a container kind name, got %s", node.Line, node.ShortTag())
	}

	switch node.Value {
	case "", "sparse":
		*k = SparseContainer
	case "dense":
		*k = DenseContainer
	default:
		return fmt.Errorf("line %d: %w", node.Line, UnknownContainerKindError{Name: node.Value})
	}

	return nil
}

func (k ContainerKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

func (m *AccessMode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected an access mode name, got %s", node.Line, node.ShortTag())
	}

	switch node.Value {
	case "", "auto":
		*m = AccessAuto
	case "identity":
		*m = ByIdentity
	case "offset":
		*m = ByOffset
	default:
		return fmt.Errorf("line %d: %w", node.Line, UnknownAccessModeError{Name: node.Value})
	}

	return nil
}

func (m AccessMode) MarshalYAML() (any, error) {
	return m.String(), nil
}
