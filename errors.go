package attrs

import "fmt"

type PolicyError struct {
	Element, Key, Value string
	Policy              Policy
	Reason              string
}

func (e *PolicyError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("invalid policy %s: %s", e.Policy, e.Reason)
	}

	return fmt.Sprintf("invalid policy %s for %s/%s/%s: %s", e.Policy, e.Element, e.Key, e.Value, e.Reason)
}

type UnknownContainerKindError struct {
	Name string
}

func (e UnknownContainerKindError) Error() string {
	return fmt.Sprintf("unknown container kind %q, expected sparse or dense", e.Name)
}

type UnknownAccessModeError struct {
	Name string
}

func (e UnknownAccessModeError) Error() string {
	return fmt.Sprintf("unknown access mode %q, expected auto, identity or offset", e.Name)
}
