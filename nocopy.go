package attrs

// noCopy is embedded into types that must not be copied after first use.
// "go vet" reports copies of such values through its copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
