package attrs

import (
	"github.com/oliverbestmann/attrs/internal/typekey"
)

// erasedAccessor gives the storage access to one ContainerMap without
// knowing its key and value types. Elements and keys are passed as any and
// must match the types of the wrapped map.
type erasedAccessor interface {
	Info() typekey.Info

	// EraseAll removes the values of element under every key.
	EraseAll(element any)

	// CopyAll copies the values of src under every key to dst.
	CopyAll(src, dst any)

	// EraseKey removes the value of element under key.
	EraseKey(element, key any)

	// CopyKey copies the value of src under key to dst.
	CopyKey(src, dst, key any)

	Stats() MapStats

	release()
}

type accessor[K Key, V any, E Element] struct {
	info       typekey.Info
	containers *ContainerMap[K, V, E]
}

func newAccessor[K Key, V any, E Element](info typekey.Info, containers *ContainerMap[K, V, E]) *accessor[K, V, E] {
	return &accessor[K, V, E]{info: info, containers: containers}
}

func (a *accessor[K, V, E]) Info() typekey.Info {
	return a.info
}

func (a *accessor[K, V, E]) EraseAll(element any) {
	elem := element.(E)

	for _, container := range a.containers.containers {
		container.Erase(elem)
	}
}

func (a *accessor[K, V, E]) CopyAll(src, dst any) {
	srcElem, dstElem := src.(E), dst.(E)

	for _, container := range a.containers.containers {
		container.Copy(srcElem, dstElem)
	}
}

func (a *accessor[K, V, E]) EraseKey(element, key any) {
	container, ok := a.containers.Find(key.(K))
	if !ok {
		return
	}

	container.Erase(element.(E))
}

func (a *accessor[K, V, E]) CopyKey(src, dst, key any) {
	container, ok := a.containers.Find(key.(K))
	if !ok {
		return
	}

	container.Copy(src.(E), dst.(E))
}

func (a *accessor[K, V, E]) Stats() MapStats {
	return MapStats{
		Token:   a.info.Token,
		Element: a.info.ElementName(),
		Key:     a.info.KeyName(),
		Value:   a.info.ValueName(),
		Policy:  a.containers.policy,
		Keys:    a.containers.Len(),
		Entries: a.containers.Entries(),
	}
}

func (a *accessor[K, V, E]) release() {
	a.containers.release()
}
