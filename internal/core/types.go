package core

import "sort"

// Size describes the cell dimensions of a view's canvas.
type Size struct {
	W int
	H int
}

// View is the contract a generator visualization implements. Reset must
// rebuild all state from the seed, so that equal seeds replay equal
// frames.
type View interface {
	Name() string
	Size() Size
	Reset(seed uint64)
	Step()
	Cells() []uint8
}

// Factory constructs a View from an optional configuration map.
type Factory func(cfg map[string]string) View

var views = map[string]Factory{}

// Register adds a view factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	views[name] = f
}

// Views exposes the registry of available view factories.
func Views() map[string]Factory {
	return views
}

// Names returns the registered view names in sorted order.
func Names() []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
