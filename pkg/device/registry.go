package device

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory builds a Backend. Factories are invoked once per run.
type BackendFactory func() (Backend, error)

var (
	backendsMu sync.Mutex
	backends   = map[string]BackendFactory{}
)

// Register makes a backend selectable by name. It is meant to be called
// from a backend package's init function.
func Register(name string, factory BackendFactory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if _, ok := backends[name]; ok {
		panic(fmt.Sprintf("device: backend %q registered twice", name))
	}
	backends[name] = factory
}

// NewBackend instantiates the named backend.
func NewBackend(name string) (Backend, error) {
	backendsMu.Lock()
	factory, ok := backends[name]
	available := backendNames()
	backendsMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown scanner backend %q (available: %v)", name, available)
	}
	return factory()
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
