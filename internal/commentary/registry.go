package commentary

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownProvider is returned by Create for names nobody registered.
var ErrUnknownProvider = errors.New("commentary: unknown provider")

// Info describes a registered provider.
type Info struct {
	Name        string
	Description string
}

// Factory creates a provider. seed feeds any randomness it uses.
type Factory func(seed int64) Provider

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a provider factory to the registry.
// Typically called from an init() function.
// Panics if a provider with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("commentary: provider %q already registered", name))
	}

	factories[name] = f

	// Get description by creating a temporary instance
	if d, ok := f(1).(Describer); ok {
		descriptions[name] = d.Description()
	}
}

// List returns all registered providers, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a provider by name.
func Create(name string, seed int64) (Provider, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownProvider, name)
	}

	return f(seed), nil
}

// Exists checks if a provider with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
