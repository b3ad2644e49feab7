// Package registry provides a global registry for entity behaviors.
// Behaviors register themselves in init() functions, allowing scenes to
// name per-frame logic without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-collide/internal/room"
)

// Env carries what a behavior may need when it is created.
type Env struct {
	// Rand is shared by every behavior of one scene build, so results only
	// depend on the seed and the entity order in the scene.
	Rand   *rand.Rand
	Logger *log.Logger
}

// NewEnv creates an environment seeded with seed.
func NewEnv(seed uint64, logger *log.Logger) Env {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Env{
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Logger: logger,
	}
}

// Info contains metadata about a registered behavior.
type Info struct {
	Name        string
	Description string
}

// Factory creates the per-frame logic for one entity.
type Factory func(p Params, env Env) (room.Updater, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a behavior factory to the registry.
// Typically called from a behavior's init() function.
// Panics if a behavior with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: behavior %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered behaviors, sorted by name.
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

// Create instantiates a behavior by name.
// Returns an error if the name is not registered or the params are invalid.
func Create(name string, p Params, env Env) (room.Updater, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown behavior %q", name)
	}

	u, err := f(p, env)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", name, err)
	}
	return u, nil
}

// Exists checks if a behavior with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
