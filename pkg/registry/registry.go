package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/distfile/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by name.
// Items can be reached through aliases, which never show up in List.
type Registry[T any] interface {
	// Register adds an item to the registry
	Register(name string, item T) error

	// Alias makes alias resolve to the already registered name
	Alias(alias, name string) error

	// Get retrieves an item by name or alias
	Get(name string) (T, error)

	// Canonical returns the registered name behind name or alias
	Canonical(name string) (string, bool)

	// List returns all registered names, aliases excluded
	List() []string

	// Has checks if a name or alias is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	mu      sync.RWMutex
	items   map[string]T
	aliases map[string]string
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items:   make(map[string]T),
		aliases: make(map[string]string),
	}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name).
			WithDetail("name", name)
	}
	if _, exists := r.aliases[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already registered as an alias", name).
			WithDetail("name", name)
	}

	r.items[name] = item
	return nil
}

func (r *registry[T]) Alias(alias, name string) error {
	if alias == "" {
		return errors.New(errors.ErrInvalidInput, "registry alias cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "cannot alias '%s' to unknown item '%s'", alias, name).
			WithDetail("name", name)
	}
	if _, exists := r.items[alias]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "alias '%s' shadows a registered item", alias).
			WithDetail("name", alias)
	}
	if _, exists := r.aliases[alias]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "alias '%s' is already registered", alias).
			WithDetail("name", alias)
	}

	r.aliases[alias] = name
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[r.resolve(name)]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}

	return item, nil
}

func (r *registry[T]) Canonical(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical := r.resolve(name)
	_, exists := r.items[canonical]
	return canonical, exists
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[r.resolve(name)]
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// resolve must be called with the lock held
func (r *registry[T]) resolve(name string) string {
	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}

// MustRegister registers an item and panics if registration fails.
// Registration errors in init() functions are programming errors.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustAlias registers an alias and panics if it fails
func MustAlias[T any](reg Registry[T], alias, name string) {
	if err := reg.Alias(alias, name); err != nil {
		panic(fmt.Sprintf("failed to alias %s to %s: %v", alias, name, err))
	}
}
