package registry

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/unitconv/pkg/errors"
)

// Registry is a generic, read-only registry for retrieving items by name
type Registry[T any] interface {
	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Has checks if an item is registered
	Has(name string) bool

	// List returns all registered names in sorted order
	List() []string

	// Items returns all registered items in registration order
	Items() []T

	// Count returns the number of registered items
	Count() int
}

// Entry pairs an item with the name it is registered under
type Entry[T any] struct {
	Name string
	Item T
}

// registry is the internal implementation of Registry
type registry[T any] struct {
	items map[string]T
	order []string
}

// New builds a registry from entries. Names must be non-empty and unique.
func New[T any](entries []Entry[T]) (Registry[T], error) {
	r := &registry[T]{
		items: make(map[string]T, len(entries)),
		order: make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
		}
		if _, exists := r.items[e.Name]; exists {
			return nil, errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", e.Name)
		}
		r.items[e.Name] = e.Item
		r.order = append(r.order, e.Name)
	}

	return r, nil
}

// MustNew builds a registry and panics if the entries are invalid.
// This is useful for fixed tables where a bad entry is a programming error
func MustNew[T any](entries []Entry[T]) Registry[T] {
	r, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("failed to build registry: %v", err))
	}
	return r
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}

	return item, nil
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	_, exists := r.items[name]
	return exists
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Items returns all registered items in registration order
func (r *registry[T]) Items() []T {
	items := make([]T, 0, len(r.order))
	for _, name := range r.order {
		items = append(items, r.items[name])
	}
	return items
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	return len(r.items)
}
