// Package registry is the catalogue of playable guests. Each entry pairs an
// id and a title with a factory that loads a fresh guest module, so the
// platform can list and start guests without knowing how they are built.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wasm-arcade/internal/host"
)

// ErrUnknownGuest is returned by Create for an unregistered id.
var ErrUnknownGuest = errors.New("registry: unknown guest")

// ErrDuplicateGuest is returned by Add for an id that is already taken.
var ErrDuplicateGuest = errors.New("registry: guest already registered")

// GuestInfo contains metadata about a registered guest.
type GuestInfo struct {
	ID    string
	Title string
}

// Factory loads a new, uninitialised instance of a guest.
type Factory func(ctx context.Context) (host.Module, error)

type entry struct {
	title   string
	factory Factory
}

// Registry maps guest ids to factories. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Add registers a guest factory.
func (r *Registry) Add(id, title string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateGuest, id)
	}
	if title == "" {
		title = id
	}
	r.entries[id] = entry{title: title, factory: f}
	return nil
}

// List returns information about all registered guests, sorted by ID.
func (r *Registry) List() []GuestInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GuestInfo, 0, len(r.entries))
	for id, e := range r.entries {
		result = append(result, GuestInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create loads a new instance of the guest with the given id.
func (r *Registry) Create(ctx context.Context, id string) (host.Module, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGuest, id)
	}

	mod, err := e.factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot load %q: %w", id, err)
	}
	return mod, nil
}

// Exists checks if a guest with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// Title returns the display title of a registered guest.
func (r *Registry) Title(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entries[id].title
}
