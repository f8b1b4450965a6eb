package partial

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Component renders an HTML fragment to splice into a page.
type Component interface {
	RenderPartial(ctx context.Context) (string, error)
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(ctx context.Context) (string, error)

// RenderPartial calls f(ctx).
func (f ComponentFunc) RenderPartial(ctx context.Context) (string, error) {
	return f(ctx)
}

// Static is a Component whose output never changes.
type Static string

// RenderPartial returns the fragment itself.
func (s Static) RenderPartial(context.Context) (string, error) {
	return string(s), nil
}

// Lookup finds a Component by identifier.
type Lookup interface {
	Lookup(name string) (Component, bool)
}

// Registry maps component identifiers to Components. It is filled at
// startup and only read while serving pages.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Component
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]Component)}
}

// Register adds a Component under name.
// Returns ErrInvalidName, ErrNilComponent or ErrDuplicateComponent.
func (r *Registry) Register(name string, c Component) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: %q", ErrNilComponent, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateComponent, name)
	}
	r.components[name] = c
	return nil
}

// Lookup returns the Component registered under name.
func (r *Registry) Lookup(name string) (Component, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.components[name]
	return c, ok
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile-time interface checks.
var (
	_ Lookup    = (*Registry)(nil)
	_ Component = ComponentFunc(nil)
	_ Component = Static("")
)
