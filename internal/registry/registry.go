// Package registry maps shape names to factories. A Registry is built once by
// the entry routine and handed to the dispatcher, which looks shapes up by
// name without knowing the concrete set.
package registry

import (
	"sort"

	"github.com/flarebyte/describe-object/internal/shape"
)

// Registry maps shape names to factories.
type Registry struct {
	factories map[string]shape.Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]shape.Factory)}
}

// NewDefault creates a registry holding the built-in shapes.
func NewDefault() *Registry {
	r := New()
	RegisterBuiltins(r)
	return r
}

// RegisterBuiltins adds circle, square, rect and triangle to r.
func RegisterBuiltins(r *Registry) {
	r.Register("circle", func() shape.Shape { return shape.Circle{} })
	r.Register("square", func() shape.Shape { return shape.Square{} })
	r.Register("rect", func() shape.Shape { return shape.Rectangle{} })
	r.Register("triangle", func() shape.Shape { return shape.Triangle{} })
}

// Register sets the factory for name. A later registration replaces an
// earlier one.
func (r *Registry) Register(name string, f shape.Factory) {
	r.factories[name] = f
}

// Alias registers the factory of target under alias.
func (r *Registry) Alias(alias, target string) error {
	f, ok := r.factories[target]
	if !ok {
		return ErrUnknown{name: target}
	}
	r.factories[alias] = f
	return nil
}

// Create returns a new Shape for name, or false when name is not registered.
func (r *Registry) Create(name string) (shape.Shape, bool) {
	f, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrUnknown is returned when a shape is not found.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown shape: " + e.name }
