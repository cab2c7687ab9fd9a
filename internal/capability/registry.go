// Package capability holds the named tools the server exposes and dispatches calls to them.
package capability

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Handler produces the text payload of a capability.
type Handler interface {
	Invoke(ctx context.Context, args map[string]any) (string, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, args map[string]any) (string, error)

// Invoke calls f(ctx, args).
func (f HandlerFunc) Invoke(ctx context.Context, args map[string]any) (string, error) {
	return f(ctx, args)
}

// Argument describes one named argument of a capability.
type Argument struct {
	Name        string
	Description string
	Required    bool
	// Number marks numeric arguments; everything else is a string.
	Number bool
}

// Descriptor is the public metadata of a capability plus its handler.
type Descriptor struct {
	Name        string
	Title       string
	Description string
	Arguments   []Argument
	Handler     Handler
}

// Registry maps capability names to descriptors. It is filled at startup and
// only read afterwards.
type Registry struct {
	mu          sync.RWMutex
	descriptors []Descriptor
	index       map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// Register adds d to the registry. Empty names, missing handlers and duplicate
// names are rejected.
func (r *Registry) Register(d Descriptor) error {
	if strings.TrimSpace(d.Name) == "" {
		return &Error{Type: ErrorTypeMisconfigured, Message: "capability name cannot be empty"}
	}
	if d.Handler == nil {
		return &Error{Type: ErrorTypeMisconfigured, Name: d.Name, Message: fmt.Sprintf("capability %q has no handler", d.Name)}
	}
	seen := map[string]bool{}
	for _, arg := range d.Arguments {
		if arg.Name == "" || seen[arg.Name] {
			return &Error{Type: ErrorTypeMisconfigured, Name: d.Name, Message: fmt.Sprintf("capability %q has an empty or duplicate argument name", d.Name)}
		}
		seen[arg.Name] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[d.Name]; ok {
		return &Error{Type: ErrorTypeMisconfigured, Name: d.Name, Message: fmt.Sprintf("capability %q is already registered", d.Name)}
	}
	r.index[d.Name] = len(r.descriptors)
	r.descriptors = append(r.descriptors, d)
	return nil
}

// MustRegister is like Register but panics on error. Use it only while wiring the server.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// List returns every registered descriptor in registration order.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Descriptor(nil), r.descriptors...)
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// Invoke runs the handler registered under name. Unknown names yield an error
// wrapping ErrCapabilityNotFound.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return "", &Error{
			Type:    ErrorTypeNotFound,
			Name:    name,
			Message: fmt.Sprintf("unknown capability %q", name),
			Err:     ErrCapabilityNotFound,
		}
	}
	if args == nil {
		args = map[string]any{}
	}
	return d.Handler.Invoke(ctx, args)
}
