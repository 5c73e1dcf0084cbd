package object

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hejia-v/atom/errors"
	"github.com/hejia-v/atom/layout"
)

// Registry maps type names to defined types. Defining a type and
// publishing it are separate steps: DefineType freezes the complete
// layout first, and only the finished Type enters the registry, so
// concurrent readers never observe a partially built table. Redefining a
// name replaces the entry with a fresh Type; instances of the old Type
// keep their old table.
type Registry struct {
	types map[string]*Type
	order []string
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*Type),
	}
}

// Define compiles a type whose bases are resolved by name in this
// registry, then publishes it. Base types must already be registered.
func (r *Registry) Define(name string, baseNames []string, members []layout.Member, opts ...DefineOption) (*Type, error) {
	bases := make([]*Type, len(baseNames))
	r.mu.RLock()
	for i, bn := range baseNames {
		b, ok := r.types[bn]
		if !ok {
			r.mu.RUnlock()
			return nil, errors.New(errors.PhaseDefine, errors.KindUndefinedBase).
				Type(name).
				Detail("base %q is not registered", bn).
				Build()
		}
		bases[i] = b
	}
	r.mu.RUnlock()

	t, err := DefineType(name, bases, members, opts...)
	if err != nil {
		return nil, err
	}

	r.Add(t)
	return t, nil
}

// Add publishes a defined type, replacing any previous entry with the
// same name.
func (r *Registry) Add(t *Type) {
	if t == nil {
		return
	}

	r.mu.Lock()
	if _, exists := r.types[t.name]; !exists {
		r.order = append(r.order, t.name)
	} else {
		Logger().Debug("type redefined", zap.String("type", t.name))
	}
	r.types[t.name] = t
	r.mu.Unlock()
}

// Get returns the registered type for a name.
func (r *Registry) Get(name string) (*Type, bool) {
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()
	return t, ok
}

// Names returns the registered type names in first-registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := append([]string(nil), r.order...)
	r.mu.RUnlock()
	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.types)
	r.mu.RUnlock()
	return n
}
