package atom

import (
	"github.com/hejia-v/atom/layout"
	"github.com/hejia-v/atom/object"
	"github.com/hejia-v/atom/signal"
	"github.com/hejia-v/atom/state"
)

// Re-exported core types. The subpackages remain the canonical API;
// these aliases cover the common path of defining types and working
// with instances without importing each subpackage.
type (
	Member      = layout.Member
	DefaultFunc = layout.DefaultFunc
	Table       = layout.Table
	Type        = object.Type
	Object      = object.Object
	Registry    = object.Registry
	Signal      = signal.Signal
	Snapshot    = state.Snapshot
)

// DefineType compiles and freezes a new slotted type.
func DefineType(name string, bases []*Type, members []Member, opts ...object.DefineOption) (*Type, error) {
	return object.DefineType(name, bases, members, opts...)
}

// New constructs an instance of a type.
func New(t *Type) (*Object, error) {
	return object.New(t)
}

// NewWith constructs an instance and sets the given attributes.
func NewWith(t *Type, init map[string]any) (*Object, error) {
	return object.NewWith(t, init)
}

// Value returns a default provider that yields v on every call.
func Value(v any) DefaultFunc {
	return layout.Value(v)
}

// NewSignal creates a signal identity.
func NewSignal(name string) *Signal {
	return signal.New(name)
}

// Export captures an instance's state as an ordered name-keyed snapshot.
func Export(obj *Object) (*Snapshot, error) {
	return state.Export(obj)
}

// Import applies a snapshot to an instance by attribute name.
func Import(obj *Object, snap *Snapshot) error {
	return state.Import(obj, snap)
}
