package object

import (
	"sort"
	"unsafe"

	"github.com/hejia-v/atom/errors"
	"github.com/hejia-v/atom/signal"
)

// Object is one instance of a slotted Type. Its attribute values live in
// a fixed-size slot array whose length is fixed at construction; slots
// are never added to or removed from a live instance. The instance
// borrows its type's layout table read-only.
type Object struct {
	typ   *Type
	slots []any
	hub   signal.Hub
}

// New constructs an instance of the type. The slot array is sized by the
// type's layout and each slot is filled by its member's default
// provider, in slot order, so every instance gets its own default
// values. If any provider fails, the error is returned and no partially
// initialized instance becomes observable. Construction is O(slot
// count); all access afterwards is O(1).
func New(t *Type) (*Object, error) {
	if t == nil {
		return nil, errors.InvalidInput(errors.PhaseConstruct, "nil type")
	}

	table := t.table
	n := table.SlotCount()

	size := n
	if t.overflow {
		size++ // flagged overflow slot, outside the layout
	}

	slots := make([]any, size)
	for i := 0; i < n; i++ {
		m := table.At(i).Member
		v, err := m.DefaultValue()
		if err != nil {
			return nil, errors.DefaultFailed(errors.PhaseConstruct, t.name, m.Name, err)
		}
		slots[i] = v
	}
	if t.overflow {
		slots[n] = map[string]any{}
	}

	return &Object{typ: t, slots: slots}, nil
}

// NewWith constructs an instance and sets the given attributes. A name
// outside the layout fails the construction and no instance is returned,
// unless the type opted in to dynamic overflow, in which case the value
// lands in the overflow area like any other Set.
func NewWith(t *Type, init map[string]any) (*Object, error) {
	obj, err := New(t)
	if err != nil {
		return nil, err
	}

	// Deterministic application order for deterministic failures.
	names := make([]string, 0, len(init))
	for name := range init {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := obj.Set(name, init[name]); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// Type returns the instance's type.
func (o *Object) Type() *Type {
	return o.typ
}

// Get returns the current value of the named attribute.
func (o *Object) Get(name string) (any, error) {
	if i, ok := o.typ.table.IndexOf(name); ok {
		return o.slots[i], nil
	}
	if o.typ.overflow {
		if v, ok := o.overflowMap()[name]; ok {
			return v, nil
		}
	}
	return nil, errors.UnknownAttribute(errors.PhaseAccess, o.typ.name, name)
}

// Set assigns the named attribute. The core accepts any value; type
// checking belongs to an outer validation layer. An unknown name fails
// and leaves every slot unchanged.
func (o *Object) Set(name string, value any) error {
	if i, ok := o.typ.table.IndexOf(name); ok {
		o.slots[i] = value
		return nil
	}
	if o.typ.overflow {
		o.overflowMap()[name] = value
		return nil
	}
	return errors.UnknownAttribute(errors.PhaseAccess, o.typ.name, name)
}

// Has reports whether the name resolves on this instance, either through
// the layout or, for opted-in types, through the overflow area.
func (o *Object) Has(name string) bool {
	if o.typ.table.Contains(name) {
		return true
	}
	if o.typ.overflow {
		_, ok := o.overflowMap()[name]
		return ok
	}
	return false
}

// Reset returns the named attribute to its default: the member's default
// provider runs again for layout slots, and overflow entries are
// removed. A provider failure leaves the slot's current value in place.
func (o *Object) Reset(name string) error {
	if i, ok := o.typ.table.IndexOf(name); ok {
		m := o.typ.table.At(i).Member
		v, err := m.DefaultValue()
		if err != nil {
			return errors.DefaultFailed(errors.PhaseAccess, o.typ.name, name, err)
		}
		o.slots[i] = v
		return nil
	}
	if o.typ.overflow {
		if _, ok := o.overflowMap()[name]; ok {
			delete(o.overflowMap(), name)
			return nil
		}
	}
	return errors.UnknownAttribute(errors.PhaseAccess, o.typ.name, name)
}

// Sizeof returns the approximate per-instance footprint in bytes: the
// Object header plus the slot array. Values held in slots are not
// followed.
func (o *Object) Sizeof() uintptr {
	var cell any
	return unsafe.Sizeof(*o) + uintptr(cap(o.slots))*unsafe.Sizeof(cell)
}

// Connect attaches a callback to a signal on this instance.
func (o *Object) Connect(sig *signal.Signal, fn signal.Callback) *signal.Connection {
	return o.hub.Connect(sig, fn)
}

// Disconnect detaches every callback connected to the signal.
func (o *Object) Disconnect(sig *signal.Signal) {
	o.hub.Disconnect(sig)
}

// DisconnectAll detaches every callback from every signal.
func (o *Object) DisconnectAll() {
	o.hub.DisconnectAll()
}

// Emit dispatches a signal to this instance's connected callbacks.
func (o *Object) Emit(sig *signal.Signal, args ...any) {
	o.hub.Emit(sig, args...)
}

func (o *Object) overflowMap() map[string]any {
	return o.slots[len(o.slots)-1].(map[string]any)
}
