package state

import (
	"sort"

	"github.com/hejia-v/atom/errors"
	"github.com/hejia-v/atom/object"
)

// Entry is one exported attribute value.
type Entry struct {
	Value any
	Name  string
}

// Snapshot is an ordered, name-keyed capture of an instance's state. The
// order is the instance's slot order at export time, which makes
// snapshots deterministic for a given type version while keeping the
// serialized form independent of slot indices.
type Snapshot struct {
	byName  map[string]int
	entries []Entry
}

// Len returns the number of captured attributes.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Names returns the captured attribute names in export order.
func (s *Snapshot) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Get returns the captured value for a name.
func (s *Snapshot) Get(name string) (any, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].Value, true
}

// Each iterates entries in export order until fn returns false.
func (s *Snapshot) Each(fn func(Entry) bool) {
	for _, e := range s.entries {
		if !fn(e) {
			return
		}
	}
}

// FromMap builds a snapshot from a plain map. Entry order is the sorted
// name order, for determinism.
func FromMap(m map[string]any) *Snapshot {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	s := &Snapshot{byName: make(map[string]int, len(m))}
	for _, name := range names {
		s.byName[name] = len(s.entries)
		s.entries = append(s.entries, Entry{Name: name, Value: m[name]})
	}
	return s
}

// Export captures an instance's attribute values as an ordered
// name-keyed snapshot, walking the frozen layout table in slot order.
// Only layout attributes are exported; a dynamic overflow area, when
// present, is deliberately not part of the portable state.
func Export(obj *object.Object) (*Snapshot, error) {
	if obj == nil {
		return nil, errors.InvalidInput(errors.PhaseState, "nil instance")
	}

	table := obj.Type().Layout()
	s := &Snapshot{
		byName:  make(map[string]int, table.SlotCount()),
		entries: make([]Entry, 0, table.SlotCount()),
	}

	for _, name := range table.Names() {
		v, err := obj.Get(name)
		if err != nil {
			return nil, err
		}
		s.byName[name] = len(s.entries)
		s.entries = append(s.entries, Entry{Name: name, Value: v})
	}
	return s, nil
}

// Import applies a snapshot to an instance by name. A snapshot captured
// from an older type version imports cleanly into a layout with
// additional appended slots; a name with no slot in the instance's type
// fails with an unknown-attribute error, never a silent drop. The bridge
// never grows the layout.
func Import(obj *object.Object, snap *Snapshot) error {
	if obj == nil {
		return errors.InvalidInput(errors.PhaseState, "nil instance")
	}
	if snap == nil {
		return errors.InvalidInput(errors.PhaseState, "nil snapshot")
	}

	table := obj.Type().Layout()
	for _, e := range snap.entries {
		if !table.Contains(e.Name) {
			return errors.UnknownAttribute(errors.PhaseState, obj.Type().Name(), e.Name)
		}
	}
	for _, e := range snap.entries {
		if err := obj.Set(e.Name, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// ImportMap applies a plain name-to-value map, in sorted name order.
func ImportMap(obj *object.Object, m map[string]any) error {
	return Import(obj, FromMap(m))
}

// Clone constructs a fresh instance of the same type carrying the same
// attribute values.
func Clone(obj *object.Object) (*object.Object, error) {
	snap, err := Export(obj)
	if err != nil {
		return nil, err
	}
	fresh, err := object.New(obj.Type())
	if err != nil {
		return nil, err
	}
	if err := Import(fresh, snap); err != nil {
		return nil, err
	}
	return fresh, nil
}
