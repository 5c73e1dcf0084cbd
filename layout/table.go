package layout

// Slot binds an attribute descriptor to its storage index.
type Slot struct {
	Member Member
	Index  int
}

// Table is the frozen per-type layout: the ordered sequence of slots plus
// a precomputed name-to-index map for O(1) resolution. Slot indices form
// the contiguous range [0, SlotCount) and every name is unique.
//
// A Table is immutable after Compute returns it and is safe for unlimited
// concurrent readers without locking.
type Table struct {
	byName   map[string]int
	typeName string
	slots    []Slot
}

// TypeName returns the name of the type this table was compiled for.
func (t *Table) TypeName() string {
	return t.typeName
}

// SlotCount returns the instance slot array length.
func (t *Table) SlotCount() int {
	return len(t.slots)
}

// IndexOf resolves an attribute name to its slot index.
func (t *Table) IndexOf(name string) (int, bool) {
	i, ok := t.byName[name]
	return i, ok
}

// Lookup returns the slot for an attribute name.
func (t *Table) Lookup(name string) (Slot, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Slot{}, false
	}
	return t.slots[i], true
}

// Contains reports whether the name has a slot in this table.
func (t *Table) Contains(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// At returns the slot at index i. The caller must keep i within
// [0, SlotCount).
func (t *Table) At(i int) Slot {
	return t.slots[i]
}

// Each iterates slots in index order until fn returns false.
func (t *Table) Each(fn func(Slot) bool) {
	for _, s := range t.slots {
		if !fn(s) {
			return
		}
	}
}

// Names returns the attribute names in slot order.
func (t *Table) Names() []string {
	names := make([]string, len(t.slots))
	for i, s := range t.slots {
		names[i] = s.Member.Name
	}
	return names
}
