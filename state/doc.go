// Package state converts slotted instances to and from an ordered,
// name-keyed snapshot of their attribute values.
//
// Snapshots are keyed by attribute name, never by slot index: slot
// indices are an implementation detail of one process's type-compilation
// order and are not stable across rebuilds. State captured from one
// version of a type imports into a later version whose layout gained
// appended slots; a name that no longer has a slot fails the import
// outright rather than being dropped silently. Import validates every
// name before writing anything, so a failed import leaves the target
// instance untouched.
package state
