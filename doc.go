// Package atom implements a slotted object model: instance attributes
// live in a fixed-size, densely packed slot array instead of a
// per-instance map, while callers keep ordinary named-attribute access.
//
// # Why Slots
//
// A map-backed object pays for a hash lookup on every attribute access
// and for the map itself on every instance. A slotted object pays once,
// at type-definition time, to compile a layout table mapping each
// attribute name to a slot index; after that, every access is a direct
// array read or write and every instance allocates exactly one slot per
// distinct attribute name in its inheritance chain. The tradeoff is that
// the attribute set is closed when the type is defined.
//
// # Architecture
//
//	Package    Role
//	─────────────────────────────────────────────────────────
//	layout     Member descriptors, frozen Table, Compute
//	object     DefineType, Registry, slotted instances
//	state      ordered name-keyed export/import bridge
//	signal     explicit per-instance signal dispatch
//	errors     structured Phase/Kind error taxonomy
//
// Control flow: DefineType runs the layout compiler once and freezes the
// resulting table on the new Type. New sizes the instance's slot array
// from the table and fills it from each member's default provider.
// Get/Set resolve names through the table's precomputed index map.
//
// # Inheritance
//
// Types support single and multiple inheritance. A re-declared inherited
// name reuses its inherited slot (the most-derived descriptor wins, the
// table does not grow); a new name appends a slot. Bases that disagree on
// a name are merged first-base-wins by default, or rejected under the
// strict conflict policy. See the layout package for the exact rules.
//
// # State
//
// The state package exports an instance as an ordered name-keyed
// snapshot and imports it back by name, so persisted state survives
// layout recompilation and appended attributes, and fails loudly when an
// attribute disappeared.
//
// # Concurrency
//
// Frozen tables are immutable and safe for unlimited concurrent readers.
// Instances carry no internal locking; serializing concurrent mutation
// of one instance is the caller's responsibility.
package atom
