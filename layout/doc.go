// Package layout computes and holds per-type slot layouts.
//
// A type's attributes are stored in a fixed-size slot array on each
// instance instead of a per-instance map. The layout Table maps each
// attribute name to its slot index and is computed exactly once, at type
// definition time, by Compute. Once returned, a Table is frozen: it is
// never mutated and may be shared by any number of concurrent readers.
//
// # Layout Compilation
//
// Compute merges the base types' tables left to right and then applies the
// newly declared members:
//
//   - a declared name already present in the merged bases is an override:
//     the inherited slot index is kept and the descriptor is replaced, so
//     the most-derived declaration wins without growing the table
//   - a new name is appended at the next free slot index
//
// The resulting slot count therefore equals exactly the number of distinct
// attribute names across the inheritance chain. There is no padding and no
// over-allocation.
//
// # Multiple Inheritance
//
// When several bases contribute the same name, the default policy is
// first-base-wins: the leftmost base fixes both the slot index and the
// descriptor, and later bases' same-named members are shadowed. Members
// that two bases inherited from a shared ancestor carry the ancestor as
// their declaring owner and merge cleanly. Later bases' genuinely new
// names receive fresh slot indices in the merged table; their original
// indices are not preserved.
//
// WithConflictPolicy(ConflictReject) selects the strict policy instead:
// a name independently declared by two bases aborts the definition with a
// layout_conflict error naming the attribute and both bases.
package layout
