package layout

import (
	"github.com/hejia-v/atom/errors"
)

// ConflictPolicy selects how base tables that disagree on a name are
// merged.
type ConflictPolicy int

const (
	// ConflictFirstBaseWins keeps the leftmost base's slot and descriptor
	// for a name; later bases' same-named members are shadowed.
	ConflictFirstBaseWins ConflictPolicy = iota

	// ConflictReject fails the definition when two bases independently
	// declare the same name.
	ConflictReject
)

// ComputeOption configures a single Compute call.
type ComputeOption func(*computeConfig)

type computeConfig struct {
	policy ConflictPolicy
}

// WithConflictPolicy sets the base-merge conflict policy.
func WithConflictPolicy(p ConflictPolicy) ComputeOption {
	return func(c *computeConfig) {
		c.policy = p
	}
}

// Compute builds the frozen layout table for a new type from its bases'
// tables (in base-declaration order) and its own declared members.
//
// Bases must already be compiled; a nil base table aborts the definition.
// The computation is deterministic: fixed bases and fixed declaration
// order always produce the same slot assignment. On error no table is
// returned, so a failed definition never leaves a partial layout behind.
func Compute(typeName string, bases []*Table, declared []Member, opts ...ComputeOption) (*Table, error) {
	cfg := computeConfig{policy: ConflictFirstBaseWins}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		typeName: typeName,
		byName:   make(map[string]int),
	}

	// origin tracks which base first contributed each inherited name and
	// the type that declared it there, for conflict detection under
	// ConflictReject.
	type provenance struct {
		base  *Table
		owner string
	}
	origin := make(map[string]provenance)

	for i, base := range bases {
		if base == nil {
			return nil, errors.UndefinedBase(typeName, i)
		}
		for _, s := range base.slots {
			name := s.Member.Name
			if _, seen := t.byName[name]; !seen {
				t.byName[name] = len(t.slots)
				t.slots = append(t.slots, Slot{Member: s.Member, Index: len(t.slots)})
				origin[name] = provenance{base: base, owner: s.Member.Owner}
				continue
			}
			// Same name from a later base. The same declaring owner means
			// both bases inherited the member from a shared ancestor;
			// distinct declarations are a real conflict.
			if cfg.policy == ConflictReject && s.Member.Owner != origin[name].owner {
				return nil, errors.LayoutConflict(typeName, name, origin[name].base.typeName, base.typeName)
			}
			// First base wins: slot and descriptor both stay.
		}
	}

	seenDecl := make(map[string]bool, len(declared))
	for _, m := range declared {
		if m.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseDefine, "member with empty name")
		}
		if seenDecl[m.Name] {
			return nil, errors.DuplicateMember(typeName, m.Name)
		}
		seenDecl[m.Name] = true

		if m.Owner == "" {
			m.Owner = typeName
		}

		if at, ok := t.byName[m.Name]; ok {
			// Override: reuse the inherited slot, most-derived descriptor
			// wins. The table does not grow.
			t.slots[at] = Slot{Member: m, Index: at}
			continue
		}
		t.byName[m.Name] = len(t.slots)
		t.slots = append(t.slots, Slot{Member: m, Index: len(t.slots)})
	}

	return t, nil
}
