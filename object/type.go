package object

import (
	"go.uber.org/zap"

	"github.com/hejia-v/atom/errors"
	"github.com/hejia-v/atom/layout"
)

// Type is a slotted type: a name, its ordered bases, and the frozen
// layout table computed for it at definition time. A Type is immutable
// once DefineType returns it; redefining a name produces a fresh Type
// with its own table, and instances constructed under the old Type keep
// referencing the old table.
type Type struct {
	table    *layout.Table
	name     string
	bases    []*Type
	overflow bool
}

// DefineOption configures a DefineType call.
type DefineOption func(*defineConfig)

type defineConfig struct {
	computeOpts []layout.ComputeOption
	overflow    bool
}

// WithDynamicOverflow opts the type in to a dynamic overflow area: one
// explicitly flagged extra slot holding a name-to-value map for
// attributes outside the layout. Derived types inherit the opt-in.
func WithDynamicOverflow() DefineOption {
	return func(c *defineConfig) {
		c.overflow = true
	}
}

// WithConflictPolicy forwards the base-merge conflict policy to the
// layout compiler.
func WithConflictPolicy(p layout.ConflictPolicy) DefineOption {
	return func(c *defineConfig) {
		c.computeOpts = append(c.computeOpts, layout.WithConflictPolicy(p))
	}
}

// DefineType compiles a new slotted type from its bases (in declaration
// order) and its own members. The layout is computed once, frozen, and
// attached before the Type is returned, so no caller ever observes a
// partially built table. Bases must already be defined.
func DefineType(name string, bases []*Type, members []layout.Member, opts ...DefineOption) (*Type, error) {
	if name == "" {
		return nil, errors.InvalidInput(errors.PhaseDefine, "type with empty name")
	}

	cfg := defineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	baseTables := make([]*layout.Table, len(bases))
	for i, b := range bases {
		if b == nil {
			return nil, errors.UndefinedBase(name, i)
		}
		baseTables[i] = b.table
		if b.overflow {
			cfg.overflow = true
		}
	}

	table, err := layout.Compute(name, baseTables, members, cfg.computeOpts...)
	if err != nil {
		return nil, err
	}

	t := &Type{
		name:     name,
		bases:    append([]*Type(nil), bases...),
		table:    table,
		overflow: cfg.overflow,
	}

	Logger().Debug("type defined",
		zap.String("type", name),
		zap.Int("bases", len(bases)),
		zap.Int("slots", table.SlotCount()),
		zap.Bool("overflow", cfg.overflow))

	return t, nil
}

// Name returns the type's name.
func (t *Type) Name() string {
	return t.name
}

// Layout returns the frozen layout table.
func (t *Type) Layout() *layout.Table {
	return t.table
}

// SlotCount returns the number of layout slots an instance allocates.
// The flagged overflow slot, when enabled, is not part of the layout.
func (t *Type) SlotCount() int {
	return t.table.SlotCount()
}

// Bases returns the type's bases in declaration order.
func (t *Type) Bases() []*Type {
	return append([]*Type(nil), t.bases...)
}

// Member returns the descriptor stored for an attribute name.
func (t *Type) Member(name string) (layout.Member, bool) {
	slot, ok := t.table.Lookup(name)
	if !ok {
		return layout.Member{}, false
	}
	return slot.Member, true
}

// Members returns all descriptors in slot order.
func (t *Type) Members() []layout.Member {
	ms := make([]layout.Member, 0, t.table.SlotCount())
	t.table.Each(func(s layout.Slot) bool {
		ms = append(ms, s.Member)
		return true
	})
	return ms
}

// HasDynamicOverflow reports whether instances carry the flagged
// overflow slot.
func (t *Type) HasDynamicOverflow() bool {
	return t.overflow
}
