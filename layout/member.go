package layout

// DefaultFunc produces the initial value for a slot. It is invoked once
// per instance at construction time and again on an explicit reset, so it
// must be safe to call any number of times. A provider that allocates a
// fresh value on every call keeps instances isolated from each other; a
// provider may deliberately return a shared reference instead.
type DefaultFunc func() (any, error)

// Member declares a single named attribute: its name, its default value
// provider, and the name of the type whose body declared it. Members are
// immutable value objects; override identity is by Name, not by Member
// instance.
type Member struct {
	Default DefaultFunc
	Name    string
	Owner   string
}

// DefaultValue evaluates the member's default provider. A member without
// a provider defaults to nil.
func (m Member) DefaultValue() (any, error) {
	if m.Default == nil {
		return nil, nil
	}
	return m.Default()
}

// WithOwner returns a copy of the member attributed to the given type.
func (m Member) WithOwner(owner string) Member {
	m.Owner = owner
	return m
}

// Value returns a DefaultFunc that yields v on every call. Useful for
// immutable defaults; for mutable defaults prefer a provider that
// allocates per call.
func Value(v any) DefaultFunc {
	return func() (any, error) { return v, nil }
}
