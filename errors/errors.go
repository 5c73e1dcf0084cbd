package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDefine    Phase = "define"    // type definition and layout compilation
	PhaseConstruct Phase = "construct" // instance construction
	PhaseAccess    Phase = "access"    // slot get/set
	PhaseState     Phase = "state"     // state export/import
)

// Kind categorizes the error
type Kind string

const (
	KindLayoutConflict  Kind = "layout_conflict"
	KindUnknownAttr     Kind = "unknown_attribute"
	KindDuplicateMember Kind = "duplicate_member"
	KindUndefinedBase   Kind = "undefined_base"
	KindDefaultFailed   Kind = "default_failed"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Attr   string
	Type   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(" in type ")
		b.WriteString(e.Type)
	}
	if e.Attr != "" {
		b.WriteString(" at ")
		b.WriteString(e.Attr)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Attr sets the attribute name the error refers to
func (b *Builder) Attr(name string) *Builder {
	b.err.Attr = name
	return b
}

// Type sets the type name the error refers to
func (b *Builder) Type(name string) *Builder {
	b.err.Type = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LayoutConflict creates a layout conflict error naming the attribute and
// the two bases whose tables could not be merged.
func LayoutConflict(typeName, attr, firstBase, secondBase string) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindLayoutConflict,
		Type:   typeName,
		Attr:   attr,
		Detail: fmt.Sprintf("attribute declared by both base %q and base %q", firstBase, secondBase),
	}
}

// UnknownAttribute creates an unknown attribute error
func UnknownAttribute(phase Phase, typeName, attr string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownAttr,
		Type:   typeName,
		Attr:   attr,
		Detail: "no slot for attribute",
	}
}

// DuplicateMember creates a duplicate declaration error
func DuplicateMember(typeName, attr string) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindDuplicateMember,
		Type:   typeName,
		Attr:   attr,
		Detail: "attribute declared more than once in the same body",
	}
}

// UndefinedBase creates an undefined base error
func UndefinedBase(typeName string, position int) *Error {
	return &Error{
		Phase:  PhaseDefine,
		Kind:   KindUndefinedBase,
		Type:   typeName,
		Detail: fmt.Sprintf("base at position %d has no compiled layout", position),
	}
}

// DefaultFailed wraps a default provider failure
func DefaultFailed(phase Phase, typeName, attr string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindDefaultFailed,
		Type:  typeName,
		Attr:  attr,
		Cause: cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
