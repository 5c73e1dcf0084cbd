// Package errors provides structured error types for the atom library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the offending type and attribute names plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDefine, errors.KindLayoutConflict).
//		Type("Point3D").
//		Attr("x").
//		Detail("bases disagree on slot assignment").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownAttribute(errors.PhaseAccess, "Point", "z")
//	err := errors.LayoutConflict("Point3D", "x", "Point", "Vec")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
