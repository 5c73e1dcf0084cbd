// Package object defines slotted types and their instances.
//
// A Type is introduced with DefineType, which compiles the type's layout
// table exactly once and freezes it before the type becomes visible.
// Every Object of that type stores its attribute values in a fixed-size
// slot array sized by the table; attribute access resolves the name to a
// slot index through the table and then reads or writes the slot
// directly. There is no per-instance map and no hash lookup on the hot
// path.
//
//	base, _ := object.DefineType("Base", nil, []layout.Member{
//		{Name: "height", Default: layout.Value(0.0)},
//	})
//	child, _ := object.DefineType("Child", []*object.Type{base}, []layout.Member{
//		{Name: "weight", Default: layout.Value(0.0)},
//	})
//
//	obj, _ := object.New(child)
//	_ = obj.Set("weight", 70.5)
//	v, _ := obj.Get("height") // 0.0
//
// Construction costs O(slot count): each slot's default provider runs
// once per instance, so defaults are never shared mutable state unless a
// provider deliberately returns a shared reference. If any provider
// fails, New returns the error and no partially initialized instance
// escapes.
//
// The attribute set of a type is closed at definition time. A type may
// opt in to a dynamic overflow area with WithDynamicOverflow, which adds
// one explicitly flagged extra slot holding a name-to-value map; without
// the opt-in, unknown names are always hard errors.
//
// Types must be defined before any type deriving from them, normally
// during single-threaded initialization. A frozen layout table is safe
// for unlimited concurrent readers. An Object itself carries no internal
// locking; concurrent mutation of one instance is the caller's to
// serialize.
package object
