// Package signal provides explicit, per-instance signal dispatch.
//
// A Signal is an identity; a Hub holds the callbacks connected to each
// signal for one owning instance and dispatches Emit calls to them in
// connection order. Dispatch is explicit only: nothing in the object
// model emits signals implicitly on attribute writes.
//
//	var hub signal.Hub
//	changed := signal.New("changed")
//	conn := hub.Connect(changed, func(args ...any) { ... })
//	hub.Emit(changed, "height", 1.82)
//	conn.Disconnect()
package signal
