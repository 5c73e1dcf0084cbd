package signal

// Signal is a named identity that callbacks are connected under. Two
// signals are the same only if they are the same *Signal; the name is
// for diagnostics.
type Signal struct {
	name string
}

// New creates a signal identity.
func New(name string) *Signal {
	return &Signal{name: name}
}

// Name returns the signal's diagnostic name.
func (s *Signal) Name() string {
	return s.name
}

// Callback receives the arguments passed to Emit.
type Callback func(args ...any)

// Connection represents one connected callback and can detach it.
type Connection struct {
	hub *Hub
	sig *Signal
	id  uint64
}

// Disconnect detaches the callback. Disconnecting twice is a no-op.
func (c *Connection) Disconnect() {
	if c == nil || c.hub == nil {
		return
	}
	c.hub.remove(c.sig, c.id)
	c.hub = nil
}

// Hub dispatches signals to connected callbacks. The zero value is ready
// to use; storage is allocated on first Connect, so objects that never
// use signals pay nothing. A Hub carries no internal locking: like the
// slot array it belongs to, concurrent use of one instance is the
// caller's to serialize.
type Hub struct {
	sets   []callbackSet
	nextID uint64
}

type callbackSet struct {
	sig *Signal
	fns []entry
}

type entry struct {
	fn Callback
	id uint64
}

// Connect attaches a callback to a signal and returns its connection.
func (h *Hub) Connect(sig *Signal, fn Callback) *Connection {
	if sig == nil || fn == nil {
		return &Connection{}
	}

	h.nextID++
	id := h.nextID

	for i := range h.sets {
		if h.sets[i].sig == sig {
			h.sets[i].fns = append(h.sets[i].fns, entry{id: id, fn: fn})
			return &Connection{hub: h, sig: sig, id: id}
		}
	}
	h.sets = append(h.sets, callbackSet{sig: sig, fns: []entry{{id: id, fn: fn}}})
	return &Connection{hub: h, sig: sig, id: id}
}

// Disconnect detaches every callback connected to the signal.
func (h *Hub) Disconnect(sig *Signal) {
	for i := range h.sets {
		if h.sets[i].sig == sig {
			h.sets = append(h.sets[:i], h.sets[i+1:]...)
			return
		}
	}
}

// DisconnectAll detaches every callback from every signal.
func (h *Hub) DisconnectAll() {
	h.sets = nil
}

// Emit invokes the callbacks connected to the signal, in connection
// order, with the given arguments. Unconnected signals are a no-op.
func (h *Hub) Emit(sig *Signal, args ...any) {
	for i := range h.sets {
		if h.sets[i].sig == sig {
			// Snapshot so a callback disconnecting mid-dispatch does not
			// skip its neighbors.
			fns := append([]entry(nil), h.sets[i].fns...)
			for _, e := range fns {
				e.fn(args...)
			}
			return
		}
	}
}

// Connected reports how many callbacks are attached to the signal.
func (h *Hub) Connected(sig *Signal) int {
	for i := range h.sets {
		if h.sets[i].sig == sig {
			return len(h.sets[i].fns)
		}
	}
	return 0
}

func (h *Hub) remove(sig *Signal, id uint64) {
	for i := range h.sets {
		if h.sets[i].sig != sig {
			continue
		}
		fns := h.sets[i].fns
		for j := range fns {
			if fns[j].id == id {
				h.sets[i].fns = append(fns[:j], fns[j+1:]...)
				break
			}
		}
		if len(h.sets[i].fns) == 0 {
			h.sets = append(h.sets[:i], h.sets[i+1:]...)
		}
		return
	}
}
