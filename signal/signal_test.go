package signal

import (
	"testing"
)

func TestConnectEmit(t *testing.T) {
	var hub Hub
	ping := New("ping")

	var got []any
	hub.Connect(ping, func(args ...any) {
		got = append(got, args...)
	})

	hub.Emit(ping, 1, "two")

	if len(got) != 2 || got[0] != 1 || got[1] != "two" {
		t.Errorf("callback args: got %v", got)
	}
}

func TestEmitOrder(t *testing.T) {
	var hub Hub
	sig := New("sig")

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		hub.Connect(sig, func(...any) { order = append(order, i) })
	}

	hub.Emit(sig)

	for i, v := range order {
		if v != i {
			t.Fatalf("dispatch order: got %v", order)
		}
	}
}

func TestEmitUnconnected(t *testing.T) {
	var hub Hub
	hub.Emit(New("nobody"), 1, 2, 3) // must not panic
}

func TestSignalIdentity(t *testing.T) {
	var hub Hub
	a := New("same")
	b := New("same")

	fired := 0
	hub.Connect(a, func(...any) { fired++ })

	hub.Emit(b)
	if fired != 0 {
		t.Error("distinct signals with equal names must not share callbacks")
	}
	hub.Emit(a)
	if fired != 1 {
		t.Errorf("fired: got %d, want 1", fired)
	}
}

func TestDisconnect(t *testing.T) {
	var hub Hub
	sig := New("sig")

	fired := 0
	conn := hub.Connect(sig, func(...any) { fired++ })
	hub.Connect(sig, func(...any) { fired += 10 })

	conn.Disconnect()
	conn.Disconnect() // second call is a no-op

	hub.Emit(sig)
	if fired != 10 {
		t.Errorf("fired: got %d, want 10", fired)
	}
	if hub.Connected(sig) != 1 {
		t.Errorf("connected: got %d, want 1", hub.Connected(sig))
	}
}

func TestDisconnectSignal(t *testing.T) {
	var hub Hub
	a := New("a")
	b := New("b")

	fired := 0
	hub.Connect(a, func(...any) { fired++ })
	hub.Connect(b, func(...any) { fired += 10 })

	hub.Disconnect(a)
	hub.Emit(a)
	hub.Emit(b)

	if fired != 10 {
		t.Errorf("fired: got %d, want 10", fired)
	}
}

func TestDisconnectAll(t *testing.T) {
	var hub Hub
	a := New("a")
	b := New("b")

	fired := 0
	hub.Connect(a, func(...any) { fired++ })
	hub.Connect(b, func(...any) { fired++ })

	hub.DisconnectAll()
	hub.Emit(a)
	hub.Emit(b)

	if fired != 0 {
		t.Errorf("fired: got %d, want 0", fired)
	}
}

func TestDisconnectDuringDispatch(t *testing.T) {
	var hub Hub
	sig := New("sig")

	fired := 0
	var first *Connection
	first = hub.Connect(sig, func(...any) {
		fired++
		first.Disconnect()
	})
	hub.Connect(sig, func(...any) { fired += 10 })

	hub.Emit(sig)
	if fired != 11 {
		t.Errorf("fired: got %d, want 11 (neighbor must still run)", fired)
	}

	hub.Emit(sig)
	if fired != 21 {
		t.Errorf("fired after disconnect: got %d, want 21", fired)
	}
}

func TestNilArgs(t *testing.T) {
	var hub Hub
	sig := New("sig")

	if c := hub.Connect(nil, func(...any) {}); c == nil {
		t.Error("Connect(nil, fn) must return a usable connection")
	}
	if c := hub.Connect(sig, nil); c == nil {
		t.Error("Connect(sig, nil) must return a usable connection")
	}
	hub.Emit(sig) // neither registration may fire or panic
}
