package state

import (
	"errors"
	"testing"

	atomerr "github.com/hejia-v/atom/errors"
	"github.com/hejia-v/atom/layout"
	"github.com/hejia-v/atom/object"
)

func personType(t *testing.T) *object.Type {
	t.Helper()
	typ, err := object.DefineType("Person", nil, []layout.Member{
		{Name: "height", Default: layout.Value(0.0)},
		{Name: "weight", Default: layout.Value(0.0)},
		{Name: "name", Default: layout.Value("")},
	})
	if err != nil {
		t.Fatal(err)
	}
	return typ
}

func TestExportOrder(t *testing.T) {
	typ := personType(t)
	obj, _ := object.New(typ)
	_ = obj.Set("name", "ada")

	snap, err := Export(obj)
	if err != nil {
		t.Fatal(err)
	}

	names := snap.Names()
	want := []string{"height", "weight", "name"}
	if len(names) != len(want) {
		t.Fatalf("names: got %v", names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("names[%d]: got %q, want %q (slot order)", i, names[i], n)
		}
	}

	if v, ok := snap.Get("name"); !ok || v != "ada" {
		t.Errorf("Get(name): got %v/%v", v, ok)
	}
	if _, ok := snap.Get("ghost"); ok {
		t.Error("Get(ghost) should miss")
	}
}

func TestRoundTrip(t *testing.T) {
	typ := personType(t)
	obj, _ := object.New(typ)
	_ = obj.Set("height", 1.7)
	_ = obj.Set("weight", 62.0)
	_ = obj.Set("name", "grace")

	snap, err := Export(obj)
	if err != nil {
		t.Fatal(err)
	}

	fresh, _ := object.New(typ)
	if err := Import(fresh, snap); err != nil {
		t.Fatal(err)
	}

	for _, name := range typ.Layout().Names() {
		want, _ := obj.Get(name)
		got, _ := fresh.Get(name)
		if got != want {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}
}

func TestForwardCompatibleImport(t *testing.T) {
	// State captured under the old version imports into a layout that
	// gained an appended slot.
	v1, _ := object.DefineType("Record", nil, []layout.Member{
		{Name: "a", Default: layout.Value(0)},
	})
	old, _ := object.New(v1)
	_ = old.Set("a", 7)
	snap, _ := Export(old)

	v2, _ := object.DefineType("Record", nil, []layout.Member{
		{Name: "a", Default: layout.Value(0)},
		{Name: "b", Default: layout.Value(0)},
	})
	fresh, _ := object.New(v2)

	if err := Import(fresh, snap); err != nil {
		t.Fatal(err)
	}
	if v, _ := fresh.Get("a"); v != 7 {
		t.Errorf("a: got %v, want 7", v)
	}
	if v, _ := fresh.Get("b"); v != 0 {
		t.Errorf("b: got %v, want default 0", v)
	}
}

func TestRemovedNameFailsImport(t *testing.T) {
	v1, _ := object.DefineType("Record", nil, []layout.Member{
		{Name: "a", Default: layout.Value(0)},
		{Name: "gone", Default: layout.Value(0)},
	})
	old, _ := object.New(v1)
	_ = old.Set("a", 1)
	_ = old.Set("gone", 2)
	snap, _ := Export(old)

	v2, _ := object.DefineType("Record", nil, []layout.Member{
		{Name: "a", Default: layout.Value(0)},
	})
	fresh, _ := object.New(v2)

	err := Import(fresh, snap)
	if !errors.Is(err, &atomerr.Error{Phase: atomerr.PhaseState, Kind: atomerr.KindUnknownAttr}) {
		t.Fatalf("wrong error: %v", err)
	}

	// Validation happens before any write.
	if v, _ := fresh.Get("a"); v != 0 {
		t.Errorf("failed import wrote a partial state: a=%v", v)
	}
}

func TestImportMap(t *testing.T) {
	typ := personType(t)
	obj, _ := object.New(typ)

	if err := ImportMap(obj, map[string]any{"height": 1.6, "name": "joan"}); err != nil {
		t.Fatal(err)
	}
	if v, _ := obj.Get("height"); v != 1.6 {
		t.Errorf("height: got %v", v)
	}
	if v, _ := obj.Get("weight"); v != 0.0 {
		t.Errorf("weight: got %v, want untouched default", v)
	}

	if err := ImportMap(obj, map[string]any{"girth": 1}); err == nil {
		t.Error("unknown name must fail, not drop")
	}
}

func TestOverflowExcludedFromExport(t *testing.T) {
	typ, _ := object.DefineType("Loose", nil, []layout.Member{
		{Name: "fixed", Default: layout.Value(1)},
	}, object.WithDynamicOverflow())
	obj, _ := object.New(typ)
	_ = obj.Set("extra", "x")

	snap, err := Export(obj)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Len() != 1 {
		t.Errorf("snapshot entries: got %d, want layout-only 1", snap.Len())
	}
	if _, ok := snap.Get("extra"); ok {
		t.Error("overflow entry leaked into portable state")
	}
}

func TestClone(t *testing.T) {
	typ := personType(t)
	obj, _ := object.New(typ)
	_ = obj.Set("name", "mary")

	dup, err := Clone(obj)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := dup.Get("name"); v != "mary" {
		t.Errorf("clone name: got %v", v)
	}

	_ = dup.Set("name", "other")
	if v, _ := obj.Get("name"); v != "mary" {
		t.Error("clone shares state with original")
	}
}

func TestNilArguments(t *testing.T) {
	typ := personType(t)
	obj, _ := object.New(typ)

	if _, err := Export(nil); err == nil {
		t.Error("Export(nil) must fail")
	}
	if err := Import(nil, &Snapshot{}); err == nil {
		t.Error("Import(nil, snap) must fail")
	}
	if err := Import(obj, nil); err == nil {
		t.Error("Import(obj, nil) must fail")
	}
}

func TestSnapshotEach(t *testing.T) {
	snap := FromMap(map[string]any{"b": 2, "a": 1, "c": 3})

	var seen []string
	snap.Each(func(e Entry) bool {
		seen = append(seen, e.Name)
		return e.Name != "b"
	})

	// FromMap orders by name; Each stops after "b".
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("visited: %v", seen)
	}
}
