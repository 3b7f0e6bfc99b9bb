package dict

import (
	"errors"
	"testing"

	"github.com/joshuapare/dictkit/pkg/types"
)

// Test_SetAtFind tests basic storage and retrieval.
func Test_SetAtFind(t *testing.T) {
	d := New()
	d.Set("a", NewInt64(42))
	d.Set("b", NewString("hello"))

	v, err := d.At("a")
	if err != nil {
		t.Fatalf("At(a) failed: %v", err)
	}
	if v.Kind() != KindInt64 {
		t.Errorf("At(a) kind = %v, want %v", v.Kind(), KindInt64)
	}

	if _, err := d.At("missing"); err == nil {
		t.Error("At(missing) should fail")
	} else {
		var ke *types.KeyError
		if !errors.As(err, &ke) {
			t.Errorf("At(missing) error = %T, want *types.KeyError", err)
		} else if ke.Key != "missing" {
			t.Errorf("KeyError.Key = %q, want %q", ke.Key, "missing")
		}
	}

	if _, ok := d.Find("b"); !ok {
		t.Error("Find(b) should hit")
	}
	if _, ok := d.Find("missing"); ok {
		t.Error("Find(missing) should miss")
	}
}

// Test_SetOverwrite tests that Set overwrites in place.
func Test_SetOverwrite(t *testing.T) {
	d := New()
	d.Set("k", NewInt64(1))
	d.Set("k", NewString("two"))

	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
	v, err := d.At("k")
	if err != nil {
		t.Fatalf("At(k) failed: %v", err)
	}
	if v.Kind() != KindString {
		t.Errorf("overwritten kind = %v, want %v", v.Kind(), KindString)
	}
}

// Test_Known tests the existence probe.
func Test_Known(t *testing.T) {
	d := New()
	d.Set("present", NewBool(true))

	if !d.Known("present") {
		t.Error("Known(present) = false, want true")
	}
	if d.Known("absent") {
		t.Error("Known(absent) = true, want false")
	}
}

// Test_KnownDoesNotMarkAccessed verifies that probing existence never
// certifies a key as handled.
func Test_KnownDoesNotMarkAccessed(t *testing.T) {
	d := New()
	d.Set("opt", NewDouble(1.0))
	d.InitAccessFlags(ThreadLocal)

	d.Known("opt")

	err := d.AllEntriesAccessed(ThreadLocal, "Test", "params")
	if err == nil {
		t.Fatal("audit should fail after Known-only probe")
	}
	var ue *types.UnaccessedError
	if !errors.As(err, &ue) {
		t.Fatalf("audit error = %T, want *types.UnaccessedError", err)
	}
	if len(ue.Keys) != 1 || ue.Keys[0] != "opt" {
		t.Errorf("missed keys = %v, want [opt]", ue.Keys)
	}
}

// Test_Delete tests entry erasure.
func Test_Delete(t *testing.T) {
	d := New()
	d.Set("k", NewInt64(1))
	d.Delete("k")

	if d.Known("k") {
		t.Error("key should be gone after Delete")
	}
	d.Delete("k") // deleting an absent key is a no-op
}

// Test_Keys tests deterministic key order.
func Test_Keys(t *testing.T) {
	d := New()
	for _, k := range []string{"zeta", "alpha", "mid"} {
		d.Set(k, NewBool(true))
	}
	keys := d.Keys()
	want := []string{"alpha", "mid", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

// Test_AuditPass exercises the full audit bracket: a partial read fails and
// names exactly the unread keys, a completed read passes.
func Test_AuditPass(t *testing.T) {
	d := New()
	d.Set("a", NewInt64(1))
	d.Set("b", NewInt64(2))

	d.InitAccessFlags(ThreadLocal)
	if _, err := d.At("a"); err != nil {
		t.Fatalf("At(a) failed: %v", err)
	}

	err := d.AllEntriesAccessed(ThreadLocal, "Connect", "conn_spec")
	if err == nil {
		t.Fatal("audit should fail with b unread")
	}
	var ue *types.UnaccessedError
	if !errors.As(err, &ue) {
		t.Fatalf("audit error = %T, want *types.UnaccessedError", err)
	}
	if len(ue.Keys) != 1 || ue.Keys[0] != "b" {
		t.Errorf("missed keys = %v, want [b]", ue.Keys)
	}
	if ue.Where != "Connect" || ue.What != "conn_spec" {
		t.Errorf("context = (%q, %q), want (Connect, conn_spec)", ue.Where, ue.What)
	}

	if _, err := d.At("b"); err != nil {
		t.Fatalf("At(b) failed: %v", err)
	}
	if err := d.AllEntriesAccessed(ThreadLocal, "Connect", "conn_spec"); err != nil {
		t.Errorf("audit should pass after reading both keys, got %v", err)
	}
}

// Test_AuditListsEveryMissedKey verifies the error enumerates all unread
// keys, sorted, not just the first.
func Test_AuditListsEveryMissedKey(t *testing.T) {
	d := New()
	for _, k := range []string{"tau_m", "C_m", "V_th", "E_L"} {
		d.Set(k, NewDouble(1.0))
	}
	d.InitAccessFlags(ThreadLocal)
	if _, err := d.At("C_m"); err != nil {
		t.Fatal(err)
	}

	err := d.AllEntriesAccessed(ThreadLocal, "SetStatus", "params")
	var ue *types.UnaccessedError
	if !errors.As(err, &ue) {
		t.Fatalf("audit error = %T, want *types.UnaccessedError", err)
	}
	want := []string{"E_L", "V_th", "tau_m"}
	if len(ue.Keys) != len(want) {
		t.Fatalf("missed keys = %v, want %v", ue.Keys, want)
	}
	for i := range want {
		if ue.Keys[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, ue.Keys[i], want[i])
		}
	}
}

// Test_InsertMarksAccessed verifies that writing a key counts as handling it.
func Test_InsertMarksAccessed(t *testing.T) {
	d := New()
	d.Set("c", NewDouble(3.0))

	if err := d.AllEntriesAccessed(ThreadLocal, "Test", "params"); err != nil {
		t.Errorf("freshly written key should pass the audit, got %v", err)
	}
}

// Test_AuditEmptyDict verifies an empty dictionary always passes.
func Test_AuditEmptyDict(t *testing.T) {
	d := New()
	d.InitAccessFlags(ThreadLocal)
	if err := d.AllEntriesAccessed(ThreadLocal, "Test", "params"); err != nil {
		t.Errorf("empty dictionary should pass the audit, got %v", err)
	}
}

// Test_Aliasing verifies that handle copies share storage.
func Test_Aliasing(t *testing.T) {
	h1 := New()
	h1.Set("k", NewInt64(1))

	h2 := h1
	h2.Set("k", NewInt64(99))
	h2.Set("extra", NewBool(true))

	v, err := h1.At("k")
	if err != nil {
		t.Fatal(err)
	}
	got, err := CastValue[int64](v, "k")
	if err != nil {
		t.Fatal(err)
	}
	if got != 99 {
		t.Errorf("mutation through h2 not visible through h1: got %d", got)
	}
	if !h1.Known("extra") {
		t.Error("insertion through h2 not visible through h1")
	}
}

// Test_UpdateDictionary tests the bulk merge.
func Test_UpdateDictionary(t *testing.T) {
	src := New()
	src.Set("a", NewInt64(1))
	src.Set("b", NewString("x"))

	dst := New()
	dst.Set("b", NewString("old"))
	dst.Set("c", NewBool(true))

	if !src.UpdateDictionary(dst) {
		t.Error("UpdateDictionary should report a non-empty source")
	}
	if dst.Len() != 3 {
		t.Errorf("target Len() = %d, want 3", dst.Len())
	}
	v, _ := dst.At("b")
	s, err := CastValue[string](v, "b")
	if err != nil || s != "x" {
		t.Errorf("target[b] = %q, %v; want overwritten value %q", s, err, "x")
	}

	if New().UpdateDictionary(dst) {
		t.Error("UpdateDictionary from an empty source should report false")
	}
}

// Test_EqualityIgnoresOrderAndFlags verifies structural equality is
// independent of insertion order and access history.
func Test_EqualityIgnoresOrderAndFlags(t *testing.T) {
	d1 := New()
	d1.Set("a", NewInt64(1))
	d1.Set("b", NewDoubleVector([]float64{1.5, 2.5}))

	d2 := New()
	d2.Set("b", NewDoubleVector([]float64{1.5, 2.5}))
	d2.Set("a", NewInt64(1))

	// Diverge the access histories.
	d1.InitAccessFlags(ThreadLocal)
	if _, err := d2.At("a"); err != nil {
		t.Fatal(err)
	}

	eq, err := d1.Equal(d2)
	if err != nil {
		t.Fatalf("Equal failed: %v", err)
	}
	if !eq {
		t.Error("dictionaries with identical contents should compare equal")
	}
}

// Test_Inequality covers cardinality, key-set and value differences.
func Test_Inequality(t *testing.T) {
	base := func() *Dict {
		d := New()
		d.Set("a", NewInt64(1))
		d.Set("b", NewString("x"))
		return d
	}

	tests := []struct {
		name   string
		mutate func(*Dict)
	}{
		{"extra key", func(d *Dict) { d.Set("c", NewBool(true)) }},
		{"missing key", func(d *Dict) { d.Delete("b") }},
		{"different value", func(d *Dict) { d.Set("a", NewInt64(2)) }},
		{"different alternative", func(d *Dict) { d.Set("a", NewInt32(1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base()
			tt.mutate(other)
			eq, err := base().Equal(other)
			if err != nil {
				t.Fatalf("Equal failed: %v", err)
			}
			if eq {
				t.Error("dictionaries should differ")
			}
		})
	}
}

// Test_NestedDictEquality verifies equality recurses into nested
// dictionaries.
func Test_NestedDictEquality(t *testing.T) {
	inner1 := New()
	inner1.Set("x", NewDouble(1.0))
	inner2 := New()
	inner2.Set("x", NewDouble(1.0))

	d1 := New()
	d1.Set("sub", NewDict(inner1))
	d2 := New()
	d2.Set("sub", NewDict(inner2))

	eq, err := d1.Equal(d2)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("equal nested dictionaries should compare equal")
	}

	inner2.Set("x", NewDouble(2.0))
	eq, err = d1.Equal(d2)
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Error("differing nested dictionaries should compare unequal")
	}
}
