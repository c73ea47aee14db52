package resource

import (
	"errors"
	"testing"
)

// TestPushAndGet tests that pushed values resolve through their handles
func TestPushAndGet(t *testing.T) {
	tbl := NewTable[string](4)

	h1, err := tbl.Push("first")
	if err != nil {
		t.Fatalf("Push() returned error: %v", err)
	}
	h2, err := tbl.Push("second")
	if err != nil {
		t.Fatalf("Push() returned error: %v", err)
	}

	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}

	if v, err := tbl.Get(h1); err != nil || v != "first" {
		t.Errorf("Get(h1) = (%q, %v), want (first, nil)", v, err)
	}
	if v, err := tbl.Get(h2); err != nil || v != "second" {
		t.Errorf("Get(h2) = (%q, %v), want (second, nil)", v, err)
	}
}

// TestGetUnknownHandle tests that never-issued handles do not resolve
func TestGetUnknownHandle(t *testing.T) {
	tbl := NewTable[int](4)

	if _, err := tbl.Get(Handle(0)); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Get on empty table returned %v, want ErrUnknownHandle", err)
	}

	h, _ := tbl.Push(42)
	if _, err := tbl.Get(h + 100); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Get with bogus handle returned %v, want ErrUnknownHandle", err)
	}
}

// TestRemove tests that removal returns the value and invalidates the handle
func TestRemove(t *testing.T) {
	tbl := NewTable[string](4)

	h, _ := tbl.Push("value")

	v, err := tbl.Remove(h)
	if err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}
	if v != "value" {
		t.Errorf("Remove() = %q, want value", v)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() after remove = %d, want 0", tbl.Len())
	}

	// the handle must now be stale
	if _, err := tbl.Get(h); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Get after remove returned %v, want ErrUnknownHandle", err)
	}
	// double remove is an error, not a panic
	if _, err := tbl.Remove(h); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("second Remove returned %v, want ErrUnknownHandle", err)
	}
}

// TestStaleHandleAfterSlotReuse tests that a removed handle never aliases
// a newer entry that reused its slot
func TestStaleHandleAfterSlotReuse(t *testing.T) {
	tbl := NewTable[string](4)

	old, _ := tbl.Push("old")
	if _, err := tbl.Remove(old); err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}

	// this push reuses the vacated slot
	fresh, err := tbl.Push("fresh")
	if err != nil {
		t.Fatalf("Push() returned error: %v", err)
	}

	if old == fresh {
		t.Fatal("reused slot issued an identical handle")
	}
	if _, err := tbl.Get(old); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("stale handle resolved after slot reuse: %v", err)
	}
	if v, err := tbl.Get(fresh); err != nil || v != "fresh" {
		t.Errorf("Get(fresh) = (%q, %v), want (fresh, nil)", v, err)
	}
}

// TestCapacity tests the capacity bound and that removal frees exactly one slot
func TestCapacity(t *testing.T) {
	tbl := NewTable[int](2)

	h1, _ := tbl.Push(1)
	if _, err := tbl.Push(2); err != nil {
		t.Fatalf("Push() returned error: %v", err)
	}

	if _, err := tbl.Push(3); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Push beyond capacity returned %v, want ErrCapacityExceeded", err)
	}

	// closing one connection frees exactly one slot
	if _, err := tbl.Remove(h1); err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}
	if _, err := tbl.Push(3); err != nil {
		t.Errorf("Push after remove returned %v, want nil", err)
	}
	if _, err := tbl.Push(4); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Push beyond capacity returned %v, want ErrCapacityExceeded", err)
	}
}

// TestDefaultCapacity tests that a non-positive capacity selects the default
func TestDefaultCapacity(t *testing.T) {
	tbl := NewTable[int](0)
	if tbl.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", tbl.Capacity(), DefaultCapacity)
	}
}

// TestClear tests that clearing releases every live entry and invalidates handles
func TestClear(t *testing.T) {
	tbl := NewTable[string](4)

	h1, _ := tbl.Push("a")
	h2, _ := tbl.Push("b")
	h3, _ := tbl.Push("c")
	if _, err := tbl.Remove(h2); err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}

	var released []string
	tbl.Clear(func(v string) { released = append(released, v) })

	if len(released) != 2 {
		t.Fatalf("Clear released %d values, want 2", len(released))
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() after clear = %d, want 0", tbl.Len())
	}
	for _, h := range []Handle{h1, h3} {
		if _, err := tbl.Get(h); !errors.Is(err, ErrUnknownHandle) {
			t.Errorf("handle %d resolved after Clear: %v", h, err)
		}
	}

	// the table stays usable after a clear
	if _, err := tbl.Push("again"); err != nil {
		t.Errorf("Push after Clear returned %v, want nil", err)
	}
}
