package resource

import (
	"errors"
)

// DefaultCapacity is used when a table is created with a capacity of zero.
const DefaultCapacity = 128

var (
	// ErrCapacityExceeded is returned by Push when the table already holds
	// its maximum number of live entries.
	ErrCapacityExceeded = errors.New("resource table capacity exceeded")

	// ErrUnknownHandle is returned when a handle does not reference a live
	// entry. This covers handles that were never issued, handles whose
	// entry was removed, and handles whose slot has since been reused.
	ErrUnknownHandle = errors.New("unknown resource handle")
)

// Handle is an opaque, table-scoped identifier for a live entry.
// The lower 32 bits address the slot, the upper 32 bits carry the slot
// generation at issue time.
type Handle uint64

// slot holds one table entry together with its occupancy state
type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Table stores values of type T and issues Handles for them.
type Table[T any] struct {
	slots    []slot[T]
	free     []uint32 // indices of vacated slots, reused LIFO
	capacity int
	size     int
}

// NewTable creates a table that holds at most capacity live entries.
// A capacity <= 0 selects DefaultCapacity.
func NewTable[T any](capacity int) *Table[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table[T]{capacity: capacity}
}

// Len returns the number of live entries.
func (t *Table[T]) Len() int {
	return t.size
}

// Capacity returns the maximum number of live entries.
func (t *Table[T]) Capacity() int {
	return t.capacity
}

// Push stores a value and returns a fresh handle for it.
// It returns ErrCapacityExceeded if the table is full.
func (t *Table[T]) Push(value T) (Handle, error) {
	if t.size >= t.capacity {
		return 0, ErrCapacityExceeded
	}

	var idx uint32
	if n := len(t.free); n > 0 {
		// Reuse a vacated slot. Its generation was already bumped on removal,
		// so handles issued for the previous occupant stay invalid.
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, slot[T]{})
		idx = uint32(len(t.slots) - 1)
	}

	t.slots[idx].value = value
	t.slots[idx].live = true
	t.size++

	return makeHandle(idx, t.slots[idx].gen), nil
}

// Get resolves a handle to its live value.
// It returns ErrUnknownHandle if the handle is stale or was never issued.
func (t *Table[T]) Get(h Handle) (T, error) {
	var zero T
	idx, gen := splitHandle(h)
	if int(idx) >= len(t.slots) {
		return zero, ErrUnknownHandle
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return zero, ErrUnknownHandle
	}
	return s.value, nil
}

// Remove deletes the entry for a handle and returns its value so the caller
// can release the underlying resource. The entry is removed unconditionally;
// whatever the caller then does with the value (e.g. a failing transport
// close) cannot bring a dangling handle back to life.
// It returns ErrUnknownHandle if the handle is stale or was never issued.
func (t *Table[T]) Remove(h Handle) (T, error) {
	var zero T
	idx, gen := splitHandle(h)
	if int(idx) >= len(t.slots) {
		return zero, ErrUnknownHandle
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return zero, ErrUnknownHandle
	}

	value := s.value
	s.value = zero
	s.live = false
	s.gen++ // invalidates all handles issued for this occupancy
	t.free = append(t.free, idx)
	t.size--

	return value, nil
}

// Clear removes every live entry, invoking release on each value.
// Used when the owning scope ends and all handles are forcibly closed.
func (t *Table[T]) Clear(release func(T)) {
	var zero T
	for idx := range t.slots {
		s := &t.slots[idx]
		if !s.live {
			continue
		}
		if release != nil {
			release(s.value)
		}
		s.value = zero
		s.live = false
		s.gen++
		t.free = append(t.free, uint32(idx))
	}
	t.size = 0
}

func makeHandle(idx, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(idx))
}

func splitHandle(h Handle) (idx, gen uint32) {
	return uint32(h), uint32(h >> 32)
}
