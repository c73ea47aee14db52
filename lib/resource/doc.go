// Package resource provides a generational handle table for host-managed
// resources. Callers across a trust boundary never hold a reference to the
// resource itself, only an opaque Handle issued by the table. The table is
// the sole authority that translates a Handle back into the live resource.
//
// The table is an arena of slots. Each slot carries a generation counter
// that is bumped whenever the slot is vacated, and the generation is encoded
// into every Handle issued for the slot. A stale Handle therefore never
// resolves to a resource that reused its slot - resolution fails with
// ErrUnknownHandle instead.
//
// Concurrency Considerations:
//   - A Table is owned by a single session and accessed sequentially by
//     that owner. It is not safe for concurrent mutation; callers that
//     share a table must apply external synchronization.
package resource
