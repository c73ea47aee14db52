// Package client implements the two command surfaces of the binding layer.
//
// The modern surface (IRedisHost) hands out opaque connection handles from
// an explicit Open and runs every subsequent command against a handle. The
// handle table owns the underlying connections; a handle never outlives its
// table entry and a stale handle is a defined error.
//
// The legacy surface (ILegacyRedisHost) predates explicit connections. Each
// call names the address directly, implicitly opens a connection through
// the same gate and facade, performs one command and reports either the
// result or the single undifferentiated ErrRedis. Numeric results narrow
// to the legacy 32-bit width by truncation. Neither behavior is an
// oversight; both are part of the compatibility contract.
//
// Per-command error mapping follows the compatibility surface: only SAdd
// discriminates the store's type-mismatch reply into RetCTypeError, every
// other failure (including stale handles) folds into RetCOther with the
// underlying message preserved.
package client
