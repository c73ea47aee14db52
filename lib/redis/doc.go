// Package redis defines the wire-independent data model shared by the
// command facade, the generic command path and the transport layer.
//
// The package focuses on:
//   - Value: the recursively nested reply structure returned by the store
//     (nil, OK marker, integer, byte string, status message, nested array)
//   - Parameter: the tagged argument union for generic commands
//     (signed 64-bit integer or raw byte sequence)
//   - Result: the flat, typed result union produced by Flatten
//   - Error: the error taxonomy of the modern command surface
//
// Everything in this package is pure data - no I/O - so the flattening
// algorithm and the error mapping can be tested in isolation from any
// transport.
package redis
