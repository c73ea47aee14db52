// Package rpc provides the command layer between sandboxed callers and a
// remote Redis-compatible key-value/pub-sub store.
//
// The package is organized into several subpackages:
//
//   - common: Shared configuration structures and the logging setup used
//     across the command layer.
//
//   - transport: The wire-client abstraction (connector and connection
//     interfaces) with the RESP implementation in transport/resp, backed
//     by the redigo client library.
//
//   - client: The two command surfaces. The modern surface operates on
//     explicit connection handles issued by a per-session table; the
//     legacy surface opens an implicit connection per call and exposes a
//     single undifferentiated error. Both are backed by the same facade,
//     so command semantics cannot diverge between generations.
package rpc
