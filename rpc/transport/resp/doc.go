// Package resp implements the transport interfaces on top of the redigo
// client library, which speaks the store's RESP wire protocol.
//
// Replies are converted from redigo's untyped representation into the
// redis.Value tree consumed by the command layer. The conversion preserves
// the distinction between status replies and bulk strings, which the
// generic command path depends on.
package resp
