// Package transport defines the wire-client abstraction consumed by the
// command surfaces. The interfaces deliberately expose only what the
// facade needs: establishing a connection to an address and sending one
// named command with positional arguments.
//
// Wire-level encoding and decoding of the store protocol belongs to the
// implementations (see the resp subpackage); the command layer only ever
// sees the decoded reply tree.
package transport
