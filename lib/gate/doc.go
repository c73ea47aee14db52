// Package gate implements the outbound allow-list policy check.
//
// The command surfaces consult the gate with a single boolean question:
// "is this address permitted for this protocol?". The gate itself carries
// no retry or error-recovery behavior - a failing check is treated as
// "not allowed" by its callers.
//
// The provided implementation matches the host and port of a connection
// string against a configured list of patterns. Verdicts are cached per
// address, so repeated opens against the same address (the common case for
// the implicit-connection surface) do not re-run the pattern match.
package gate
