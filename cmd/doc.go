// Package cmd implements the command-line interface for redisgate. It
// provides a hierarchical command structure for issuing commands to a
// remote Redis-compatible store through the gated binding layer.
//
// The package is organized into several subpackages:
//
//   - redis: Commands for store operations (get, set, del, publish, etc.)
//     plus a performance testing tool
//   - util: Shared utilities for command-line processing and configuration
//     (internal use)
//
// See redisgate -help for a list of all commands.
package cmd
