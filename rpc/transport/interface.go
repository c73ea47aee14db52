package transport

import (
	"context"

	"github.com/sandboxhq/redisgate/lib/redis"
	"github.com/sandboxhq/redisgate/rpc/common"
)

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IRedisConnector establishes connections to a remote store.
type IRedisConnector interface {
	// Connect opens a single connection to the store at the given address.
	// An address that fails to parse is reported with the invalid-address
	// error code; a connect failure is reported as-is.
	Connect(ctx context.Context, address string, config common.ClientConfig) (IRedisConn, error)

	// GetName returns the name of the transport type (e.g. "resp")
	GetName() string
}

// IRedisConn is one open, stateful channel to the store.
//
// A connection is not safe for concurrent use; its owner serializes
// commands. Server error replies are returned as errors carrying the
// server's message, decoded replies as a redis.Value tree.
type IRedisConn interface {
	// Do sends one named command with positional arguments and returns
	// the decoded reply
	Do(ctx context.Context, command string, args ...interface{}) (redis.Value, error)

	// Close releases the connection
	Close() error
}
