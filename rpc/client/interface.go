package client

import (
	"context"

	"github.com/sandboxhq/redisgate/lib/redis"
	"github.com/sandboxhq/redisgate/lib/resource"
)

// --------------------------------------------------------------------------
// Modern Surface
// --------------------------------------------------------------------------

// IRedisHost is the explicit-connection command surface. All operations
// except Open take a handle issued by Open on the same host.
//
// Errors are of type *redis.Error with the codes documented per method;
// any failure not listed explicitly carries redis.RetCOther.
type IRedisHost interface {
	// Open connects to the store at the given address and returns a handle
	// for the connection. Fails with RetCInvalidAddress if the allow-list
	// gate denies the address or the address cannot name a store, and with
	// RetCTooManyConnections at table capacity.
	Open(ctx context.Context, address string) (resource.Handle, error)

	// Publish sends a payload to all subscribers of a channel. There is no
	// delivery guarantee beyond the transport's.
	Publish(ctx context.Context, handle resource.Handle, channel string, payload []byte) error

	// Get returns the value for a key. The boolean return value indicates
	// whether a value was found, distinguishing an absent key from an
	// explicitly empty value.
	Get(ctx context.Context, handle resource.Handle, key string) (value []byte, loaded bool, err error)

	// Set unconditionally overwrites the value for a key.
	Set(ctx context.Context, handle resource.Handle, key string, value []byte) error

	// Incr increments the integer value of a key by one and returns the
	// new value.
	Incr(ctx context.Context, handle resource.Handle, key string) (int64, error)

	// Del removes the given keys and returns the count of keys actually
	// removed. Missing keys are not errors; they simply do not count.
	Del(ctx context.Context, handle resource.Handle, keys ...string) (int64, error)

	// SAdd adds values to the set at a key and returns the count of values
	// newly added. Fails with RetCTypeError if the key holds a value that
	// is not a set.
	SAdd(ctx context.Context, handle resource.Handle, key string, values ...string) (int64, error)

	// SMembers returns the members of the set at a key. Order is
	// unspecified.
	SMembers(ctx context.Context, handle resource.Handle, key string) ([]string, error)

	// SRem removes values from the set at a key and returns the count of
	// values removed.
	SRem(ctx context.Context, handle resource.Handle, key string, values ...string) (int64, error)

	// Execute sends an arbitrary named command with the given positional
	// arguments and returns the flattened reply.
	Execute(ctx context.Context, handle resource.Handle, command string, args []redis.Parameter) ([]redis.Result, error)

	// Drop closes the connection behind a handle. The table entry is
	// removed even if the transport-level close fails.
	Drop(handle resource.Handle) error

	// Close force-closes every open connection of this host. Called when
	// the owning scope ends; all outstanding handles become stale.
	Close() error
}

// --------------------------------------------------------------------------
// Legacy Surface
// --------------------------------------------------------------------------

// ILegacyRedisHost is the implicit-connection command surface. Every call
// takes the store address directly, opens a connection for the single
// command, and reports either the result or ErrRedis.
type ILegacyRedisHost interface {
	Publish(ctx context.Context, address, channel string, payload []byte) error
	// Get returns the value for a key, or an empty byte sequence if the
	// key is absent (the legacy surface cannot express "no value").
	Get(ctx context.Context, address, key string) ([]byte, error)
	Set(ctx context.Context, address, key string, value []byte) error
	Incr(ctx context.Context, address, key string) (int64, error)
	Del(ctx context.Context, address string, keys ...string) (int32, error)
	SAdd(ctx context.Context, address, key string, values ...string) (int32, error)
	SMembers(ctx context.Context, address, key string) ([]string, error)
	SRem(ctx context.Context, address, key string, values ...string) (int32, error)
	Execute(ctx context.Context, address, command string, args []redis.Parameter) ([]redis.Result, error)
}
