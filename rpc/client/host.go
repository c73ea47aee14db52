package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/lni/dragonboat/v4/logger"

	"github.com/sandboxhq/redisgate/lib/gate"
	"github.com/sandboxhq/redisgate/lib/redis"
	"github.com/sandboxhq/redisgate/lib/resource"
	"github.com/sandboxhq/redisgate/rpc/common"
	"github.com/sandboxhq/redisgate/rpc/transport"
)

var (
	Logger = logger.GetLogger("rpc")
)

// protocolName is the protocol the allow-list gate is queried for
const protocolName = "redis"

// NewRedisHost creates a host session with its own connection table.
// The table capacity is config.MaxConnections (0 selects the default).
func NewRedisHost(
	config common.ClientConfig,
	allowList gate.IAllowListGate,
	connector transport.IRedisConnector,
) IRedisHost {
	return &redisHost{
		config:      config,
		allowList:   allowList,
		connector:   connector,
		connections: resource.NewTable[transport.IRedisConn](config.MaxConnections),
	}
}

// redisHost owns the connection table of one session. It is accessed
// sequentially by its owner; see the resource package for the table's
// concurrency contract.
type redisHost struct {
	config      common.ClientConfig
	allowList   gate.IAllowListGate
	connector   transport.IRedisConnector
	connections *resource.Table[transport.IRedisConn]
}

// --------------------------------------------------------------------------
// Connection Management
// --------------------------------------------------------------------------

// isAddressAllowed consults the allow-list gate for the given address
func (h *redisHost) isAddressAllowed(ctx context.Context, address string) (bool, error) {
	return h.allowList.Check(ctx, address, protocolName)
}

// establishConnection connects to the store and stores the connection in
// the table. Shared by the modern Open and the legacy per-call opens.
func (h *redisHost) establishConnection(ctx context.Context, address string) (resource.Handle, error) {
	conn, err := h.connector.Connect(ctx, address, h.config)
	if err != nil {
		var redisErr *redis.Error
		if errors.As(err, &redisErr) {
			return 0, redisErr
		}
		return 0, redis.OtherError(err)
	}

	handle, err := h.connections.Push(conn)
	if err != nil {
		// the connection never becomes caller-visible, release it here
		_ = conn.Close()
		return 0, redis.NewError(redis.RetCTooManyConnections, err.Error())
	}

	openConnections.Inc()
	return handle, nil
}

// getConn resolves a handle to its live connection. The compatibility
// boundary has no dedicated "handle not found" kind, so a stale or unknown
// handle folds into the generic error category.
func (h *redisHost) getConn(handle resource.Handle) (transport.IRedisConn, error) {
	conn, err := h.connections.Get(handle)
	if err != nil {
		return nil, redis.NewError(redis.RetCOther, "could not find connection for handle")
	}
	return conn, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see interface.go)
// --------------------------------------------------------------------------

func (h *redisHost) Open(ctx context.Context, address string) (resource.Handle, error) {
	countCommand("open")

	allowed, err := h.isAddressAllowed(ctx, address)
	if err != nil {
		return 0, redis.OtherError(err)
	}
	if !allowed {
		return 0, redis.NewError(redis.RetCInvalidAddress, fmt.Sprintf("address %q is not permitted", address))
	}

	return h.establishConnection(ctx, address)
}

func (h *redisHost) Publish(ctx context.Context, handle resource.Handle, channel string, payload []byte) error {
	countCommand("publish")

	conn, err := h.getConn(handle)
	if err != nil {
		return err
	}

	// the receiver count in the reply carries no guarantee and is dropped
	if _, err := conn.Do(ctx, "PUBLISH", channel, payload); err != nil {
		return redis.OtherError(err)
	}
	return nil
}

func (h *redisHost) Get(ctx context.Context, handle resource.Handle, key string) ([]byte, bool, error) {
	countCommand("get")

	conn, err := h.getConn(handle)
	if err != nil {
		return nil, false, err
	}

	value, err := conn.Do(ctx, "GET", key)
	if err != nil {
		return nil, false, redis.OtherError(err)
	}
	data, loaded, err := value.AsBytes()
	if err != nil {
		return nil, false, redis.OtherError(err)
	}
	return data, loaded, nil
}

func (h *redisHost) Set(ctx context.Context, handle resource.Handle, key string, value []byte) error {
	countCommand("set")

	conn, err := h.getConn(handle)
	if err != nil {
		return err
	}

	if _, err := conn.Do(ctx, "SET", key, value); err != nil {
		return redis.OtherError(err)
	}
	return nil
}

func (h *redisHost) Incr(ctx context.Context, handle resource.Handle, key string) (int64, error) {
	countCommand("incr")

	conn, err := h.getConn(handle)
	if err != nil {
		return 0, err
	}

	value, err := conn.Do(ctx, "INCRBY", key, 1)
	if err != nil {
		return 0, redis.OtherError(err)
	}
	result, err := value.AsInt64()
	if err != nil {
		return 0, redis.OtherError(err)
	}
	return result, nil
}

func (h *redisHost) Del(ctx context.Context, handle resource.Handle, keys ...string) (int64, error) {
	countCommand("del")

	conn, err := h.getConn(handle)
	if err != nil {
		return 0, err
	}

	value, err := conn.Do(ctx, "DEL", stringArgs(keys)...)
	if err != nil {
		return 0, redis.OtherError(err)
	}
	count, err := value.AsInt64()
	if err != nil {
		return 0, redis.OtherError(err)
	}
	return count, nil
}

func (h *redisHost) SAdd(ctx context.Context, handle resource.Handle, key string, values ...string) (int64, error) {
	countCommand("sadd")

	conn, err := h.getConn(handle)
	if err != nil {
		return 0, err
	}

	value, err := conn.Do(ctx, "SADD", keyedArgs(key, values)...)
	if err != nil {
		// the one command that discriminates a type mismatch: a key that
		// exists but is not a set must not report the generic error
		if redis.IsWrongType(err) {
			return 0, redis.NewError(redis.RetCTypeError, err.Error())
		}
		return 0, redis.OtherError(err)
	}
	count, err := value.AsInt64()
	if err != nil {
		return 0, redis.OtherError(err)
	}
	return count, nil
}

func (h *redisHost) SMembers(ctx context.Context, handle resource.Handle, key string) ([]string, error) {
	countCommand("smembers")

	conn, err := h.getConn(handle)
	if err != nil {
		return nil, err
	}

	value, err := conn.Do(ctx, "SMEMBERS", key)
	if err != nil {
		return nil, redis.OtherError(err)
	}
	members, err := value.AsStrings()
	if err != nil {
		return nil, redis.OtherError(err)
	}
	return members, nil
}

func (h *redisHost) SRem(ctx context.Context, handle resource.Handle, key string, values ...string) (int64, error) {
	countCommand("srem")

	conn, err := h.getConn(handle)
	if err != nil {
		return 0, err
	}

	value, err := conn.Do(ctx, "SREM", keyedArgs(key, values)...)
	if err != nil {
		return 0, redis.OtherError(err)
	}
	count, err := value.AsInt64()
	if err != nil {
		return 0, redis.OtherError(err)
	}
	return count, nil
}

func (h *redisHost) Execute(ctx context.Context, handle resource.Handle, command string, args []redis.Parameter) ([]redis.Result, error) {
	countCommand("execute")

	conn, err := h.getConn(handle)
	if err != nil {
		return nil, err
	}

	// integers and byte sequences are both valid positional arguments;
	// no coercion between them
	positional := make([]interface{}, 0, len(args))
	for _, arg := range args {
		switch arg.Kind {
		case redis.ParameterInt64:
			positional = append(positional, arg.Int)
		case redis.ParameterBinary:
			positional = append(positional, arg.Bytes)
		}
	}

	value, err := conn.Do(ctx, command, positional...)
	if err != nil {
		return nil, redis.OtherError(err)
	}
	return redis.Flatten(value), nil
}

func (h *redisHost) Drop(handle resource.Handle) error {
	conn, err := h.connections.Remove(handle)
	if err != nil {
		return redis.NewError(redis.RetCOther, "could not find connection for handle")
	}

	openConnections.Dec()

	// the entry is already gone; a failing transport close must not
	// resurrect a live-looking handle
	if err := conn.Close(); err != nil {
		Logger.Warningf("closing connection for handle %d: %v", handle, err)
	}
	return nil
}

func (h *redisHost) Close() error {
	h.connections.Clear(func(conn transport.IRedisConn) {
		openConnections.Dec()
		if err := conn.Close(); err != nil {
			Logger.Warningf("closing connection at session end: %v", err)
		}
	})
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// stringArgs converts a key list into positional command arguments
func stringArgs(keys []string) []interface{} {
	args := make([]interface{}, 0, len(keys))
	for _, key := range keys {
		args = append(args, key)
	}
	return args
}

// keyedArgs converts a key plus value list into positional command arguments
func keyedArgs(key string, values []string) []interface{} {
	args := make([]interface{}, 0, len(values)+1)
	args = append(args, key)
	for _, value := range values {
		args = append(args, value)
	}
	return args
}
