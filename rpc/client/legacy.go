package client

import (
	"context"
	"errors"

	"github.com/sandboxhq/redisgate/lib/redis"
	"github.com/sandboxhq/redisgate/lib/resource"
)

// ErrRedis is the only error the legacy surface ever reports. The richer
// taxonomy of the modern surface (and all message detail) is discarded
// deliberately: the legacy API traded diagnosability for a minimal stable
// error shape, and that trade is part of its contract.
var ErrRedis = errors.New("redis error")

// NewLegacyRedisHost wraps a modern host in the implicit-connection
// surface. Connections opened by legacy calls are not dropped per call;
// they live until the wrapped host's Close reclaims them.
func NewLegacyRedisHost(modern IRedisHost) ILegacyRedisHost {
	return &legacyHost{modern: modern}
}

type legacyHost struct {
	modern IRedisHost
}

// open performs the implicit per-call connect. Gate denial, parse
// failures and capacity all collapse into ErrRedis here.
func (l *legacyHost) open(ctx context.Context, address string) (resource.Handle, error) {
	handle, err := l.modern.Open(ctx, address)
	if err != nil {
		return 0, ErrRedis
	}
	return handle, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see interface.go)
// --------------------------------------------------------------------------

func (l *legacyHost) Publish(ctx context.Context, address, channel string, payload []byte) error {
	handle, err := l.open(ctx, address)
	if err != nil {
		return err
	}
	if err := l.modern.Publish(ctx, handle, channel, payload); err != nil {
		return ErrRedis
	}
	return nil
}

func (l *legacyHost) Get(ctx context.Context, address, key string) ([]byte, error) {
	handle, err := l.open(ctx, address)
	if err != nil {
		return nil, err
	}
	value, loaded, err := l.modern.Get(ctx, handle, key)
	if err != nil {
		return nil, ErrRedis
	}
	if !loaded {
		// the legacy surface has no "no value": absent keys collapse to
		// an empty byte sequence
		return []byte{}, nil
	}
	return value, nil
}

func (l *legacyHost) Set(ctx context.Context, address, key string, value []byte) error {
	handle, err := l.open(ctx, address)
	if err != nil {
		return err
	}
	if err := l.modern.Set(ctx, handle, key, value); err != nil {
		return ErrRedis
	}
	return nil
}

func (l *legacyHost) Incr(ctx context.Context, address, key string) (int64, error) {
	handle, err := l.open(ctx, address)
	if err != nil {
		return 0, err
	}
	value, err := l.modern.Incr(ctx, handle, key)
	if err != nil {
		return 0, ErrRedis
	}
	return value, nil
}

func (l *legacyHost) Del(ctx context.Context, address string, keys ...string) (int32, error) {
	handle, err := l.open(ctx, address)
	if err != nil {
		return 0, err
	}
	count, err := l.modern.Del(ctx, handle, keys...)
	if err != nil {
		return 0, ErrRedis
	}
	// truncating, not checked: the legacy width is narrower by contract
	return int32(count), nil
}

func (l *legacyHost) SAdd(ctx context.Context, address, key string, values ...string) (int32, error) {
	handle, err := l.open(ctx, address)
	if err != nil {
		return 0, err
	}
	count, err := l.modern.SAdd(ctx, handle, key, values...)
	if err != nil {
		return 0, ErrRedis
	}
	return int32(count), nil
}

func (l *legacyHost) SMembers(ctx context.Context, address, key string) ([]string, error) {
	handle, err := l.open(ctx, address)
	if err != nil {
		return nil, err
	}
	members, err := l.modern.SMembers(ctx, handle, key)
	if err != nil {
		return nil, ErrRedis
	}
	return members, nil
}

func (l *legacyHost) SRem(ctx context.Context, address, key string, values ...string) (int32, error) {
	handle, err := l.open(ctx, address)
	if err != nil {
		return 0, err
	}
	count, err := l.modern.SRem(ctx, handle, key, values...)
	if err != nil {
		return 0, ErrRedis
	}
	return int32(count), nil
}

func (l *legacyHost) Execute(ctx context.Context, address, command string, args []redis.Parameter) ([]redis.Result, error) {
	handle, err := l.open(ctx, address)
	if err != nil {
		return nil, err
	}
	results, err := l.modern.Execute(ctx, handle, command, args)
	if err != nil {
		return nil, ErrRedis
	}
	return results, nil
}
