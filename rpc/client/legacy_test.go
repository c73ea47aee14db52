package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sandboxhq/redisgate/lib/redis"
	"github.com/sandboxhq/redisgate/rpc/common"
)

func newLegacyTestHost(connector *mockConnector) ILegacyRedisHost {
	return NewLegacyRedisHost(newTestHost(connector))
}

// TestLegacyDeniedAddress tests that a denied address always yields the
// single generic error, never a more specific one
func TestLegacyDeniedAddress(t *testing.T) {
	legacy := NewLegacyRedisHost(NewRedisHost(
		common.ClientConfig{},
		&staticGate{allowed: false},
		&mockConnector{},
	))
	ctx := context.Background()

	if err := legacy.Set(ctx, "redis://forbidden:6379", "k", nil); !errors.Is(err, ErrRedis) {
		t.Errorf("legacy Set against denied address returned %v, want ErrRedis", err)
	}
	if _, err := legacy.Get(ctx, "redis://forbidden:6379", "k"); !errors.Is(err, ErrRedis) {
		t.Errorf("legacy Get against denied address returned %v, want ErrRedis", err)
	}
	if _, err := legacy.Del(ctx, "redis://forbidden:6379", "k"); !errors.Is(err, ErrRedis) {
		t.Errorf("legacy Del against denied address returned %v, want ErrRedis", err)
	}
	if _, err := legacy.Execute(ctx, "redis://forbidden:6379", "PING", nil); !errors.Is(err, ErrRedis) {
		t.Errorf("legacy Execute against denied address returned %v, want ErrRedis", err)
	}
}

// TestLegacyCollapsesErrorDetail tests that richer facade errors collapse
// into ErrRedis
func TestLegacyCollapsesErrorDetail(t *testing.T) {
	wrongType := errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	connector := &mockConnector{conns: []*mockConn{{doErr: wrongType}}}
	legacy := newLegacyTestHost(connector)

	// even the discriminated type error of the modern surface is discarded
	_, err := legacy.SAdd(context.Background(), "redis://localhost:6379", "scalar", "m")
	if !errors.Is(err, ErrRedis) {
		t.Errorf("legacy SAdd returned %v, want ErrRedis", err)
	}
	if err.Error() != "redis error" {
		t.Errorf("legacy error leaked detail: %q", err.Error())
	}
}

// TestLegacyGetCollapsesAbsent tests that an absent key becomes an empty
// byte sequence
func TestLegacyGetCollapsesAbsent(t *testing.T) {
	connector := &mockConnector{conns: []*mockConn{
		{replies: []redis.Value{redis.NilValue()}},
		{replies: []redis.Value{redis.BytesValue([]byte("data"))}},
	}}
	legacy := newLegacyTestHost(connector)
	ctx := context.Background()

	value, err := legacy.Get(ctx, "redis://localhost:6379", "absent")
	if err != nil {
		t.Fatalf("legacy Get returned error: %v", err)
	}
	if value == nil || len(value) != 0 {
		t.Errorf("legacy Get(absent) = %v, want empty byte sequence", value)
	}

	value, err = legacy.Get(ctx, "redis://localhost:6379", "present")
	if err != nil || !bytes.Equal(value, []byte("data")) {
		t.Errorf("legacy Get(present) = (%v, %v)", value, err)
	}
}

// TestLegacyDelTruncates tests the bit-for-bit truncating narrowing of
// the removal count to the legacy signed 32-bit width
func TestLegacyDelTruncates(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  int32
	}{
		{"in range", 3, 3},
		{"wraps past 32 bits", (1 << 32) + 7, 7},
		{"overflows to negative", 1 << 31, -2147483648},
	}

	for _, tt := range tests {
		connector := &mockConnector{conns: []*mockConn{
			{replies: []redis.Value{redis.IntValue(tt.count)}},
		}}
		legacy := newLegacyTestHost(connector)

		count, err := legacy.Del(context.Background(), "redis://localhost:6379", "k")
		if err != nil {
			t.Fatalf("%s: legacy Del returned error: %v", tt.name, err)
		}
		if count != tt.want {
			t.Errorf("%s: legacy Del = %d, want %d", tt.name, count, tt.want)
		}
	}
}

// TestLegacyOpensPerCall tests that every legacy call opens its own
// connection and leaves it to the owning host
func TestLegacyOpensPerCall(t *testing.T) {
	connector := &mockConnector{}
	modern := newTestHost(connector)
	legacy := NewLegacyRedisHost(modern)
	ctx := context.Background()

	_ = legacy.Set(ctx, "redis://localhost:6379", "k", []byte("v"))
	_, _ = legacy.Incr(ctx, "redis://localhost:6379", "counter")

	if connector.next != 2 {
		t.Errorf("legacy surface opened %d connections, want 2", connector.next)
	}
	for _, conn := range connector.conns {
		if conn.closed {
			t.Error("legacy surface should not close connections per call")
		}
	}

	// scope end reclaims the accumulated connections
	if err := modern.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	for _, conn := range connector.conns {
		if !conn.closed {
			t.Error("owning host Close should reclaim legacy connections")
		}
	}
}

// TestLegacyHappyPaths tests result passthrough for the remaining
// operations
func TestLegacyHappyPaths(t *testing.T) {
	connector := &mockConnector{conns: []*mockConn{
		{replies: []redis.Value{redis.IntValue(7)}},         // incr
		{replies: []redis.Value{redis.IntValue(2)}},         // sadd
		{replies: []redis.Value{redis.ArrayValue(redis.BytesValue([]byte("m")))}}, // smembers
		{replies: []redis.Value{redis.IntValue(1)}},         // srem
		{replies: []redis.Value{redis.IntValue(5)}},         // publish
		{replies: []redis.Value{redis.StatusValue("PONG")}}, // execute
	}}
	legacy := newLegacyTestHost(connector)
	ctx := context.Background()
	address := "redis://localhost:6379"

	if v, err := legacy.Incr(ctx, address, "c"); err != nil || v != 7 {
		t.Errorf("legacy Incr = (%d, %v)", v, err)
	}
	if v, err := legacy.SAdd(ctx, address, "s", "a", "b"); err != nil || v != 2 {
		t.Errorf("legacy SAdd = (%d, %v)", v, err)
	}
	if m, err := legacy.SMembers(ctx, address, "s"); err != nil || len(m) != 1 || m[0] != "m" {
		t.Errorf("legacy SMembers = (%v, %v)", m, err)
	}
	if v, err := legacy.SRem(ctx, address, "s", "a"); err != nil || v != 1 {
		t.Errorf("legacy SRem = (%d, %v)", v, err)
	}
	if err := legacy.Publish(ctx, address, "ch", []byte("p")); err != nil {
		t.Errorf("legacy Publish = %v", err)
	}
	results, err := legacy.Execute(ctx, address, "PING", nil)
	if err != nil || len(results) != 1 || results[0].Status != "PONG" {
		t.Errorf("legacy Execute = (%v, %v)", results, err)
	}
}
