package resp

import (
	"context"
	"fmt"
	"net/url"
	"time"

	redigo "github.com/gomodule/redigo/redis"
	"github.com/lni/dragonboat/v4/logger"

	"github.com/sandboxhq/redisgate/lib/redis"
	"github.com/sandboxhq/redisgate/rpc/common"
	"github.com/sandboxhq/redisgate/rpc/transport"
)

var (
	Logger = logger.GetLogger("transport")
)

// --------------------------------------------------------------------------
// Connector
// --------------------------------------------------------------------------

// respConnector dials redis:// and rediss:// connection strings
type respConnector struct{}

// NewRESPConnector creates a connector backed by the redigo client.
func NewRESPConnector() transport.IRedisConnector {
	return &respConnector{}
}

// GetName implements transport.IRedisConnector.
func (c *respConnector) GetName() string {
	return "resp"
}

// Connect implements transport.IRedisConnector.
func (c *respConnector) Connect(ctx context.Context, address string, config common.ClientConfig) (transport.IRedisConn, error) {
	// Address validation is separate from dialing: a string that cannot
	// name a store at all is an invalid-address failure, while an address
	// that parses but cannot be reached is a transport failure.
	if err := validateAddress(address); err != nil {
		return nil, redis.NewError(redis.RetCInvalidAddress, err.Error())
	}

	options := []redigo.DialOption{}
	if config.DialTimeoutSec > 0 {
		options = append(options, redigo.DialConnectTimeout(time.Duration(config.DialTimeoutSec)*time.Second))
	}
	if config.ReadTimeoutSec > 0 {
		options = append(options, redigo.DialReadTimeout(time.Duration(config.ReadTimeoutSec)*time.Second))
	}
	if config.WriteTimeoutSec > 0 {
		options = append(options, redigo.DialWriteTimeout(time.Duration(config.WriteTimeoutSec)*time.Second))
	}

	conn, err := redigo.DialURLContext(ctx, address, options...)
	if err != nil {
		return nil, err
	}

	Logger.Debugf("connected to %s", address)
	return &respConn{conn: conn}, nil
}

// validateAddress checks that the connection string is a parseable URL
// with a scheme the connector can dial
func validateAddress(address string) error {
	u, err := url.Parse(address)
	if err != nil {
		return fmt.Errorf("unparseable address %q: %v", address, err)
	}
	switch u.Scheme {
	case "redis", "rediss":
		if u.Host == "" {
			return fmt.Errorf("address %q has no host", address)
		}
		return nil
	default:
		return fmt.Errorf("unsupported scheme %q in address %q", u.Scheme, address)
	}
}

// --------------------------------------------------------------------------
// Connection
// --------------------------------------------------------------------------

// respConn wraps a single redigo connection
type respConn struct {
	conn redigo.Conn
}

// Do implements transport.IRedisConn.
func (c *respConn) Do(ctx context.Context, command string, args ...interface{}) (redis.Value, error) {
	reply, err := redigo.DoContext(c.conn, ctx, command, args...)
	if err != nil {
		// server error replies (redigo.Error) pass through with the
		// server's message intact for classification by the caller
		return redis.Value{}, err
	}
	return toValue(reply), nil
}

// Close implements transport.IRedisConn.
func (c *respConn) Close() error {
	return c.conn.Close()
}
