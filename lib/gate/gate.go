package gate

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var (
	Logger = logger.GetLogger("gate")
)

// defaultPort is assumed when a connection string does not name a port.
const defaultPort = "6379"

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IAllowListGate answers whether an address may be connected to for a
// given protocol. A returned error means the question could not be
// answered; callers must treat that as "not allowed".
type IAllowListGate interface {
	Check(ctx context.Context, address, protocol string) (bool, error)
}

// --------------------------------------------------------------------------
// Pattern Gate
// --------------------------------------------------------------------------

// hostPattern is one parsed allow-list entry
type hostPattern struct {
	host string // hostname, "*" for any, or "*.suffix" for any subdomain
	port string // port number or "*" for any
}

// patternGate matches connection-string hosts against configured patterns
type patternGate struct {
	patterns []hostPattern
	cache    *xsync.MapOf[string, bool]
}

// NewPatternGate creates a gate from allow-list entries of the form
// "host", "host:port", "*.example.com:6379", "localhost:*" or "*".
// An empty entry list denies every address.
func NewPatternGate(patterns []string) (IAllowListGate, error) {
	g := &patternGate{
		cache: xsync.NewMapOf[string, bool](),
	}

	for _, raw := range patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		p := hostPattern{host: raw, port: "*"}
		if host, port, err := net.SplitHostPort(raw); err == nil {
			p.host = host
			p.port = port
		}
		if p.host == "" {
			return nil, fmt.Errorf("invalid allow-list pattern %q", raw)
		}
		g.patterns = append(g.patterns, p)
	}

	return g, nil
}

// Check implements IAllowListGate.
func (g *patternGate) Check(_ context.Context, address, protocol string) (bool, error) {
	if verdict, ok := g.cache.Load(address); ok {
		return verdict, nil
	}

	host, port, err := splitAddress(address, protocol)
	if err != nil {
		return false, err
	}

	verdict := false
	for _, p := range g.patterns {
		if p.matches(host, port) {
			verdict = true
			break
		}
	}

	if !verdict {
		Logger.Infof("address %s:%s denied by allow-list", host, port)
	}

	g.cache.Store(address, verdict)
	return verdict, nil
}

// matches reports whether the pattern covers the given host and port
func (p hostPattern) matches(host, port string) bool {
	if p.port != "*" && p.port != port {
		return false
	}
	switch {
	case p.host == "*":
		return true
	case strings.HasPrefix(p.host, "*."):
		return strings.HasSuffix(host, p.host[1:])
	default:
		return p.host == host
	}
}

// splitAddress extracts host and port from a connection string and
// verifies that its scheme matches the queried protocol (a plain or
// TLS-wrapped variant, e.g. redis:// or rediss://).
func splitAddress(address, protocol string) (host, port string, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", "", fmt.Errorf("unparseable address %q: %w", address, err)
	}
	if u.Scheme != protocol && u.Scheme != protocol+"s" {
		return "", "", fmt.Errorf("address %q does not use the %s protocol", address, protocol)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("address %q has no host", address)
	}

	host = u.Hostname()
	port = u.Port()
	if port == "" {
		port = defaultPort
	}
	return host, port, nil
}
