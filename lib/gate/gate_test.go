package gate

import (
	"context"
	"testing"
)

func check(t *testing.T, g IAllowListGate, address string) bool {
	t.Helper()
	allowed, err := g.Check(context.Background(), address, "redis")
	if err != nil {
		t.Fatalf("Check(%q) returned error: %v", address, err)
	}
	return allowed
}

// TestExactMatch tests host:port entries
func TestExactMatch(t *testing.T) {
	g, err := NewPatternGate([]string{"localhost:6379"})
	if err != nil {
		t.Fatalf("NewPatternGate() returned error: %v", err)
	}

	if !check(t, g, "redis://localhost:6379") {
		t.Error("matching host:port should be allowed")
	}
	if check(t, g, "redis://localhost:6380") {
		t.Error("other port should be denied")
	}
	if check(t, g, "redis://example.com:6379") {
		t.Error("other host should be denied")
	}
}

// TestDefaultPort tests that an address without a port matches port 6379
func TestDefaultPort(t *testing.T) {
	g, _ := NewPatternGate([]string{"localhost:6379"})

	if !check(t, g, "redis://localhost") {
		t.Error("address without port should match the default port")
	}
}

// TestWildcards tests host and port wildcards
func TestWildcards(t *testing.T) {
	g, _ := NewPatternGate([]string{"*.example.com:6379", "cache:*"})

	if !check(t, g, "redis://db.example.com:6379") {
		t.Error("subdomain should match *.example.com")
	}
	if check(t, g, "redis://example.com:6379") {
		t.Error("bare domain should not match *.example.com")
	}
	if !check(t, g, "redis://cache:1234") {
		t.Error("any port should match cache:*")
	}

	all, _ := NewPatternGate([]string{"*"})
	if !check(t, all, "rediss://anything:9999") {
		t.Error("* should allow any address")
	}
}

// TestEmptyGateDeniesAll tests that no patterns means deny everything
func TestEmptyGateDeniesAll(t *testing.T) {
	g, _ := NewPatternGate(nil)

	if check(t, g, "redis://localhost:6379") {
		t.Error("empty allow-list should deny")
	}
}

// TestBadAddress tests that addresses the gate cannot judge produce errors
func TestBadAddress(t *testing.T) {
	g, _ := NewPatternGate([]string{"*"})

	for _, address := range []string{
		"http://localhost:6379", // wrong protocol
		"localhost:6379",        // no scheme
		"redis://",              // no host
	} {
		if _, err := g.Check(context.Background(), address, "redis"); err == nil {
			t.Errorf("Check(%q) should return an error", address)
		}
	}
}

// TestVerdictCache tests that repeated checks hit the cache
func TestVerdictCache(t *testing.T) {
	g, _ := NewPatternGate([]string{"localhost:6379"})
	pg := g.(*patternGate)

	check(t, g, "redis://localhost:6379")
	if _, ok := pg.cache.Load("redis://localhost:6379"); !ok {
		t.Error("verdict should be cached after the first check")
	}

	// cached verdicts are served even if the pattern set were to change
	pg.patterns = nil
	if !check(t, g, "redis://localhost:6379") {
		t.Error("cached verdict should be returned")
	}
}
