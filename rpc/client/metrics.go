package client

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// openConnections tracks the number of live table entries across all
// sessions of this process
var openConnections = metrics.GetOrCreateCounter("redisgate_open_connections")

// countCommand increments the per-command counter
func countCommand(command string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`redisgate_commands_total{command=%q}`, command)).Inc()
}
