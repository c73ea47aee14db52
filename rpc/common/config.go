package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for a command session.
type ClientConfig struct {
	// Outbound policy: host[:port] patterns permitted by the allow-list gate
	AllowedHosts []string

	// Maximum number of simultaneously open connections per session.
	// Zero selects the table default.
	MaxConnections int

	// Transport timeouts (zero disables the respective timeout)
	DialTimeoutSec  int
	ReadTimeoutSec  int
	WriteTimeoutSec int

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Connections")
	addField("Max Connections", strconv.Itoa(c.MaxConnections))
	addField("Dial Timeout", fmt.Sprintf("%d sec", c.DialTimeoutSec))
	addField("Read Timeout", fmt.Sprintf("%d sec", c.ReadTimeoutSec))
	addField("Write Timeout", fmt.Sprintf("%d sec", c.WriteTimeoutSec))

	addSection("Allow-List")
	if len(c.AllowedHosts) == 0 {
		addField("(empty)", "all addresses denied")
	}
	for i, pattern := range c.AllowedHosts {
		addField(strconv.Itoa(i), pattern)
	}

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
