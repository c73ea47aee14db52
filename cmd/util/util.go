package util

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sandboxhq/redisgate/lib/gate"
	"github.com/sandboxhq/redisgate/rpc/common"
	"github.com/sandboxhq/redisgate/rpc/transport"
	"github.com/sandboxhq/redisgate/rpc/transport/resp"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds common connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "address"
	cmd.PersistentFlags().String(key, "redis://localhost:6379", WrapString("Connection string of the store (redis:// or rediss://)"))

	key = "allow"
	cmd.PersistentFlags().String(key, "localhost:*", WrapString("Outbound allow-list: comma-separated host[:port] patterns, * wildcards supported"))

	key = "max-connections"
	cmd.PersistentFlags().Int(key, 0, WrapString("Maximum simultaneous connections per session (0 = default)"))

	key = "dial-timeout"
	cmd.PersistentFlags().Int(key, 5, WrapString("Dial timeout in seconds (0 = no timeout)"))

	key = "read-timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("Read timeout in seconds (0 = no timeout)"))

	key = "write-timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("Write timeout in seconds (0 = no timeout)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("Log level (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("redisgate")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() *common.ClientConfig {
	return &common.ClientConfig{
		AllowedHosts:    strings.Split(viper.GetString("allow"), ","),
		MaxConnections:  viper.GetInt("max-connections"),
		DialTimeoutSec:  viper.GetInt("dial-timeout"),
		ReadTimeoutSec:  viper.GetInt("read-timeout"),
		WriteTimeoutSec: viper.GetInt("write-timeout"),
		LogLevel:        viper.GetString("log-level"),
	}
}

// GetAddress retrieves the configured store address
func GetAddress() string {
	return viper.GetString("address")
}

// GetGate creates the allow-list gate from configuration
func GetGate(config *common.ClientConfig) (gate.IAllowListGate, error) {
	return gate.NewPatternGate(config.AllowedHosts)
}

// GetConnector creates the wire connector
func GetConnector() transport.IRedisConnector {
	return resp.NewRESPConnector()
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
