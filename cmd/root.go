package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandboxhq/redisgate/cmd/redis"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "redisgate",
		Short: "gated command gateway for remote redis stores",
		Long: fmt.Sprintf(`redisgate (v%s)

A command gateway that lets sandboxed workloads talk to remote
Redis-compatible stores through opaque connection handles, guarded
by an outbound allow-list.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of redisgate",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("redisgate v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(redis.StoreCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
