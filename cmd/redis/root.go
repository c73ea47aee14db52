package redis

import (
	"github.com/spf13/cobra"

	"github.com/sandboxhq/redisgate/cmd/util"
	"github.com/sandboxhq/redisgate/lib/resource"
	"github.com/sandboxhq/redisgate/rpc/client"
	"github.com/sandboxhq/redisgate/rpc/common"
)

var (
	host    client.IRedisHost
	session resource.Handle

	// StoreCommands represents the redis command group
	StoreCommands = &cobra.Command{
		Use:               "redis",
		Short:             "Perform operations against a remote redis store",
		PersistentPreRunE: setupRedisClient,
		PersistentPostRun: teardownRedisClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the redis command
	util.SetupClientFlags(StoreCommands)

	// Add subcommands
	StoreCommands.AddCommand(getCmd)
	StoreCommands.AddCommand(setCmd)
	StoreCommands.AddCommand(delCmd)
	StoreCommands.AddCommand(incrCmd)
	StoreCommands.AddCommand(saddCmd)
	StoreCommands.AddCommand(sremCmd)
	StoreCommands.AddCommand(smembersCmd)
	StoreCommands.AddCommand(publishCmd)
	StoreCommands.AddCommand(executeCmd)
	StoreCommands.AddCommand(perfTestCmd)
}

// setupRedisClient opens the session against the configured store
func setupRedisClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration
	config := util.GetClientConfig()
	common.InitLoggers(*config)

	// Create the allow-list gate
	allowList, err := util.GetGate(config)
	if err != nil {
		return err
	}

	// Create the host and open the session connection
	host = client.NewRedisHost(*config, allowList, util.GetConnector())
	session, err = host.Open(cmd.Context(), util.GetAddress())
	return err
}

// teardownRedisClient reclaims the session's connections
func teardownRedisClient(_ *cobra.Command, _ []string) {
	if host != nil {
		_ = host.Close()
	}
}
