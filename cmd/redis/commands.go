package redis

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	librds "github.com/sandboxhq/redisgate/lib/redis"
)

var (
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if value, loaded, err := host.Get(cmd.Context(), session, key); err != nil {
				return err
			} else if !loaded {
				fmt.Printf("key=%s, found=false\n", key)
			} else {
				fmt.Printf("key=%s, found=true, value=%s\n", key, value)
			}
			return nil
		},
	}
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := host.Set(cmd.Context(), session, args[0], []byte(args[1])); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key]...",
		Short: "Deletes one or more keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := host.Del(cmd.Context(), session, args...)
			if err != nil {
				return err
			}
			fmt.Printf("deleted %d key(s)\n", count)
			return nil
		},
	}
	incrCmd = &cobra.Command{
		Use:   "incr [key]",
		Short: "Increments the integer value of a key by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := host.Incr(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("key=%s, value=%d\n", args[0], value)
			return nil
		},
	}
	saddCmd = &cobra.Command{
		Use:   "sadd [key] [member]...",
		Short: "Adds members to the set at a key",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := host.SAdd(cmd.Context(), session, args[0], args[1:]...)
			if err != nil {
				return err
			}
			fmt.Printf("added %d member(s)\n", count)
			return nil
		},
	}
	sremCmd = &cobra.Command{
		Use:   "srem [key] [member]...",
		Short: "Removes members from the set at a key",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := host.SRem(cmd.Context(), session, args[0], args[1:]...)
			if err != nil {
				return err
			}
			fmt.Printf("removed %d member(s)\n", count)
			return nil
		},
	}
	smembersCmd = &cobra.Command{
		Use:   "smembers [key]",
		Short: "Lists the members of the set at a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := host.SMembers(cmd.Context(), session, args[0])
			if err != nil {
				return err
			}
			for _, member := range members {
				fmt.Println(member)
			}
			return nil
		},
	}
	publishCmd = &cobra.Command{
		Use:   "publish [channel] [payload]",
		Short: "Publishes a payload to all subscribers of a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := host.Publish(cmd.Context(), session, args[0], []byte(args[1])); err != nil {
				return err
			}
			fmt.Println("published successfully")
			return nil
		},
	}
	executeCmd = &cobra.Command{
		Use:   "execute [command] [argument]...",
		Short: "Sends an arbitrary command and prints the flattened reply",
		Long: "Sends an arbitrary named command. Arguments that parse as " +
			"integers are sent as integer parameters, everything else as " +
			"byte sequences.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make([]librds.Parameter, 0, len(args)-1)
			for _, arg := range args[1:] {
				if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
					params = append(params, librds.Int64Parameter(n))
				} else {
					params = append(params, librds.BinaryParameter([]byte(arg)))
				}
			}

			results, err := host.Execute(cmd.Context(), session, args[0], params)
			if err != nil {
				return err
			}
			for i, result := range results {
				fmt.Printf("%d: %s\n", i, result)
			}
			return nil
		},
	}
)
