package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Raw config group/object access",
	Long: `Read and write raw racadm configuration values by group and object
name. Escape hatch for properties without a dedicated command.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <group> <object>",
	Short: "Read a raw configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		value, err := client.GetConfig(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s/%s: %w", args[0], args[1], err)
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <group> <object> <value>",
	Short: "Write a raw configuration value",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.SetConfig(context.Background(), args[0], args[1], args[2]); err != nil {
			return fmt.Errorf("failed to write %s/%s: %w", args[0], args[1], err)
		}
		fmt.Printf("%s/%s set\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
