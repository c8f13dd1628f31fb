package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"dracctl/pkg/output"
)

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show system information",
	Long:  "Show getsysinfo output for the targeted controller, parsed into sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		info, err := client.SystemInfo(context.Background(), scope())
		if err != nil {
			return fmt.Errorf("failed to get system info: %w", err)
		}
		return output.New(format).Sections(info)
	},
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show the chassis inventory",
	Long:  "Show getversion output: servers, switches, CMCs and chassis infrastructure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		inv, err := client.Inventory(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get inventory: %w", err)
		}

		formatter := output.New(format)
		if formatter.IsJSON() {
			return formatter.Output(inv)
		}
		kinds := make([]string, 0, len(inv))
		for kind := range inv {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			if len(inv[kind]) == 0 {
				continue
			}
			fmt.Printf("%s:\n", kind)
			names := make([]string, 0, len(inv[kind]))
			for name := range inv[kind] {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %s\n", name)
				keys := make([]string, 0, len(inv[kind][name]))
				for key := range inv[kind][name] {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Printf("    %s = %s\n", key, inv[kind][name][key])
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sysinfoCmd)
	rootCmd.AddCommand(inventoryCmd)

	output.AddFormatFlag(sysinfoCmd)
	output.AddFormatFlag(inventoryCmd)
}
