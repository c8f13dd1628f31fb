package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"dracctl/pkg/output"
)

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Chassis slot naming commands",
}

var slotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chassis slots",
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

		slots, err := client.ListSlotNames(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list slots: %w", err)
		}

		formatter := output.New(format)
		if formatter.IsJSON() {
			return formatter.Output(slots)
		}
		ids := make([]string, 0, len(slots))
		for id := range slots {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			s := slots[id]
			fmt.Printf("%-4s %-16s %s\n", s.Slot, s.Name, s.Hostname)
		}
		return nil
	},
}

var slotGetCmd = &cobra.Command{
	Use:   "get <slot>",
	Short: "Show one slot's name and hostname",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.GetFormatFromCmd(cmd)
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		slot, err := client.SlotName(context.Background(), args[0])
		if err != nil {
			return err
		}

		formatter := output.New(format)
		if formatter.IsJSON() {
			return formatter.Output(slot)
		}
		fmt.Printf("%-4s %-16s %s\n", slot.Slot, slot.Name, slot.Hostname)
		return nil
	},
}

var slotSetCmd = &cobra.Command{
	Use:   "set <slot> <name>",
	Short: "Rename a chassis slot",
	Long:  "Rename a chassis slot. Names longer than 15 characters are truncated by the firmware limit.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.SetSlotName(context.Background(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to set slot name: %w", err)
		}
		fmt.Printf("Slot %s renamed to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slotCmd)

	slotCmd.AddCommand(slotListCmd)
	slotCmd.AddCommand(slotGetCmd)
	slotCmd.AddCommand(slotSetCmd)

	output.AddFormatFlag(slotListCmd)
	output.AddFormatFlag(slotGetCmd)
}
