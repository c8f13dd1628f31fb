package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "Server and chassis power management commands",
	Long:  "Commands for controlling the power state of a chassis or a scoped module",
}

var powerOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Power on the targeted server or chassis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.PowerOn(context.Background(), scope()); err != nil {
			return fmt.Errorf("failed to power on: %w", err)
		}
		fmt.Println("Power on issued")
		return nil
	},
}

var powerOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Power off the targeted server or chassis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.PowerOff(context.Background(), scope()); err != nil {
			return fmt.Errorf("failed to power off: %w", err)
		}
		fmt.Println("Power off issued")
		return nil
	},
}

var powerCycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Power cycle the targeted server (off, then on)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.PowerCycle(context.Background(), scope()); err != nil {
			return fmt.Errorf("failed to power cycle: %w", err)
		}
		fmt.Println("Power cycle issued")
		return nil
	},
}

var powerHardResetCmd = &cobra.Command{
	Use:   "hardreset",
	Short: "Hard reset the targeted server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.HardReset(context.Background(), scope()); err != nil {
			return fmt.Errorf("failed to hard reset: %w", err)
		}
		fmt.Println("Hard reset issued")
		return nil
	},
}

var powerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the power status of the targeted server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		state, err := client.PowerStatus(context.Background(), scope())
		if err != nil {
			return fmt.Errorf("failed to get power status: %w", err)
		}
		fmt.Printf("Power is %s\n", state)
		return nil
	},
}

var powerPXECmd = &cobra.Command{
	Use:   "pxe",
	Short: "PXE boot the targeted server once",
	Long:  "Set the first boot device to PXE for a single boot and power cycle the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.BootOncePXE(context.Background(), scope()); err != nil {
			return fmt.Errorf("failed to PXE boot: %w", err)
		}
		fmt.Println("One-shot PXE boot issued")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(powerCmd)

	powerCmd.AddCommand(powerOnCmd)
	powerCmd.AddCommand(powerOffCmd)
	powerCmd.AddCommand(powerCycleCmd)
	powerCmd.AddCommand(powerHardResetCmd)
	powerCmd.AddCommand(powerStatusCmd)
	powerCmd.AddCommand(powerPXECmd)
}
