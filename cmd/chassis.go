package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var chassisCmd = &cobra.Command{
	Use:   "chassis",
	Short: "Chassis identity commands",
	Long:  "Get and set the chassis name, location and datacenter properties",
}

// chassisProperty wires a get/set command pair for one chassis property.
func chassisProperty(name string, get func(*cobra.Command) error, set func(*cobra.Command, string) error) *cobra.Command {
	prop := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Get or set the chassis %s", name),
	}
	prop.AddCommand(&cobra.Command{
		Use:   "get",
		Short: fmt.Sprintf("Print the chassis %s", name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get(cmd)
		},
	})
	prop.AddCommand(&cobra.Command{
		Use:   "set <value>",
		Short: fmt.Sprintf("Set the chassis %s", name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return set(cmd, args[0])
		},
	})
	return prop
}

func init() {
	rootCmd.AddCommand(chassisCmd)

	chassisCmd.AddCommand(chassisProperty("name",
		func(cmd *cobra.Command) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			name, err := client.ChassisName(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get chassis name: %w", err)
			}
			fmt.Println(name)
			return nil
		},
		func(cmd *cobra.Command, value string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.SetChassisName(context.Background(), value); err != nil {
				return fmt.Errorf("failed to set chassis name: %w", err)
			}
			fmt.Printf("Chassis name set to %s\n", value)
			return nil
		}))

	chassisCmd.AddCommand(chassisProperty("location",
		func(cmd *cobra.Command) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			location, err := client.ChassisLocation(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get chassis location: %w", err)
			}
			fmt.Println(location)
			return nil
		},
		func(cmd *cobra.Command, value string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.SetChassisLocation(context.Background(), value); err != nil {
				return fmt.Errorf("failed to set chassis location: %w", err)
			}
			fmt.Printf("Chassis location set to %s\n", value)
			return nil
		}))

	chassisCmd.AddCommand(chassisProperty("datacenter",
		func(cmd *cobra.Command) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			dc, err := client.ChassisDatacenter(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get chassis datacenter: %w", err)
			}
			fmt.Println(dc)
			return nil
		},
		func(cmd *cobra.Command, value string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.SetChassisDatacenter(context.Background(), value); err != nil {
				return fmt.Errorf("failed to set chassis datacenter: %w", err)
			}
			fmt.Printf("Chassis datacenter set to %s\n", value)
			return nil
		}))
}
