package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dracctl/pkg/output"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Network configuration commands",
}

var networkInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the targeted module's network configuration",
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

		info, err := client.NetworkInfo(context.Background(), scope())
		if err != nil {
			return fmt.Errorf("failed to get network info: %w", err)
		}
		return output.New(format).Sections(info)
	},
}

var networkSetCmd = &cobra.Command{
	Use:   "set <ip> <netmask> <gateway>",
	Short: "Assign a static address to the targeted module's NIC",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.SetNicCfg(context.Background(), scope(), args[0], args[1], args[2]); err != nil {
			return fmt.Errorf("failed to set network config: %w", err)
		}
		fmt.Printf("Static address %s configured\n", args[0])
		return nil
	},
}

var networkDHCPCmd = &cobra.Command{
	Use:   "dhcp",
	Short: "Switch the targeted module's NIC to DHCP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.SetNicCfgDHCP(context.Background(), scope()); err != nil {
			return fmt.Errorf("failed to enable DHCP: %w", err)
		}
		fmt.Println("DHCP enabled")
		return nil
	},
}

var networkVlanCmd = &cobra.Command{
	Use:   "vlan <vlan>",
	Short: "Set the VLAN of the targeted module's NIC",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.SetNicVlan(context.Background(), scope(), args[0]); err != nil {
			return fmt.Errorf("failed to set VLAN: %w", err)
		}
		fmt.Printf("VLAN set to %s\n", args[0])
		return nil
	},
}

var networkNameserversCmd = &cobra.Command{
	Use:   "nameservers <server> [server]",
	Short: "Configure DNS servers on the DRAC",
	Long:  "Configure the DRAC's DNS servers. racadm supports at most two.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Nameservers(context.Background(), args, scope()); err != nil {
			return fmt.Errorf("failed to set nameservers: %w", err)
		}
		fmt.Println("Nameservers configured")
		return nil
	},
}

var networkSyslogCmd = &cobra.Command{
	Use:   "syslog <server>",
	Short: "Configure remote syslog",
	Long:  "Enable remote syslog to the given server, or disable it with --disable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		disable, err := cmd.Flags().GetBool("disable")
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Syslog(context.Background(), args[0], !disable, scope()); err != nil {
			return fmt.Errorf("failed to configure syslog: %w", err)
		}
		if disable {
			fmt.Println("Syslog disabled")
		} else {
			fmt.Printf("Syslog enabled, forwarding to %s\n", args[0])
		}
		return nil
	},
}

var networkEmailAlertsCmd = &cobra.Command{
	Use:   "email-alerts <on|off>",
	Short: "Enable or disable email alerts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enable bool
		switch args[0] {
		case "on":
			enable = true
		case "off":
			enable = false
		default:
			return fmt.Errorf("expected 'on' or 'off', got %q", args[0])
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.EmailAlerts(context.Background(), enable); err != nil {
			return fmt.Errorf("failed to configure email alerts: %w", err)
		}
		fmt.Printf("Email alerts %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)

	networkCmd.AddCommand(networkInfoCmd)
	networkCmd.AddCommand(networkSetCmd)
	networkCmd.AddCommand(networkDHCPCmd)
	networkCmd.AddCommand(networkVlanCmd)
	networkCmd.AddCommand(networkNameserversCmd)
	networkCmd.AddCommand(networkSyslogCmd)
	networkCmd.AddCommand(networkEmailAlertsCmd)

	output.AddFormatFlag(networkInfoCmd)
	networkSyslogCmd.Flags().Bool("disable", false, "disable remote syslog")
}
