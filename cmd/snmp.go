package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var snmpCmd = &cobra.Command{
	Use:   "snmp",
	Short: "SNMP configuration commands",
}

var snmpSetCmd = &cobra.Command{
	Use:   "set <community>",
	Short: "Set the SNMP community string of the CMC or iDRAC",
	Long:  "Set the SNMP agent community string. Use 'deploy snmp' for chassis switches.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.SetSNMP(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to set SNMP community: %w", err)
		}
		fmt.Println("SNMP community string set")
		return nil
	},
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "QuickDeploy configuration commands",
	Long:  "Configure the chassis QuickDeploy settings applied to newly inserted modules",
}

var deployPasswordCmd = &cobra.Command{
	Use:   "password <username> <password>",
	Short: "Set the QuickDeploy credentials",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.DeployPassword(context.Background(), args[0], args[1], scope()); err != nil {
			return fmt.Errorf("failed to set deploy credentials: %w", err)
		}
		fmt.Println("QuickDeploy credentials set")
		return nil
	},
}

var deploySNMPCmd = &cobra.Command{
	Use:   "snmp <community>",
	Short: "Set the QuickDeploy SNMP community string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.DeploySNMP(context.Background(), args[0], scope()); err != nil {
			return fmt.Errorf("failed to set deploy SNMP community: %w", err)
		}
		fmt.Println("QuickDeploy SNMP community string set")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snmpCmd)
	rootCmd.AddCommand(deployCmd)

	snmpCmd.AddCommand(snmpSetCmd)
	deployCmd.AddCommand(deployPasswordCmd)
	deployCmd.AddCommand(deploySNMPCmd)
}
