package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"dracctl/pkg/output"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "DRAC user account management commands",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured DRAC users",
	Long:  "List all configured DRAC user accounts by scanning the 16 user slots",
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

		users, err := client.ListUsers(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		formatter := output.New(format)
		if formatter.IsJSON() {
			return formatter.Output(users)
		}
		names := make([]string, 0, len(users))
		for name := range users {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			return users[names[i]].Index < users[names[j]].Index
		})
		for _, name := range names {
			fmt.Printf("%2d  %s\n", users[name].Index, name)
		}
		return nil
	},
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username> <password> <privileges>",
	Short: "Create a DRAC user",
	Long: `Create a DRAC user account in the lowest free user slot.

Privileges are a comma-separated list of:
  login, drac, user_management, clear_logs, server_control_commands,
  console_redirection, virtual_media, test_alerts, debug_commands`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.CreateUser(context.Background(), args[0], args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("User %s created\n", args[0])
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete a DRAC user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := cmd.Flags().GetInt("index")
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.DeleteUser(context.Background(), args[0], index); err != nil {
			return err
		}
		fmt.Printf("User %s deleted\n", args[0])
		return nil
	},
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd <username> <password>",
	Short: "Change a DRAC user's password",
	Long: `Change a DRAC user's password.

Without --index the username is resolved by querying all 16 user slots,
which is slow; pass the slot index when it is known (root is slot 1 on most
late-model chassis).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := cmd.Flags().GetInt("index")
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.ChangePassword(context.Background(), args[0], args[1], index); err != nil {
			return err
		}
		fmt.Printf("Password changed for %s\n", args[0])
		return nil
	},
}

var userPermsCmd = &cobra.Command{
	Use:   "perms <username> <privileges>",
	Short: "Set a DRAC user's privileges",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := cmd.Flags().GetInt("index")
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.SetPermissions(context.Background(), args[0], args[1], index); err != nil {
			return err
		}
		fmt.Printf("Permissions set for %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userDeleteCmd)
	userCmd.AddCommand(userPasswdCmd)
	userCmd.AddCommand(userPermsCmd)

	output.AddFormatFlag(userListCmd)
	userDeleteCmd.Flags().Int("index", 0, "user slot index, skips the slot scan")
	userPasswdCmd.Flags().Int("index", 0, "user slot index, skips the slot scan")
	userPermsCmd.Flags().Int("index", 0, "user slot index, skips the slot scan")
}
