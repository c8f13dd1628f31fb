package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"dracctl/pkg/config"
	"dracctl/pkg/drac"
)

var (
	cfg *config.Config

	flagHost     string
	flagUser     string
	flagPassword string
	flagModule   string
)

var rootCmd = &cobra.Command{
	Use:   "dracctl",
	Short: "Manage Dell DRAC/iDRAC and CMC hardware via racadm",
	Long: `A command-line interface for managing Dell server and blade-chassis
hardware through the vendor racadm tool: power control, network and SNMP
configuration, user accounts, and slot naming.

Commands run against the local RAC interface by default; pass --host (with
--user/--password) to address a remote DRAC or CMC, and --module to target a
single blade or switch within a chassis (ALL_SERVER, ALL_SWITCH and ALL fan
out to every unit of that kind).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
			zerolog.SetGlobalLevel(level)
		}

		if !drac.Available(cfg.Racadm.Binary) {
			return fmt.Errorf("racadm binary %q not found on PATH", cfg.Racadm.Binary)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "remote DRAC/CMC host")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "admin username for the remote host")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "admin password for the remote host")
	rootCmd.PersistentFlags().StringVarP(&flagModule, "module", "m", "", "chassis module to target (server-N, switch-N, ALL_SERVER, ALL_SWITCH, ALL)")

	viper.BindPFlag("target.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("target.username", rootCmd.PersistentFlags().Lookup("user"))
	viper.BindPFlag("target.password", rootCmd.PersistentFlags().Lookup("password"))
}

// newClient builds a racadm client from config plus command-line overrides,
// prompting for the password when a remote host is addressed without one.
func newClient() (*drac.Client, error) {
	target := cfg.Target
	if flagHost != "" {
		target.Host = flagHost
	}
	if flagUser != "" {
		target.Username = flagUser
	}
	if flagPassword != "" {
		target.Password = flagPassword
	}

	if target.Host != "" && target.Password == "" {
		password, err := promptPassword(target.Username)
		if err != nil {
			return nil, err
		}
		target.Password = password
	}

	client := drac.New(target)
	client.SetBinary(cfg.Racadm.Binary)
	client.SetTimeout(cfg.Racadm.Timeout)
	return client, nil
}

// scope returns the module scope selected by --module.
func scope() drac.Scope {
	return drac.Scope(flagModule)
}

func promptPassword(username string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no password given for remote user %q and stdin is not a terminal", username)
	}
	fmt.Fprintf(os.Stderr, "Password for %s: ", username)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
