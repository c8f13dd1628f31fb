package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"dracctl/pkg/drac"
)

// Config is the tool configuration: which racadm binary to run, the default
// chassis target, and execution limits.
type Config struct {
	Racadm RacadmConfig `mapstructure:"racadm"`
	Target drac.Target  `mapstructure:"target"`
	Log    LogConfig    `mapstructure:"log"`
}

type RacadmConfig struct {
	Binary  string        `mapstructure:"binary"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Config search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.dracctl")
	viper.AddConfigPath("/etc/dracctl/")

	// Environment variable overrides: DRACCTL_TARGET_HOST etc.
	viper.SetEnvPrefix("DRACCTL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.BindEnv("racadm.binary")
	viper.BindEnv("target.host")
	viper.BindEnv("target.username")
	viper.BindEnv("target.password")
	viper.BindEnv("log.level")

	viper.SetDefault("racadm.binary", drac.DefaultBinary)
	viper.SetDefault("racadm.timeout", drac.DefaultTimeout)
	viper.SetDefault("log.level", "info")

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
