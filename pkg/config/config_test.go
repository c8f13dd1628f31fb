package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dracctl/pkg/drac"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, drac.DefaultBinary, cfg.Racadm.Binary)
	assert.Equal(t, drac.DefaultTimeout, cfg.Racadm.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Target.Host)
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("DRACCTL_TARGET_HOST", "cmc.example.com")
	t.Setenv("DRACCTL_TARGET_USERNAME", "root")
	t.Setenv("DRACCTL_RACADM_BINARY", "/opt/dell/srvadmin/bin/racadm")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cmc.example.com", cfg.Target.Host)
	assert.Equal(t, "root", cfg.Target.Username)
	assert.Equal(t, "/opt/dell/srvadmin/bin/racadm", cfg.Racadm.Binary)
}
