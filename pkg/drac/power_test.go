package drac

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerActionsVerbs(t *testing.T) {
	tests := []struct {
		name   string
		call   func(*Client) error
		action string
	}{
		{"on", func(c *Client) error { return c.PowerOn(context.Background(), ScopeNone) }, "powerup"},
		{"off", func(c *Client) error { return c.PowerOff(context.Background(), ScopeNone) }, "powerdown"},
		{"cycle", func(c *Client) error { return c.PowerCycle(context.Background(), ScopeNone) }, "powercycle"},
		{"hardreset", func(c *Client) error { return c.HardReset(context.Background(), ScopeNone) }, "hardreset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, runner := newFakeClient(nil)
			require.NoError(t, tt.call(client))
			require.Len(t, runner.calls, 1)
			assert.Equal(t, []string{"racadm", "serveraction", tt.action}, runner.calls[0])
		})
	}
}

func TestPowerStatus(t *testing.T) {
	tests := []struct {
		name    string
		stdout  string
		want    PowerState
		wantErr bool
	}{
		{"on", "ON\n", PowerStateOn, false},
		{"off", "OFF\n", PowerStateOff, false},
		{"error output", "ERROR: Unable to perform requested operation.\n", PowerStateUnknown, true},
		{"unrecognized", "Maybe\n", PowerStateUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newFakeClient(func(args []string) Result {
				return Result{Stdout: tt.stdout}
			})

			state, err := client.PowerStatus(context.Background(), ScopeNone)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestBootOncePXE(t *testing.T) {
	client, runner := newFakeClient(nil)

	require.NoError(t, client.BootOncePXE(context.Background(), Scope("server-3")))

	require.Len(t, runner.calls, 3)
	assert.Equal(t, []string{"racadm", "config", "-g", "cfgServerInfo", "-o", "cfgServerFirstBootDevice", "PXE", "-m", "server-3"}, runner.calls[0])
	assert.Equal(t, []string{"racadm", "config", "-g", "cfgServerInfo", "-o", "cfgServerBootOnce", "1", "-m", "server-3"}, runner.calls[1])
	assert.Equal(t, []string{"racadm", "serveraction", "powercycle", "-m", "server-3"}, runner.calls[2])
}

func TestBootOncePXEStopsOnConfigFailure(t *testing.T) {
	client, runner := newFakeClient(func(args []string) Result {
		for _, a := range args {
			if a == "cfgServerBootOnce" {
				return Result{ExitCode: 1}
			}
		}
		return Result{}
	})

	err := client.BootOncePXE(context.Background(), ScopeNone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boot-once")

	// No reboot was issued after the failed config step
	require.Len(t, runner.calls, 2)
}
