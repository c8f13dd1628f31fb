package drac

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNicCfg = `NIC Enabled       = 1
DHCP Enabled      = 0
IP Address        = 192.168.10.24
Subnet Mask       = 255.255.255.0
Gateway           = 192.168.10.1
`

func TestNetworkInfoForSwitch(t *testing.T) {
	client, _ := newFakeClient(func(args []string) Result {
		if args[0] == "getversion" {
			return Result{Stdout: sampleGetVersion}
		}
		return Result{Stdout: sampleNicCfg}
	})

	info, err := client.NetworkInfo(context.Background(), Scope("switch-1"))
	require.NoError(t, err)

	net := info["Network"]
	require.NotNil(t, net)
	assert.Equal(t, "switch-1", net["Device"])
	assert.Equal(t, "192.168.10.24", net["IP Address"])
}

func TestNetworkInfoUnknownSwitch(t *testing.T) {
	client, _ := newFakeClient(func(args []string) Result {
		if args[0] == "getversion" {
			return Result{Stdout: sampleGetVersion}
		}
		return Result{Stdout: sampleNicCfg}
	})

	_, err := client.NetworkInfo(context.Background(), Scope("switch-9"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "switch-9")
}

func TestNetworkInfoUnscopedSkipsInventoryCheck(t *testing.T) {
	client, runner := newFakeClient(func(args []string) Result {
		return Result{Stdout: sampleNicCfg}
	})

	info, err := client.NetworkInfo(context.Background(), ScopeNone)
	require.NoError(t, err)

	// Only getniccfg ran; no getversion round trip
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "getniccfg", runner.calls[0][1])
	assert.Equal(t, "255.255.255.0", info["Network"]["Subnet Mask"])
}

func TestSetNicCfg(t *testing.T) {
	client, runner := newFakeClient(nil)

	require.NoError(t, client.SetNicCfg(context.Background(), Scope("server-2"), "10.0.0.5", "255.255.255.0", "10.0.0.1"))
	assert.Equal(t,
		[]string{"racadm", "setniccfg", "-s", "10.0.0.5", "255.255.255.0", "10.0.0.1", "-m", "server-2"},
		runner.calls[0])

	require.NoError(t, client.SetNicCfgDHCP(context.Background(), ScopeAllServers))
	assert.Equal(t, []string{"racadm", "setniccfg", "-d", "-a", "server"}, runner.calls[1])
}

func TestNameservers(t *testing.T) {
	client, runner := newFakeClient(nil)

	require.NoError(t, client.Nameservers(context.Background(), []string{"10.0.0.2", "10.0.0.3"}, ScopeNone))

	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"racadm", "config", "-g", "cfgLanNetworking", "-o", "cfgDNSServer1", "10.0.0.2"}, runner.calls[0])
	assert.Equal(t, []string{"racadm", "config", "-g", "cfgLanNetworking", "-o", "cfgDNSServer2", "10.0.0.3"}, runner.calls[1])
}

func TestNameserversTooMany(t *testing.T) {
	client, runner := newFakeClient(nil)

	err := client.Nameservers(context.Background(), []string{"a", "b", "c"}, ScopeNone)
	require.Error(t, err)
	assert.Empty(t, runner.calls)
}

func TestSyslog(t *testing.T) {
	client, runner := newFakeClient(nil)

	require.NoError(t, client.Syslog(context.Background(), "10.0.0.9", true, ScopeNone))
	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"racadm", "config", "-g", "cfgRemoteHosts", "-o", "cfgRhostsSyslogEnable", "1"}, runner.calls[0])
	assert.Equal(t, []string{"racadm", "config", "-g", "cfgRemoteHosts", "-o", "cfgRhostsSyslogServer1", "10.0.0.9"}, runner.calls[1])
}

func TestSyslogDisable(t *testing.T) {
	client, runner := newFakeClient(nil)

	require.NoError(t, client.Syslog(context.Background(), "ignored", false, ScopeNone))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"racadm", "config", "-g", "cfgRemoteHosts", "-o", "cfgRhostsSyslogEnable", "0"}, runner.calls[0])
}

func TestDeployCommands(t *testing.T) {
	client, runner := newFakeClient(nil)
	ctx := context.Background()

	require.NoError(t, client.DeployPassword(ctx, "deploy", "s3cret", ScopeNone))
	require.NoError(t, client.DeploySNMP(ctx, "public", ScopeNone))

	assert.Equal(t, []string{"racadm", "deploy", "-u", "deploy", "-p", "s3cret"}, runner.calls[0])
	assert.Equal(t, []string{"racadm", "deploy", "-v", "SNMPv2", "public", "ro"}, runner.calls[1])
}
