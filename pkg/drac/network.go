package drac

import (
	"context"
	"fmt"
	"strconv"
)

// NetworkInfo returns the scoped module's network configuration as parsed
// from getniccfg, under a synthesized "Network" section that also carries
// the device name. When the scope names a module it is validated against
// the chassis switch inventory first.
func (c *Client) NetworkInfo(ctx context.Context, scope Scope) (map[string]map[string]string, error) {
	if module := scope.Module(); module != "" {
		inv, err := c.Inventory(ctx)
		if err != nil {
			return nil, err
		}
		if _, ok := inv["switch"][module]; !ok {
			return nil, fmt.Errorf("no switch %q found in chassis inventory", module)
		}
	}

	res, err := c.query(ctx, Command{Verb: "getniccfg", Scope: scope})
	if err != nil {
		return nil, err
	}

	out := "Network:\nDevice = " + string(scope) + "\n" + res.Stdout
	return parseSections(out), nil
}

// SetNicCfg assigns a static address to the scoped module's NIC.
func (c *Client) SetNicCfg(ctx context.Context, scope Scope, ip, netmask, gateway string) error {
	return c.run(ctx, Command{
		Verb:  "setniccfg",
		Args:  []string{"-s", ip, netmask, gateway},
		Scope: scope,
	})
}

// SetNicCfgDHCP switches the scoped module's NIC to DHCP.
func (c *Client) SetNicCfgDHCP(ctx context.Context, scope Scope) error {
	return c.run(ctx, Command{Verb: "setniccfg", Args: []string{"-d"}, Scope: scope})
}

// SetNicVlan sets the VLAN of the scoped module's NIC.
func (c *Client) SetNicVlan(ctx context.Context, scope Scope, vlan string) error {
	args := []string{"-v"}
	if vlan != "" {
		args = append(args, vlan)
	}
	return c.run(ctx, Command{Verb: "setniccfg", Args: args, Scope: scope})
}

// SetNetwork configures the management network of the CMC or an individual
// iDRAC. Use SetNicCfg for blade and switch addresses.
func (c *Client) SetNetwork(ctx context.Context, ip, netmask, gateway string) error {
	return c.run(ctx, Command{Verb: "setniccfg", Args: []string{"-s", ip, netmask, gateway}})
}

// Nameservers configures up to two DNS servers on the DRAC.
func (c *Client) Nameservers(ctx context.Context, servers []string, scope Scope) error {
	if len(servers) > 2 {
		return fmt.Errorf("racadm supports at most two nameservers, got %d", len(servers))
	}
	for i, server := range servers {
		cmd := Command{
			Verb:  "config",
			Args:  []string{"-g", "cfgLanNetworking", "-o", "cfgDNSServer" + strconv.Itoa(i+1), server},
			Scope: scope,
		}
		if err := c.run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// Syslog enables remote syslog to the given server, or disables syslog
// entirely when enable is false.
func (c *Client) Syslog(ctx context.Context, server string, enable bool, scope Scope) error {
	if !enable {
		return c.SetConfig(ctx, "cfgRemoteHosts", "cfgRhostsSyslogEnable", "0")
	}
	if err := c.SetConfig(ctx, "cfgRemoteHosts", "cfgRhostsSyslogEnable", "1"); err != nil {
		return err
	}
	return c.run(ctx, Command{
		Verb:  "config",
		Args:  []string{"-g", "cfgRemoteHosts", "-o", "cfgRhostsSyslogServer1", server},
		Scope: scope,
	})
}

// EmailAlerts enables or disables the first email alert slot.
func (c *Client) EmailAlerts(ctx context.Context, enable bool) error {
	value := "0"
	if enable {
		value = "1"
	}
	return c.run(ctx, Command{
		Verb: "config",
		Args: []string{"-g", "cfgEmailAlert", "-o", "cfgEmailAlertEnable", "-i", "1", value},
	})
}

// SetSNMP sets the SNMP community string of the CMC or an individual iDRAC.
// Use DeploySNMP for chassis switches.
func (c *Client) SetSNMP(ctx context.Context, community string) error {
	return c.SetConfig(ctx, "cfgOobSnmp", "cfgOobSnmpAgentCommunity", community)
}

// DeployPassword sets the QuickDeploy credentials, used for switches as
// well.
func (c *Client) DeployPassword(ctx context.Context, username, password string, scope Scope) error {
	return c.run(ctx, Command{
		Verb:  "deploy",
		Args:  []string{"-u", username, "-p", password},
		Scope: scope,
	})
}

// DeploySNMP sets the QuickDeploy read-only SNMP community string.
func (c *Client) DeploySNMP(ctx context.Context, community string, scope Scope) error {
	return c.run(ctx, Command{
		Verb:  "deploy",
		Args:  []string{"-v", "SNMPv2", community, "ro"},
		Scope: scope,
	})
}
