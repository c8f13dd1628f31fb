package drac

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// PowerState is a server's reported power status.
type PowerState string

const (
	PowerStateOn      PowerState = "on"
	PowerStateOff     PowerState = "off"
	PowerStateUnknown PowerState = "unknown"
)

func serverAction(action string, scope Scope) Command {
	return Command{Verb: "serveraction", Args: []string{action}, Scope: scope}
}

// PowerOn powers up the scoped server, or the whole chassis for the empty
// scope.
func (c *Client) PowerOn(ctx context.Context, scope Scope) error {
	return c.run(ctx, serverAction("powerup", scope))
}

// PowerOff powers down the scoped server.
func (c *Client) PowerOff(ctx context.Context, scope Scope) error {
	return c.run(ctx, serverAction("powerdown", scope))
}

// PowerCycle powers the scoped server down and back up, like pressing the
// front-panel power button twice.
func (c *Client) PowerCycle(ctx context.Context, scope Scope) error {
	return c.run(ctx, serverAction("powercycle", scope))
}

// HardReset performs a hard reset on the scoped server.
func (c *Client) HardReset(ctx context.Context, scope Scope) error {
	return c.run(ctx, serverAction("hardreset", scope))
}

// PowerStatus reports the scoped server's power state.
func (c *Client) PowerStatus(ctx context.Context, scope Scope) (PowerState, error) {
	res, err := c.query(ctx, serverAction("powerstatus", scope))
	if err != nil {
		return PowerStateUnknown, err
	}

	out := strings.TrimSpace(res.Stdout)
	switch {
	case out == "ON":
		return PowerStateOn, nil
	case out == "OFF":
		return PowerStateOff, nil
	case strings.HasPrefix(out, "ERROR"):
		return PowerStateUnknown, fmt.Errorf("power status query failed: %s", out)
	}

	log.Warn().Str("output", out).Msg("Unknown power status output")
	return PowerStateUnknown, nil
}

// BootOncePXE configures the scoped server for a one-off PXE boot and power
// cycles it: set the first boot device to PXE, arm the boot-once flag, then
// reboot. The returned error is the power cycle's result.
func (c *Client) BootOncePXE(ctx context.Context, scope Scope) error {
	firstBoot := Command{
		Verb:  "config",
		Args:  []string{"-g", "cfgServerInfo", "-o", "cfgServerFirstBootDevice", "PXE"},
		Scope: scope,
	}
	if err := c.run(ctx, firstBoot); err != nil {
		return fmt.Errorf("failed to configure PXE boot: %w", err)
	}

	bootOnce := Command{
		Verb:  "config",
		Args:  []string{"-g", "cfgServerInfo", "-o", "cfgServerBootOnce", "1"},
		Scope: scope,
	}
	if err := c.run(ctx, bootOnce); err != nil {
		return fmt.Errorf("failed to set boot-once flag: %w", err)
	}

	return c.PowerCycle(ctx, scope)
}
