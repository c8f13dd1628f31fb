package drac

import (
	"context"
	"fmt"
)

// slotNameLimit is the longest name setslotname accepts.
const slotNameLimit = 15

// SystemInfo runs getsysinfo and returns its sectioned output as
// section -> key -> value.
func (c *Client) SystemInfo(ctx context.Context, scope Scope) (map[string]map[string]string, error) {
	res, err := c.query(ctx, Command{Verb: "getsysinfo", Scope: scope})
	if err != nil {
		return nil, err
	}
	return parseSections(res.Stdout), nil
}

// Inventory runs getversion and returns the chassis inventory grouped by
// block kind (server, switch, cmc, chassis), then by unit name.
func (c *Client) Inventory(ctx context.Context) (map[string]map[string]map[string]string, error) {
	res, err := c.query(ctx, Command{Verb: "getversion"})
	if err != nil {
		return nil, err
	}
	return parseInventory(res.Stdout), nil
}

// ListSlotNames returns all chassis slots keyed by slot identifier.
func (c *Client) ListSlotNames(ctx context.Context) (map[string]Slot, error) {
	res, err := c.query(ctx, Command{Verb: "getslotname"})
	if err != nil {
		return nil, err
	}
	return parseSlotNames(res.Stdout), nil
}

// SlotName returns a single slot's record. Returns ErrSlotNotFound when the
// chassis has no such slot.
func (c *Client) SlotName(ctx context.Context, slot string) (Slot, error) {
	slots, err := c.ListSlotNames(ctx)
	if err != nil {
		return Slot{}, err
	}
	s, ok := slots[slot]
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
	}
	return s, nil
}

// SetSlotName renames a slot. Names longer than the firmware's 15-character
// limit are truncated.
func (c *Client) SetSlotName(ctx context.Context, slot, name string) error {
	if len(name) > slotNameLimit {
		name = name[:slotNameLimit]
	}
	return c.run(ctx, Command{Verb: "setslotname", Args: []string{"-i", slot, name}})
}

func (c *Client) chassisInfo(ctx context.Context, key string) (string, error) {
	info, err := c.SystemInfo(ctx, ScopeNone)
	if err != nil {
		return "", err
	}
	val, ok := info["Chassis Information"][key]
	if !ok {
		return "", fmt.Errorf("%q missing from getsysinfo output", key)
	}
	return val, nil
}

// ChassisName returns the chassis name from system info.
func (c *Client) ChassisName(ctx context.Context) (string, error) {
	return c.chassisInfo(ctx, "Chassis Name")
}

// SetChassisName sets the chassis name.
func (c *Client) SetChassisName(ctx context.Context, name string) error {
	return c.run(ctx, Command{Verb: "setsysinfo", Args: []string{"-c", "chassisname", name}})
}

// ChassisLocation returns the chassis location from system info.
func (c *Client) ChassisLocation(ctx context.Context) (string, error) {
	return c.chassisInfo(ctx, "Chassis Location")
}

// SetChassisLocation sets the chassis location.
func (c *Client) SetChassisLocation(ctx context.Context, location string) error {
	return c.run(ctx, Command{Verb: "setsysinfo", Args: []string{"-c", "chassislocation", location}})
}

// ChassisDatacenter returns the datacenter property of the chassis.
func (c *Client) ChassisDatacenter(ctx context.Context) (string, error) {
	return c.GetConfig(ctx, "cfgLocation", "cfgLocationDatacenter")
}

// SetChassisDatacenter sets the datacenter property of the chassis.
func (c *Client) SetChassisDatacenter(ctx context.Context, datacenter string) error {
	return c.SetConfig(ctx, "cfgLocation", "cfgLocationDatacenter", datacenter)
}

// SetConfig writes a raw config group/object value. Escape hatch for
// properties without a dedicated wrapper.
func (c *Client) SetConfig(ctx context.Context, group, object, value string) error {
	return c.run(ctx, Command{Verb: "config", Args: []string{"-g", group, "-o", object, value}})
}

// GetConfig reads a raw config group/object value and returns racadm's
// cleaned stdout verbatim.
func (c *Client) GetConfig(ctx context.Context, group, object string) (string, error) {
	res, err := c.query(ctx, Command{Verb: "getconfig", Args: []string{"-g", group, "-o", object}})
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}
