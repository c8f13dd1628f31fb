package drac

import (
	"fmt"
	"strings"
)

// Privilege is a DRAC user privilege bit mask.
type Privilege uint32

const (
	PrivLogin          Privilege = 0x0000001 // log in to the iDRAC
	PrivConfigure      Privilege = 0x0000002 // configure the iDRAC
	PrivUserManagement Privilege = 0x0000004 // configure users
	PrivClearLogs      Privilege = 0x0000008
	PrivServerControl  Privilege = 0x0000010 // execute server control commands
	PrivConsole        Privilege = 0x0000020 // access console redirection
	PrivVirtualMedia   Privilege = 0x0000040
	PrivTestAlerts     Privilege = 0x0000080
	PrivDebugCommands  Privilege = 0x0000100
)

// privilegeNames is the closed set of flag names accepted on the CLI and
// API surface.
var privilegeNames = map[string]Privilege{
	"login":                   PrivLogin,
	"drac":                    PrivConfigure,
	"user_management":         PrivUserManagement,
	"clear_logs":              PrivClearLogs,
	"server_control_commands": PrivServerControl,
	"console_redirection":     PrivConsole,
	"virtual_media":           PrivVirtualMedia,
	"test_alerts":             PrivTestAlerts,
	"debug_commands":          PrivDebugCommands,
}

// ParsePrivileges builds a privilege mask from a comma-separated list of
// flag names. Order and duplicates do not matter. Unknown names are an
// error rather than being silently dropped.
func ParsePrivileges(spec string) (Privilege, error) {
	var mask Privilege
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, ok := privilegeNames[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownPrivilege, name)
		}
		mask |= p
	}
	return mask, nil
}

// Mask renders the privilege set as the 8-digit hexadecimal argument racadm
// expects.
func (p Privilege) Mask() string {
	return fmt.Sprintf("0x%08X", uint32(p))
}
