package drac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrivileges(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{"single flag", "login", "0x00000001"},
		{"two flags", "login,drac", "0x00000003"},
		{"order independent", "drac,login", "0x00000003"},
		{"duplicates idempotent", "drac,login,login", "0x00000003"},
		{"whitespace tolerated", " login , drac ", "0x00000003"},
		{"all flags", "login,drac,user_management,clear_logs,server_control_commands,console_redirection,virtual_media,test_alerts,debug_commands", "0x000001FF"},
		{"empty elements skipped", "login,,drac", "0x00000003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := ParsePrivileges(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mask.Mask())
		})
	}
}

func TestParsePrivilegesUnknownFlag(t *testing.T) {
	_, err := ParsePrivileges("login,superuser")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPrivilege))
	assert.Contains(t, err.Error(), "superuser")
}

func TestPrivilegeBitValues(t *testing.T) {
	// Bit values are part of the wire format racadm expects; they must not
	// drift.
	assert.Equal(t, Privilege(0x001), PrivLogin)
	assert.Equal(t, Privilege(0x002), PrivConfigure)
	assert.Equal(t, Privilege(0x004), PrivUserManagement)
	assert.Equal(t, Privilege(0x008), PrivClearLogs)
	assert.Equal(t, Privilege(0x010), PrivServerControl)
	assert.Equal(t, Privilege(0x020), PrivConsole)
	assert.Equal(t, Privilege(0x040), PrivVirtualMedia)
	assert.Equal(t, Privilege(0x080), PrivTestAlerts)
	assert.Equal(t, Privilege(0x100), PrivDebugCommands)
}
