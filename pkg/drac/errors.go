package drac

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserNotFound is returned when a username cannot be resolved to a
	// user slot index.
	ErrUserNotFound = errors.New("user not found")

	// ErrSlotNotFound is returned when a slot identifier is not present in
	// the chassis slot listing.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrUnknownPrivilege is returned for privilege flag names outside the
	// supported set.
	ErrUnknownPrivilege = errors.New("unknown privilege")
)

// ExitError reports a racadm invocation that completed with a nonzero exit
// code. The exit code and captured stderr are preserved for callers that
// need them.
type ExitError struct {
	Verb     string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("racadm %s returned exit code %d", e.Verb, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
