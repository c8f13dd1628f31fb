package drac

import "strings"

// Scope selects which unit of a chassis a command targets. The empty scope
// addresses whatever the connection itself points at (the CMC, or a single
// iDRAC). A plain value names one module ("server-1", "switch-2"); the ALL_*
// sentinels fan the command out with racadm's -a flag.
type Scope string

const (
	ScopeNone        Scope = ""
	ScopeAll         Scope = "ALL"
	ScopeAllServers  Scope = "ALL_SERVER"
	ScopeAllSwitches Scope = "ALL_SWITCH"
)

// Module returns the single module name this scope addresses, or "" for the
// empty scope and the ALL_* sentinels.
func (s Scope) Module() string {
	if s == ScopeNone || s == ScopeAll || strings.HasPrefix(string(s), "ALL_") {
		return ""
	}
	return string(s)
}

func (s Scope) args() []string {
	switch {
	case s == ScopeNone:
		return nil
	case s == ScopeAll:
		return []string{"-a"}
	case strings.HasPrefix(string(s), "ALL_"):
		return []string{"-a", strings.ToLower(string(s[len("ALL_"):]))}
	default:
		return []string{"-m", string(s)}
	}
}

// Target identifies the controller a command is sent to. A zero Target means
// the local racadm interface; a nonempty Host adds the -r/-u/-p remote
// prefix.
type Target struct {
	Host     string `mapstructure:"host"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Command is one racadm invocation: a verb, its arguments, and the scope
// switch appended after them. Commands are built per call and discarded.
type Command struct {
	Verb  string
	Args  []string
	Scope Scope
}

// argv assembles the full racadm argument vector for a target. Passing
// arguments as a vector rather than a formatted string keeps passwords out
// of shell quoting.
func (c Command) argv(t Target) []string {
	args := make([]string, 0, 8+len(c.Args))
	if t.Host != "" {
		args = append(args, "-r", t.Host, "-u", t.Username, "-p", t.Password)
	}
	args = append(args, c.Verb)
	args = append(args, c.Args...)
	args = append(args, c.Scope.args()...)
	return args
}
