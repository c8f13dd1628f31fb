// Package drac wraps Dell's racadm command-line tool for managing DRAC/iDRAC
// controllers and CMC-based blade chassis: power control, network and SNMP
// configuration, user accounts, and slot naming.
//
// Every operation shells out to the racadm binary, synchronously, and parses
// its semi-structured text output. There are no retries; the tool's exit
// code is authoritative.
package drac

import (
	"context"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBinary is the racadm executable name resolved via PATH.
const DefaultBinary = "racadm"

// DefaultTimeout bounds a single racadm invocation.
const DefaultTimeout = 30 * time.Second

// Available reports whether the given racadm binary (or the default when
// empty) can be found on PATH. Callers should treat a false result as "this
// machine cannot manage DRAC hardware at all".
func Available(binary string) bool {
	if binary == "" {
		binary = DefaultBinary
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

// Client issues racadm commands against one target controller. It is safe
// to reuse across calls; each call spawns its own subprocess.
type Client struct {
	runner  Runner
	target  Target
	binary  string
	timeout time.Duration
}

// New creates a client that executes racadm as a local subprocess.
func New(target Target) *Client {
	return NewWithRunner(target, ExecRunner{})
}

// NewWithRunner creates a client with an injected command runner.
func NewWithRunner(target Target, runner Runner) *Client {
	return &Client{
		runner:  runner,
		target:  target,
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
	}
}

// SetBinary overrides the racadm executable path.
func (c *Client) SetBinary(path string) {
	if path != "" {
		c.binary = path
	}
}

// SetTimeout overrides the per-invocation timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

func (c *Client) exec(ctx context.Context, cmd Command) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res := c.runner.Run(ctx, c.binary, cmd.argv(c.target))
	if res.ExitCode != 0 {
		log.Warn().
			Str("verb", cmd.Verb).
			Int("exit_code", res.ExitCode).
			Msg("racadm returned a nonzero exit code")
	}
	return res
}

// run executes a mutating command. A nonzero exit code becomes an
// *ExitError; there is nothing useful in the output of these commands.
func (c *Client) run(ctx context.Context, cmd Command) error {
	res := c.exec(ctx, cmd)
	if res.ExitCode != 0 {
		return &ExitError{Verb: cmd.Verb, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// query executes a read command and returns its result with noise lines
// stripped from stdout. On a nonzero exit the raw result is returned
// alongside the error so callers can inspect the exit code.
func (c *Client) query(ctx context.Context, cmd Command) (Result, error) {
	res := c.exec(ctx, cmd)
	if res.ExitCode != 0 {
		return res, &ExitError{Verb: cmd.Verb, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	res.Stdout = cleanOutput(res.Stdout)
	return res, nil
}
