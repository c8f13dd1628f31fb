package drac

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records every invocation and answers from a scripted response
// function.
type fakeRunner struct {
	calls   [][]string
	respond func(args []string) Result
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string) Result {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)
	if f.respond == nil {
		return Result{}
	}
	return f.respond(args)
}

func newFakeClient(respond func(args []string) Result) (*Client, *fakeRunner) {
	runner := &fakeRunner{respond: respond}
	return NewWithRunner(Target{}, runner), runner
}

func TestRunSuccess(t *testing.T) {
	client, runner := newFakeClient(nil)

	err := client.run(context.Background(), Command{Verb: "setsysinfo", Args: []string{"-c", "chassisname", "lab"}})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"racadm", "setsysinfo", "-c", "chassisname", "lab"}, runner.calls[0])
}

func TestRunNonzeroExit(t *testing.T) {
	client, _ := newFakeClient(func(args []string) Result {
		return Result{ExitCode: 2, Stderr: "ERROR: unable to apply"}
	})

	err := client.run(context.Background(), Command{Verb: "setsysinfo"})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.ExitCode)
	assert.Equal(t, "setsysinfo", exitErr.Verb)
	assert.Contains(t, exitErr.Error(), "unable to apply")
}

func TestQueryCleansOutput(t *testing.T) {
	client, _ := newFakeClient(func(args []string) Result {
		return Result{Stdout: "Security Alert: bad cert\n\nON\n"}
	})

	res, err := client.query(context.Background(), Command{Verb: "serveraction", Args: []string{"powerstatus"}})
	require.NoError(t, err)
	assert.Equal(t, "ON", res.Stdout)
}

func TestQueryPreservesExitCode(t *testing.T) {
	client, _ := newFakeClient(func(args []string) Result {
		return Result{ExitCode: 5, Stdout: "partial", Stderr: "boom"}
	})

	res, err := client.query(context.Background(), Command{Verb: "getsysinfo"})
	require.Error(t, err)
	assert.Equal(t, 5, res.ExitCode)
	assert.Equal(t, "partial", res.Stdout)
}

func TestRemoteTargetPrefix(t *testing.T) {
	runner := &fakeRunner{}
	client := NewWithRunner(Target{Host: "cmc.example.com", Username: "root", Password: "calvin"}, runner)

	require.NoError(t, client.PowerOn(context.Background(), Scope("server-1")))

	require.Len(t, runner.calls, 1)
	assert.Equal(t,
		[]string{"racadm", "-r", "cmc.example.com", "-u", "root", "-p", "calvin", "serveraction", "powerup", "-m", "server-1"},
		runner.calls[0])
}

func TestSetBinary(t *testing.T) {
	client, runner := newFakeClient(nil)
	client.SetBinary("/opt/dell/srvadmin/bin/racadm")

	require.NoError(t, client.PowerOn(context.Background(), ScopeNone))
	assert.Equal(t, "/opt/dell/srvadmin/bin/racadm", runner.calls[0][0])
}

func TestMutatingOperationsNeverPanicOnFailure(t *testing.T) {
	client, _ := newFakeClient(func(args []string) Result {
		return Result{ExitCode: 1}
	})
	ctx := context.Background()

	assert.Error(t, client.PowerOn(ctx, ScopeNone))
	assert.Error(t, client.PowerOff(ctx, ScopeNone))
	assert.Error(t, client.PowerCycle(ctx, ScopeNone))
	assert.Error(t, client.HardReset(ctx, ScopeNone))
	assert.Error(t, client.SetChassisName(ctx, "x"))
	assert.Error(t, client.SetSlotName(ctx, "1", "x"))
	assert.Error(t, client.SetSNMP(ctx, "public"))
	assert.Error(t, client.EmailAlerts(ctx, true))
	assert.Error(t, client.SetNicCfgDHCP(ctx, ScopeNone))
}
