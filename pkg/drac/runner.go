package drac

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Result captures a single racadm invocation. It is immutable once returned
// by a Runner.
type Result struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Runner executes an external command and reports its outcome. It is the
// only process-execution hook in this package; tests inject a fake.
type Runner interface {
	Run(ctx context.Context, name string, args []string) Result
}

// ExecRunner runs commands as local subprocesses. The zero value is ready to
// use.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string) Result {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().
		Str("command", name).
		Strs("args", args).
		Msg("Executing command")

	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			// Spawn failure: the binary is missing or the context expired
			// before the process could start.
			res.ExitCode = -1
			res.Stderr = err.Error()
		}
	}
	return res
}
