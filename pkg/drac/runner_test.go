package drac

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix shell utilities")
	}

	var runner ExecRunner
	ctx := context.Background()

	t.Run("captures stdout", func(t *testing.T) {
		res := runner.Run(ctx, "echo", []string{"hello"})
		assert.Equal(t, 0, res.ExitCode)
		assert.Equal(t, "hello\n", res.Stdout)
	})

	t.Run("reports nonzero exit", func(t *testing.T) {
		res := runner.Run(ctx, "false", nil)
		assert.NotEqual(t, 0, res.ExitCode)
	})

	t.Run("missing binary", func(t *testing.T) {
		res := runner.Run(ctx, "definitely-not-a-real-binary-4821", nil)
		assert.Equal(t, -1, res.ExitCode)
		assert.NotEmpty(t, res.Stderr)
	})
}

func TestAvailable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix shell utilities")
	}
	assert.True(t, Available("echo"))
	assert.False(t, Available("definitely-not-a-real-binary-4821"))
}
