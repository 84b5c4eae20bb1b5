package common

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

type RealCommandExecutor struct{}

func (e *RealCommandExecutor) RunInteractiveCommand(ctx context.Context, name string, args ...string) error {
	return e.RunInteractiveCommandWithEnv(ctx, nil, name, args...)
}

// RunInteractiveCommandWithEnv runs name attached to the terminal. A nil env
// inherits the current process environment.
func (e *RealCommandExecutor) RunInteractiveCommandWithEnv(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ExitCode extracts the exit status of a process that ran and exited
// unsuccessfully. Processes killed by a signal report 1.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	code := exitErr.ExitCode()
	if code < 0 {
		code = 1
	}
	return code, true
}
