package common

import (
	"context"
)

type CommandExecutor interface {
	RunInteractiveCommand(ctx context.Context, name string, args ...string) error
	RunInteractiveCommandWithEnv(ctx context.Context, env []string, name string, args ...string) error
	LookPath(file string) (string, error)
}

type OSDetector interface {
	GetOS() string
}
