package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/BerryBytes/aws-sso-wrapper/internal/browser"
	"github.com/BerryBytes/aws-sso-wrapper/internal/config"
	"github.com/BerryBytes/aws-sso-wrapper/internal/sso"
	"github.com/BerryBytes/aws-sso-wrapper/utils/common"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoCommand       = errors.New("no command given")
	ErrCommandNotFound = errors.New("command not found")
)

// ExitCodeError carries the exit status of a wrapped command that failed.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

type Dispatcher struct {
	Config   *config.Config
	Profiles browser.ProfileFinder
	Login    sso.LoginEnsurer
	Executor common.CommandExecutor
}

func NewDispatcher(cfg *config.Config, profiles browser.ProfileFinder, login sso.LoginEnsurer, executor common.CommandExecutor) *Dispatcher {
	return &Dispatcher{
		Config:   cfg,
		Profiles: profiles,
		Login:    login,
		Executor: executor,
	}
}

// Run ensures an SSO session and then runs argv with the unmodified
// environment. A non-zero exit of the command is returned as *ExitCodeError.
func (d *Dispatcher) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrNoCommand
	}

	if err := d.Login.EnsureLogin(ctx, d.browserProfile()); err != nil {
		return err
	}

	name := argv[0]
	if _, err := d.Executor.LookPath(name); err != nil {
		return fmt.Errorf("%w: '%s'", ErrCommandNotFound, name)
	}

	logrus.Debugf("running %v", argv)
	err := d.Executor.RunInteractiveCommand(ctx, name, argv[1:]...)
	if err == nil {
		return nil
	}
	if code, ok := common.ExitCode(err); ok {
		return &ExitCodeError{Code: code}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: '%s'", ErrCommandNotFound, name)
	}
	return fmt.Errorf("failed to run '%s': %w", name, err)
}

func (d *Dispatcher) browserProfile() string {
	identifier := d.Config.ProfileIdentifier
	if identifier == "" {
		return ""
	}

	profile, found := d.Profiles.FindProfile(identifier)
	if !found {
		logrus.Warnf("no browser profile found for '%s', using the default browser", identifier)
		return ""
	}
	logrus.Debugf("browser profile '%s' matches '%s'", profile, identifier)
	return profile
}
