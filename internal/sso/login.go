package sso

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/BerryBytes/aws-sso-wrapper/internal/awsconfig"
	"github.com/BerryBytes/aws-sso-wrapper/internal/browser"
	"github.com/BerryBytes/aws-sso-wrapper/internal/config"
	"github.com/BerryBytes/aws-sso-wrapper/utils/common"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const browserEnvVar = "BROWSER"

var (
	ErrMissingStartURL  = errors.New("no SSO start URL found in AWS config")
	ErrAuthToolNotFound = errors.New("CLI not found")
)

// AuthToolFailedError reports a login command that ran and exited non-zero.
type AuthToolFailedError struct {
	Tool     string
	ExitCode int
}

func (e *AuthToolFailedError) Error() string {
	return fmt.Sprintf("'%s sso login' failed with exit status %d", e.Tool, e.ExitCode)
}

// LoginEnsurer makes sure an SSO session is available, logging in if needed.
type LoginEnsurer interface {
	EnsureLogin(ctx context.Context, browserProfile string) error
}

type LoginManager struct {
	Config      *config.Config
	Fs          afero.Fs
	Executor    common.CommandExecutor
	Credentials CredentialsValidator
	// Executable locates this program for the browser hook to call back into.
	Executable func() (string, error)
	Environ    func() []string
	// HookDir is where browser hooks are written; empty means the temp dir.
	HookDir string
}

func NewLoginManager(cfg *config.Config, fs afero.Fs, executor common.CommandExecutor, credentials CredentialsValidator) *LoginManager {
	return &LoginManager{
		Config:      cfg,
		Fs:          fs,
		Executor:    executor,
		Credentials: credentials,
		Executable:  os.Executable,
		Environ:     os.Environ,
	}
}

// EnsureLogin is a no-op while cached credentials are valid. Otherwise it runs
// `aws sso login` attached to the terminal. When browserProfile is set the
// login page opens in that browser profile.
func (m *LoginManager) EnsureLogin(ctx context.Context, browserProfile string) error {
	if m.Credentials.HasValidCredentials() {
		logrus.Debug("cached SSO credentials are valid, skipping login")
		return nil
	}

	ssoConfig, err := awsconfig.ReadSSOConfig(m.Fs, m.Config.AWSConfigFile, m.Config.AWSProfile)
	if err != nil {
		return fmt.Errorf("failed to read AWS config: %w", err)
	}
	if ssoConfig.StartURL() == "" {
		return fmt.Errorf("%w for profile '%s' in %s", ErrMissingStartURL, m.Config.AWSProfile, m.Config.AWSConfigFile)
	}

	tool := m.Config.AuthTool
	if _, err := m.Executor.LookPath(tool); err != nil {
		return fmt.Errorf("'%s' %w: %v", tool, ErrAuthToolNotFound, err)
	}

	env := m.Environ()
	if browserProfile != "" {
		if !browser.HookSupported(m.Config.OS) {
			logrus.Warnf("opening a specific browser profile is not supported on %s, using the default browser", m.Config.OS)
		} else {
			hook, err := m.newBrowserHook(browserProfile)
			if err != nil {
				return err
			}
			defer func() {
				if err := hook.Close(); err != nil {
					logrus.Warn(err)
				}
			}()
			env = common.SetEnv(env, browserEnvVar, hook.Path())
		}
	}

	if region := ssoConfig.Region(); region != "" {
		logrus.Infof("SSO session for profile '%s' expired, logging in via %s (%s)", m.Config.AWSProfile, ssoConfig.StartURL(), region)
	} else {
		logrus.Infof("SSO session for profile '%s' expired, logging in via %s", m.Config.AWSProfile, ssoConfig.StartURL())
	}

	if err := m.Executor.RunInteractiveCommandWithEnv(ctx, env, tool, "sso", "login"); err != nil {
		if code, ok := common.ExitCode(err); ok {
			return &AuthToolFailedError{Tool: tool, ExitCode: code}
		}
		return fmt.Errorf("error during SSO login: %w", err)
	}

	logrus.Debug("AWS SSO login successful")
	return nil
}

func (m *LoginManager) newBrowserHook(browserProfile string) (*browser.Hook, error) {
	executable, err := m.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable for browser hook: %w", err)
	}

	hook, err := browser.NewHook(m.Fs, m.HookDir, executable, browserProfile)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("opening SSO login in browser profile '%s'", browserProfile)
	return hook, nil
}
