package root

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BerryBytes/aws-sso-wrapper/cmd/openbrowser"
	"github.com/BerryBytes/aws-sso-wrapper/internal/browser"
	"github.com/BerryBytes/aws-sso-wrapper/internal/config"
	"github.com/BerryBytes/aws-sso-wrapper/internal/dispatch"
	"github.com/BerryBytes/aws-sso-wrapper/internal/sso"
	"github.com/BerryBytes/aws-sso-wrapper/utils/common"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type Dependencies struct {
	Config   *config.Config
	Fs       afero.Fs
	Executor common.CommandExecutor
	// Login overrides the SSO login step; nil builds it from the other fields.
	Login sso.LoginEnsurer
}

func NewRootCmd(deps Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aws-sso-wrapper [--] command [args...]",
		Short: "Run a command with a valid AWS SSO session",
		Long: `Checks the AWS SSO cache and runs 'aws sso login' when no valid credentials
remain, then runs the given command with its exit status passed through.

Set CHROME_PROFILE_IDENTIFIER to a domain or email address to open the login
page in the matching Chrome profile.`,
		Example:            "  aws-sso-wrapper -- aws sts get-caller-identity",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(commandArgs(args)) == 0 {
				return fmt.Errorf("requires a command to run")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-h" || args[0] == "--help" {
				return cmd.Help()
			}
			return newDispatcher(deps).Run(cmd.Context(), commandArgs(args))
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	launcher := browser.NewLauncher(deps.Executor, deps.Config.OS, deps.Config.BrowserApp)
	rootCmd.AddCommand(openbrowser.NewOpenBrowserCmd(launcher))

	return rootCmd
}

func newDispatcher(deps Dependencies) *dispatch.Dispatcher {
	cfg := deps.Config

	login := deps.Login
	if login == nil {
		credentials := sso.NewCacheCredentialsChecker(deps.Fs, cfg.SSOCacheDir)
		login = sso.NewLoginManager(cfg, deps.Fs, deps.Executor, credentials)
	}
	profiles := browser.NewProfileResolver(deps.Fs, cfg.BrowserProfileRoot)

	return dispatch.NewDispatcher(cfg, profiles, login, deps.Executor)
}

// commandArgs drops the "--" separating the wrapper from the wrapped command.
func commandArgs(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cfg, err := config.NewConfig()
	if err != nil {
		return HandleError(os.Stderr, err)
	}
	configureLogging(os.Stderr, cfg.Debug)

	rootCmd := NewRootCmd(Dependencies{
		Config:   cfg,
		Fs:       afero.NewOsFs(),
		Executor: &common.RealCommandExecutor{},
	})
	return HandleError(os.Stderr, rootCmd.Execute())
}

// HandleError maps a command error to an exit code, reporting anything other
// than a wrapped command's own failure.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var exitErr *dispatch.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(w, "Error:", err)
	return 1
}

func configureLogging(w io.Writer, debug bool) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
