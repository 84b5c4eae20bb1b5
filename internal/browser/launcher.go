package browser

import (
	"context"
	"fmt"

	"github.com/BerryBytes/aws-sso-wrapper/utils/common"
	pkgbrowser "github.com/pkg/browser"
	"github.com/sirupsen/logrus"
)

// LaunchCommand builds the argv that opens url in the given browser profile.
// Every value is its own argument; nothing passes through a shell.
func LaunchCommand(goos, app, profile, url string) (string, []string) {
	profileFlag := "--profile-directory=" + profile

	if goos == "darwin" {
		return "open", []string{"-na", app, "--args", profileFlag, url}
	}
	return app, []string{profileFlag, url}
}

// Launcher opens URLs in a specific browser profile.
type Launcher struct {
	Executor common.CommandExecutor
	OS       string
	App      string
	OpenURL  func(url string) error
}

func NewLauncher(executor common.CommandExecutor, goos, app string) *Launcher {
	return &Launcher{
		Executor: executor,
		OS:       goos,
		App:      app,
		OpenURL:  pkgbrowser.OpenURL,
	}
}

// Open runs the browser for url. If the browser is not installed the URL is
// handed to the system default browser instead. The browser's own exit
// status is not treated as a failure.
func (l *Launcher) Open(ctx context.Context, profile, url string) error {
	name, args := LaunchCommand(l.OS, l.App, profile, url)

	if _, err := l.Executor.LookPath(name); err != nil {
		logrus.Warnf("%s not found, opening %s in the default browser", name, url)
		if err := l.OpenURL(url); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		return nil
	}

	logrus.Debugf("opening %s in browser profile %q", url, profile)
	if err := l.Executor.RunInteractiveCommand(ctx, name, args...); err != nil {
		if code, ok := common.ExitCode(err); ok {
			logrus.Debugf("%s exited with status %d", name, code)
			return nil
		}
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}
