package browser_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/BerryBytes/aws-sso-wrapper/internal/browser"
	mock_ssowrapper "github.com/BerryBytes/aws-sso-wrapper/tests/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLaunchCommand(t *testing.T) {
	url := "https://device.sso.eu-west-1.amazonaws.com/"

	name, args := browser.LaunchCommand("darwin", "Google Chrome", "Profile 1", url)
	assert.Equal(t, "open", name)
	assert.Equal(t, []string{"-na", "Google Chrome", "--args", "--profile-directory=Profile 1", url}, args)

	name, args = browser.LaunchCommand("linux", "google-chrome", "Default", url)
	assert.Equal(t, "google-chrome", name)
	assert.Equal(t, []string{"--profile-directory=Default", url}, args)
}

func TestLauncherOpen(t *testing.T) {
	ctx := context.Background()
	url := "https://example.awsapps.com/start"

	t.Run("runs browser with discrete arguments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockExecutor := mock_ssowrapper.NewMockCommandExecutor(ctrl)

		mockExecutor.EXPECT().LookPath("open").Return("/usr/bin/open", nil)
		mockExecutor.EXPECT().RunInteractiveCommand(ctx, "open", "-na", "Google Chrome", "--args", "--profile-directory=Profile 1", url).Return(nil)

		launcher := browser.NewLauncher(mockExecutor, "darwin", "Google Chrome")
		assert.NoError(t, launcher.Open(ctx, "Profile 1", url))
	})

	t.Run("browser exit status is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockExecutor := mock_ssowrapper.NewMockCommandExecutor(ctrl)

		exitErr := exec.Command("sh", "-c", "exit 2").Run()
		mockExecutor.EXPECT().LookPath("google-chrome").Return("/usr/bin/google-chrome", nil)
		mockExecutor.EXPECT().RunInteractiveCommand(ctx, "google-chrome", "--profile-directory=Default", url).Return(exitErr)

		launcher := browser.NewLauncher(mockExecutor, "linux", "google-chrome")
		assert.NoError(t, launcher.Open(ctx, "Default", url))
	})

	t.Run("launch failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockExecutor := mock_ssowrapper.NewMockCommandExecutor(ctrl)

		mockExecutor.EXPECT().LookPath("google-chrome").Return("/usr/bin/google-chrome", nil)
		mockExecutor.EXPECT().RunInteractiveCommand(ctx, "google-chrome", "--profile-directory=Default", url).Return(errors.New("permission denied"))

		launcher := browser.NewLauncher(mockExecutor, "linux", "google-chrome")
		err := launcher.Open(ctx, "Default", url)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to launch google-chrome")
	})

	t.Run("falls back to default browser", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockExecutor := mock_ssowrapper.NewMockCommandExecutor(ctrl)

		mockExecutor.EXPECT().LookPath("google-chrome").Return("", exec.ErrNotFound)

		var opened string
		launcher := browser.NewLauncher(mockExecutor, "linux", "google-chrome")
		launcher.OpenURL = func(u string) error {
			opened = u
			return nil
		}

		assert.NoError(t, launcher.Open(ctx, "Default", url))
		assert.Equal(t, url, opened)
	})

	t.Run("fallback failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockExecutor := mock_ssowrapper.NewMockCommandExecutor(ctrl)

		mockExecutor.EXPECT().LookPath("google-chrome").Return("", exec.ErrNotFound)

		launcher := browser.NewLauncher(mockExecutor, "linux", "google-chrome")
		launcher.OpenURL = func(string) error { return errors.New("no display") }

		err := launcher.Open(ctx, "Default", url)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open browser")
	})
}
