package browser_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/BerryBytes/aws-sso-wrapper/internal/browser"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHook(t *testing.T) {
	fs := afero.NewMemMapFs()

	hook, err := browser.NewHook(fs, "/tmp", "/usr/local/bin/aws-sso-wrapper", "Profile 1")
	require.NoError(t, err)

	path := hook.Path()
	assert.True(t, strings.HasPrefix(filepath.Base(path), "open-in-profile-"))
	assert.True(t, strings.HasSuffix(path, ".sh"))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, browser.HookScript("/usr/local/bin/aws-sso-wrapper", "Profile 1"), string(content))

	require.NoError(t, hook.Close())
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, hook.Close(), "second close is a no-op")
}

func TestHookCloseAfterExternalRemoval(t *testing.T) {
	fs := afero.NewMemMapFs()
	hook, err := browser.NewHook(fs, "/tmp", "/bin/wrapper", "Default")
	require.NoError(t, err)

	require.NoError(t, fs.Remove(hook.Path()))
	assert.NoError(t, hook.Close())
}

func TestNewHookReadOnlyFs(t *testing.T) {
	_, err := browser.NewHook(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/tmp", "/bin/wrapper", "Default")
	assert.Error(t, err)
}

func TestHookScriptKeepsProfileOutOfShell(t *testing.T) {
	profile := `Profile 1"; rm -rf ~ ; echo '$(id)`
	script := browser.HookScript("/opt/it's here/wrapper", profile)

	assert.NotContains(t, script, profile)
	assert.NotContains(t, script, "rm -rf")
	assert.Contains(t, script, browser.EncodeProfile(profile))
	assert.Contains(t, script, `'/opt/it'\''s here/wrapper'`)
	assert.True(t, strings.HasPrefix(script, "#!/bin/sh\n"))
	assert.Contains(t, script, `"$1"`)

	decoded, err := browser.DecodeProfile(browser.EncodeProfile(profile))
	require.NoError(t, err)
	assert.Equal(t, profile, decoded)
}

func TestDecodeProfileInvalid(t *testing.T) {
	_, err := browser.DecodeProfile("not-hex")
	assert.Error(t, err)
}

func TestHookScriptExecution(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	dir := t.TempDir()

	// Stand-in for the wrapper binary that records its arguments.
	recorder := filepath.Join(dir, "recorder")
	output := filepath.Join(dir, "args")
	require.NoError(t, os.WriteFile(recorder, []byte("#!/bin/sh\nprintf '%s\\n' \"$@\" > '"+output+"'\n"), 0o700))

	hook, err := browser.NewHook(afero.NewOsFs(), dir, recorder, "Profile 1")
	require.NoError(t, err)
	defer hook.Close()

	url := "https://device.sso.us-east-1.amazonaws.com/?user_code=ABCD-EFGH&x=$(id)"
	require.NoError(t, exec.Command(hook.Path(), url).Run())

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		browser.HookCommand,
		browser.HookProfileArg,
		browser.EncodeProfile("Profile 1"),
		url,
	}, "\n")+"\n", string(got))

	err = exec.Command(hook.Path()).Run()
	assert.Error(t, err, "hook without a URL exits non-zero")
}
