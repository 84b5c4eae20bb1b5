package browser

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

const (
	// HookCommand is the hidden subcommand the hook script re-executes.
	HookCommand    = "open-browser"
	HookProfileArg = "--profile-hex"

	hookPattern = "open-in-profile-*.sh"
)

// Hook is a temporary executable suitable for the BROWSER variable. It
// forwards the URL it is called with back to this program's open-browser
// command for one browser profile. Close deletes it.
type Hook struct {
	fs   afero.Fs
	path string
}

// HookSupported reports whether the hook script can be executed on goos.
func HookSupported(goos string) bool {
	return goos != "windows"
}

// NewHook writes the hook script into dir (the system temp dir when empty),
// readable and executable by the owner only.
func NewHook(fs afero.Fs, dir, executable, profile string) (*Hook, error) {
	f, err := afero.TempFile(fs, dir, hookPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser hook: %w", err)
	}
	hook := &Hook{fs: fs, path: f.Name()}

	_, err = f.WriteString(HookScript(executable, profile))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = fs.Chmod(hook.path, 0o700)
	}
	if err != nil {
		_ = hook.Close()
		return nil, fmt.Errorf("failed to write browser hook: %w", err)
	}

	return hook, nil
}

func (h *Hook) Path() string {
	return h.path
}

// Close removes the hook script. It is safe to call more than once.
func (h *Hook) Close() error {
	if h == nil || h.path == "" {
		return nil
	}
	path := h.path
	h.path = ""
	if err := h.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove browser hook %s: %w", path, err)
	}
	return nil
}

// HookScript renders the hook body. The profile name is hex encoded so only
// [0-9a-f] reaches the script, and the URL is forwarded as "$1".
func HookScript(executable, profile string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("[ \"$#\" -ge 1 ] || exit 1\n")
	fmt.Fprintf(&b, "exec %s %s %s %s \"$1\"\n",
		shellQuote(executable), HookCommand, HookProfileArg, EncodeProfile(profile))
	return b.String()
}

func EncodeProfile(profile string) string {
	return hex.EncodeToString([]byte(profile))
}

func DecodeProfile(encoded string) (string, error) {
	profile, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid profile encoding: %w", err)
	}
	return string(profile), nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
