package openbrowser

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerryBytes/aws-sso-wrapper/internal/browser"
	"github.com/spf13/cobra"
)

type URLOpener interface {
	Open(ctx context.Context, profile, url string) error
}

// NewOpenBrowserCmd is the target of the BROWSER hook written during login.
// It is hidden because only the hook calls it.
func NewOpenBrowserCmd(opener URLOpener) *cobra.Command {
	var profileHex string

	cmd := &cobra.Command{
		Use:          browser.HookCommand + " URL",
		Short:        "Open a URL in a browser profile",
		Hidden:       true,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := browser.DecodeProfile(profileHex)
			if err != nil {
				return err
			}
			if profile == "" {
				return fmt.Errorf("browser profile is required")
			}
			return opener.Open(cmd.Context(), profile, args[0])
		},
	}

	cmd.Flags().StringVar(&profileHex, strings.TrimPrefix(browser.HookProfileArg, "--"), "", "Hex encoded browser profile directory name")

	return cmd
}
