package browser

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BerryBytes/aws-sso-wrapper/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const preferencesFile = "Preferences"

// ProfileFinder maps an account identifier to a browser profile directory.
type ProfileFinder interface {
	FindProfile(identifier string) (string, bool)
}

// ProfileResolver looks through the profile directories under Root for one
// whose signed-in accounts match an identifier.
type ProfileResolver struct {
	Fs   afero.Fs
	Root string
}

func NewProfileResolver(fs afero.Fs, root string) *ProfileResolver {
	return &ProfileResolver{Fs: fs, Root: root}
}

// FindProfile returns the directory name of the first profile with an
// account matching identifier, which may be a domain ("example.com") or an
// address ("alice@example.com"). Matching is by substring, so "co" also
// matches "alice@company.com". Directory order is not significant.
func (r *ProfileResolver) FindProfile(identifier string) (string, bool) {
	if identifier == "" {
		return "", false
	}

	entries, err := afero.ReadDir(r.Fs, r.Root)
	if err != nil {
		logrus.Debugf("browser profile root %s not readable: %v", r.Root, err)
		return "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		prefs, err := r.readPreferences(entry.Name())
		if err != nil {
			logrus.Debugf("skipping browser profile %q: %v", entry.Name(), err)
			continue
		}

		if preferencesMatch(prefs, identifier) {
			return entry.Name(), true
		}
	}

	return "", false
}

func (r *ProfileResolver) readPreferences(profileDir string) (*models.BrowserPreferences, error) {
	data, err := afero.ReadFile(r.Fs, filepath.Join(r.Root, profileDir, preferencesFile))
	if err != nil {
		return nil, err
	}

	var prefs models.BrowserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func preferencesMatch(prefs *models.BrowserPreferences, identifier string) bool {
	for _, account := range prefs.AccountInfo {
		if identityMatches(account.Email, identifier) {
			return true
		}
	}

	if prefs.Signin != nil {
		for _, username := range []string{prefs.Signin.LastUsername, prefs.Signin.Username} {
			if identityMatches(username, identifier) {
				return true
			}
		}
	}

	return false
}

func identityMatches(identity, identifier string) bool {
	return strings.Contains(identity, identifier) || strings.HasSuffix(identity, "@"+identifier)
}
