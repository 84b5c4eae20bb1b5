package browser_test

import (
	"path/filepath"
	"testing"

	"github.com/BerryBytes/aws-sso-wrapper/internal/browser"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileRoot = "/home/u/Library/Application Support/Google/Chrome"

func newResolver(t *testing.T, profiles map[string]string) *browser.ProfileResolver {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(profileRoot, 0700))
	for dir, prefs := range profiles {
		require.NoError(t, fs.MkdirAll(filepath.Join(profileRoot, dir), 0700))
		if prefs != "" {
			require.NoError(t, afero.WriteFile(fs, filepath.Join(profileRoot, dir, "Preferences"), []byte(prefs), 0600))
		}
	}
	return browser.NewProfileResolver(fs, profileRoot)
}

func TestFindProfile(t *testing.T) {
	tests := []struct {
		name       string
		profiles   map[string]string
		identifier string
		want       string
		found      bool
	}{
		{
			name: "domain matches account email",
			profiles: map[string]string{
				"Profile 1": `{"account_info": [{"email": "alice@example.com"}]}`,
			},
			identifier: "example.com",
			want:       "Profile 1",
			found:      true,
		},
		{
			name: "full address matches username field",
			profiles: map[string]string{
				"Default": `{"signin": {"username": "bob@example.com"}}`,
			},
			identifier: "bob@example.com",
			want:       "Default",
			found:      true,
		},
		{
			name: "last username field",
			profiles: map[string]string{
				"Profile 3": `{"signin": {"last_username": "carol@corp.test"}}`,
			},
			identifier: "corp.test",
			want:       "Profile 3",
			found:      true,
		},
		{
			name: "second account in list",
			profiles: map[string]string{
				"Profile 2": `{"account_info": [{"email": "me@gmail.com"}, {"email": "me@work.io"}]}`,
			},
			identifier: "work.io",
			want:       "Profile 2",
			found:      true,
		},
		{
			name: "substring match is preserved",
			profiles: map[string]string{
				"Profile 4": `{"account_info": [{"email": "alice@company.com"}]}`,
			},
			identifier: "co",
			want:       "Profile 4",
			found:      true,
		},
		{
			name: "no match",
			profiles: map[string]string{
				"Default":   `{"account_info": [{"email": "alice@example.com"}], "signin": {"username": "alice@example.com"}}`,
				"Profile 1": `{}`,
			},
			identifier: "other.org",
			found:      false,
		},
		{
			name: "malformed and missing preferences are skipped",
			profiles: map[string]string{
				"Broken":    `{"account_info": `,
				"WrongType": `{"account_info": "alice@example.com"}`,
				"Empty":     "",
				"Profile 9": `{"account_info": [{"email": "alice@example.com"}]}`,
			},
			identifier: "example.com",
			want:       "Profile 9",
			found:      true,
		},
		{
			name: "empty email never matches",
			profiles: map[string]string{
				"Default": `{"account_info": [{"email": ""}], "signin": {"username": ""}}`,
			},
			identifier: "example.com",
			found:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := newResolver(t, tt.profiles)
			got, found := resolver.FindProfile(tt.identifier)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindProfileReturnsOneOfSeveralMatches(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"Profile 1": `{"account_info": [{"email": "a@example.com"}]}`,
		"Profile 2": `{"account_info": [{"email": "b@example.com"}]}`,
	})

	got, found := resolver.FindProfile("example.com")
	assert.True(t, found)
	assert.Contains(t, []string{"Profile 1", "Profile 2"}, got)
}

func TestFindProfileMissingRoot(t *testing.T) {
	resolver := browser.NewProfileResolver(afero.NewMemMapFs(), "/nowhere")
	got, found := resolver.FindProfile("example.com")
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestFindProfileIgnoresFilesInRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join(profileRoot, "Local State"),
		[]byte(`{"account_info": [{"email": "alice@example.com"}]}`), 0600))

	got, found := browser.NewProfileResolver(fs, profileRoot).FindProfile("example.com")
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestFindProfileEmptyIdentifier(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"Default": `{"account_info": [{"email": "alice@example.com"}]}`,
	})
	_, found := resolver.FindProfile("")
	assert.False(t, found)
}
