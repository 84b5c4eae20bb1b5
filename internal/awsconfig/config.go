package awsconfig

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	profilePrefix = "profile "
	ssoKeyPrefix  = "sso_"

	StartURLKey = "sso_start_url"
	RegionKey   = "sso_region"
)

// SSOConfig holds the sso_* keys of one section of the AWS config file.
type SSOConfig map[string]string

func (c SSOConfig) StartURL() string {
	return c[StartURLKey]
}

func (c SSOConfig) Region() string {
	return c[RegionKey]
}

// SectionName maps a config file header to the profile it configures, so
// both [default] and [profile work] resolve to their bare names.
func SectionName(header string) string {
	return strings.TrimPrefix(header, profilePrefix)
}

var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreContinuation:      true,
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
	SkipUnrecognizableLines: true,
}

// ReadSSOConfig returns the sso_* settings of profile from the config file at
// filename. A missing file yields an empty config. Values are returned as
// written, without validation, and lines that are neither a header nor a
// key = value pair are skipped.
func ReadSSOConfig(fs afero.Fs, filename, profile string) (SSOConfig, error) {
	cfg := SSOConfig{}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	file, err := ini.LoadSources(loadOptions, normalize(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	// An empty name would resolve to ini's implicit default section.
	if profile == "" {
		return cfg, nil
	}
	section, err := file.GetSection(profile)
	if err != nil {
		return cfg, nil
	}
	for _, key := range section.Keys() {
		cfg[key.Name()] = key.Value()
	}

	return cfg, nil
}

// normalize rewrites the config file into lines ini always accepts. A header
// is a trimmed line wrapped in brackets and is renamed to its profile, so
// [work] and [profile work] land in one section with later keys winning. Only
// sso_* pairs inside a named section are kept, and each value is backquoted
// so ini hands it back verbatim. Everything else is dropped.
func normalize(data []byte) []byte {
	var out bytes.Buffer
	inSection := false

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") && len(line) >= 2 {
			name := SectionName(line[1 : len(line)-1])
			// Keys under [] or [profile ] belong to no profile.
			inSection = name != ""
			if inSection {
				fmt.Fprintf(&out, "[%s]\n", name)
			}
			continue
		}

		if !inSection {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, ssoKeyPrefix) {
			continue
		}
		fmt.Fprintf(&out, "%s = `%s`\n", key, strings.TrimSpace(value))
	}

	return out.Bytes()
}
