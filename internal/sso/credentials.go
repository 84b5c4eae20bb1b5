package sso

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BerryBytes/aws-sso-wrapper/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// CredentialsValidator reports whether a usable SSO session is cached.
type CredentialsValidator interface {
	HasValidCredentials() bool
}

// CacheCredentialsChecker scans the AWS CLI SSO cache directory. It only
// reads; files that cannot be read or decoded are skipped.
type CacheCredentialsChecker struct {
	Fs       afero.Fs
	CacheDir string
	Now      func() time.Time
}

func NewCacheCredentialsChecker(fs afero.Fs, cacheDir string) *CacheCredentialsChecker {
	return &CacheCredentialsChecker{
		Fs:       fs,
		CacheDir: cacheDir,
		Now:      time.Now,
	}
}

func (c *CacheCredentialsChecker) HasValidCredentials() bool {
	exists, err := afero.DirExists(c.Fs, c.CacheDir)
	if err != nil || !exists {
		logrus.Debugf("SSO cache directory %s not found", c.CacheDir)
		return false
	}

	files, err := afero.ReadDir(c.Fs, c.CacheDir)
	if err != nil {
		logrus.Debugf("failed to read SSO cache directory: %v", err)
		return false
	}

	now := c.now().UTC()
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}
		cacheFile := filepath.Join(c.CacheDir, file.Name())

		data, err := afero.ReadFile(c.Fs, cacheFile)
		if err != nil {
			logrus.Debugf("skipping %s: %v", cacheFile, err)
			continue
		}

		record, err := DecodeCacheRecord(data)
		if err != nil {
			logrus.Debugf("skipping %s: %v", cacheFile, err)
			continue
		}

		if isRecordValid(record, now) {
			logrus.Debugf("valid SSO credentials found in %s", cacheFile)
			return true
		}
	}

	return false
}

func (c *CacheCredentialsChecker) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// isRecordValid checks the token expiry first, then the role credentials.
func isRecordValid(record models.CachedCredentialRecord, now time.Time) bool {
	switch record.Kind() {
	case models.RecordToken:
		return isFresh(record.Token.ExpiresAt, now)
	case models.RecordRoleCredentials:
		return isFresh(record.Credentials.Credentials.Expiration, now)
	case models.RecordTokenAndRoleCredentials:
		return isFresh(record.Token.ExpiresAt, now) ||
			isFresh(record.Credentials.Credentials.Expiration, now)
	default:
		return false
	}
}

func isFresh(expiry string, now time.Time) bool {
	if expiry == "" {
		return false
	}
	expiresAt, err := ParseExpiry(expiry)
	if err != nil {
		logrus.Debugf("ignoring unparsable expiry %q: %v", expiry, err)
		return false
	}
	return expiresAt.After(now)
}

// DecodeCacheRecord picks out the token and role-credential shapes of a cache
// file. A shape whose fields have the wrong type is treated as absent rather
// than failing the whole record.
func DecodeCacheRecord(data []byte) (models.CachedCredentialRecord, error) {
	var record models.CachedCredentialRecord

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return record, fmt.Errorf("failed to parse cache JSON: %w", err)
	}

	if _, ok := raw["accessToken"]; ok {
		var token models.TokenRecord
		if err := json.Unmarshal(data, &token); err == nil {
			record.Token = &token
		}
	}

	if _, ok := raw["Credentials"]; ok {
		var creds models.RoleCredentialRecord
		if err := json.Unmarshal(data, &creds); err == nil {
			record.Credentials = &creds
		}
	}

	return record, nil
}

var expiryLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseExpiry parses the expiry timestamps found in the cache. Trailing "Z"
// and "UTC" markers are dropped and a timestamp without an offset is taken
// to be UTC.
func ParseExpiry(value string) (time.Time, error) {
	normalized := strings.TrimSpace(value)
	normalized = strings.TrimSuffix(normalized, "Z")
	normalized = strings.TrimSuffix(normalized, "UTC")

	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid expiration time: %q", value)
}
