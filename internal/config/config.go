package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BerryBytes/aws-sso-wrapper/models"
	"github.com/BerryBytes/aws-sso-wrapper/utils/common"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	EnvAWSProfile        = "AWS_PROFILE"
	EnvAWSConfigFile     = "AWS_CONFIG_FILE"
	EnvSSOCachePath      = "AWS_SSO_CACHE_PATH"
	EnvCLICacheDir       = "AWS_CLI_CACHE_DIR"
	EnvProfileIdentifier = "CHROME_PROFILE_IDENTIFIER"
	EnvProfileRoot       = "CHROME_PROFILE_ROOT"
	EnvSettingsDir       = "AWS_SSO_WRAPPER_CONFIG_DIR"
	EnvDebug             = "AWS_SSO_WRAPPER_DEBUG"

	DefaultAWSProfile = "default"
	DefaultAuthTool   = "aws"
)

var ErrNoConfigFile = errors.New("no config file found")

// Config is everything the wrapper reads from its surroundings, resolved once
// at startup.
type Config struct {
	AWSProfile         string
	AWSConfigFile      string
	SSOCacheDir        string
	ProfileIdentifier  string
	BrowserProfileRoot string
	BrowserApp         string
	AuthTool           string
	SettingsDir        string
	OS                 string
	Debug              bool
}

// Environment is the process state Load resolves a Config from.
type Environment struct {
	LookupEnv func(string) (string, bool)
	HomeDir   string
	OS        string
}

func NewConfig() (*Config, error) {
	return NewConfigWithDetector(common.RuntimeOSDetector{})
}

func NewConfigWithDetector(osDetector common.OSDetector) (*Config, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	return Load(afero.NewOsFs(), Environment{
		LookupEnv: os.LookupEnv,
		HomeDir:   userHome,
		OS:        osDetector.GetOS(),
	})
}

func Load(fs afero.Fs, env Environment) (*Config, error) {
	getEnv := func(key, fallback string) string {
		if value, exists := env.LookupEnv(key); exists && value != "" {
			return value
		}
		return fallback
	}

	cfg := &Config{
		AWSProfile:        getEnv(EnvAWSProfile, DefaultAWSProfile),
		AWSConfigFile:     getEnv(EnvAWSConfigFile, awsconfig.DefaultSharedConfigFilename()),
		SSOCacheDir:       ssoCacheDir(getEnv, env.HomeDir),
		ProfileIdentifier: getEnv(EnvProfileIdentifier, ""),
		SettingsDir:       getEnv(EnvSettingsDir, filepath.Join(env.HomeDir, ".config", "aws-sso-wrapper")),
		OS:                env.OS,
		Debug:             parseBool(getEnv(EnvDebug, "")),
	}

	settings, err := loadSettingsFile(fs, cfg.SettingsDir)
	if err != nil {
		if !errors.Is(err, ErrNoConfigFile) {
			return nil, err
		}
		settings = &models.Settings{}
	}

	cfg.AuthTool = firstNonEmpty(settings.AuthTool, DefaultAuthTool)
	cfg.BrowserApp = firstNonEmpty(settings.Browser.App, defaultBrowserApp(env.OS))
	cfg.BrowserProfileRoot = firstNonEmpty(
		getEnv(EnvProfileRoot, ""),
		settings.Browser.ProfileRoot,
		defaultProfileRoot(env.OS, env.HomeDir, getEnv),
	)

	return cfg, nil
}

// ssoCacheDir mirrors where the AWS CLI keeps its SSO cache.
func ssoCacheDir(getEnv func(string, string) string, homeDir string) string {
	if path := getEnv(EnvSSOCachePath, ""); path != "" {
		return filepath.Join(path, "cache")
	}
	if dir := getEnv(EnvCLICacheDir, ""); dir != "" {
		return filepath.Join(dir, "sso", "cache")
	}
	return filepath.Join(homeDir, ".aws", "sso", "cache")
}

func defaultBrowserApp(goos string) string {
	switch goos {
	case "darwin":
		return "Google Chrome"
	case "windows":
		return "chrome.exe"
	default:
		return "google-chrome"
	}
}

func defaultProfileRoot(goos, homeDir string, getEnv func(string, string) string) string {
	switch goos {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "Google", "Chrome")
	case "windows":
		localAppData := getEnv("LOCALAPPDATA", filepath.Join(homeDir, "AppData", "Local"))
		return filepath.Join(localAppData, "Google", "Chrome", "User Data")
	default:
		return filepath.Join(homeDir, ".config", "google-chrome")
	}
}

func loadSettingsFile(fs afero.Fs, dir string) (*models.Settings, error) {
	path, err := FindConfigFile(fs, dir)
	if err != nil {
		return nil, err
	}

	fileData, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings models.Settings
	if err := yaml.Unmarshal(fileData, &settings); err != nil {
		if err := json.Unmarshal(fileData, &settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	return &settings, nil
}

func FindConfigFile(fs afero.Fs, dir string) (string, error) {
	extensions := []string{"config.yml", "config.yaml", "config.json"}

	if _, err := fs.Stat(dir); os.IsNotExist(err) {
		return "", ErrNoConfigFile
	} else if err != nil {
		return "", fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}

	for _, ext := range extensions {
		possiblePath := filepath.Join(dir, ext)
		if _, err := fs.Stat(possiblePath); err == nil {
			return possiblePath, nil
		}
	}

	return "", ErrNoConfigFile
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	return err == nil && b
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
