// Package config loads charsheet settings from an optional YAML file, the
// environment (CHARSHEET_*) and command-line flags, plus the TOML secrets
// file that carries the template-storage credentials.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Keys understood by Load.
const (
	KeyUserAgent       = "user_agent"
	KeyTimeout         = "timeout"
	KeyTemplate        = "template"
	KeyTemplateDir     = "template_dir"
	KeySecretsFile     = "secrets_file"
	KeyCredentialsFile = "credentials_file"
	KeyOutputDir       = "output_dir"
	KeyListen          = "listen"
	KeySearchURL       = "search_url"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "CHARSHEET"

type Config struct {
	UserAgent string
	Timeout   time.Duration

	// Template is the default template id or share link.
	Template    string
	TemplateDir string

	// Remote template storage
	SecretsFile     string
	CredentialsFile string

	OutputDir string
	Listen    string
	SearchURL string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyUserAgent, "Mozilla/5.0")
	v.SetDefault(KeyTimeout, 30*time.Second)
	v.SetDefault(KeyTemplateDir, "templates")
	v.SetDefault(KeySecretsFile, "secrets.toml")
	v.SetDefault(KeyListen, ":8080")
}

// Init points v at the config file and the environment. cfgFile overrides
// the search for charsheet.yaml in "." and ~/.config/charsheet. A missing
// config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("charsheet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "charsheet"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load reads the resolved settings from v.
func Load(v *viper.Viper) Config {
	return Config{
		UserAgent:       v.GetString(KeyUserAgent),
		Timeout:         v.GetDuration(KeyTimeout),
		Template:        v.GetString(KeyTemplate),
		TemplateDir:     v.GetString(KeyTemplateDir),
		SecretsFile:     v.GetString(KeySecretsFile),
		CredentialsFile: v.GetString(KeyCredentialsFile),
		OutputDir:       v.GetString(KeyOutputDir),
		Listen:          v.GetString(KeyListen),
		SearchURL:       v.GetString(KeySearchURL),
	}
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyTimeout, c.Timeout)
	}
	if c.Listen == "" {
		return fmt.Errorf("%s is required", KeyListen)
	}
	return nil
}

// Secrets holds the contents of the TOML secrets file.
type Secrets struct {
	// ServiceAccountJSON is the [gcp_service_account] table re-encoded as
	// a credentials JSON document, or nil when the table is absent.
	ServiceAccountJSON []byte
	// FandomTemplate is [app_config] fandom_template.
	FandomTemplate string
}

// LoadSecrets reads the TOML secrets file at path. A missing file yields
// empty Secrets.
func LoadSecrets(path string) (*Secrets, error) {
	s := &Secrets{}
	if path == "" {
		return s, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading secrets %s: %w", path, err)
	}

	if account := v.GetStringMap("gcp_service_account"); len(account) > 0 {
		data, err := json.Marshal(account)
		if err != nil {
			return nil, fmt.Errorf("encoding service account: %w", err)
		}
		s.ServiceAccountJSON = data
	}
	s.FandomTemplate = v.GetString("app_config.fandom_template")
	return s, nil
}

// ServiceAccount returns the credentials JSON to use for remote template
// storage: the credentials file when configured, otherwise the secrets
// table. It returns nil when neither is available.
func (c Config) ServiceAccount(secrets *Secrets) ([]byte, error) {
	if c.CredentialsFile != "" {
		data, err := os.ReadFile(c.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("reading credentials: %w", err)
		}
		return data, nil
	}
	if secrets != nil {
		return secrets.ServiceAccountJSON, nil
	}
	return nil, nil
}

// DefaultTemplate returns the configured template, falling back to the
// secrets file.
func (c Config) DefaultTemplate(secrets *Secrets) string {
	if c.Template != "" {
		return c.Template
	}
	if secrets != nil {
		return secrets.FandomTemplate
	}
	return ""
}
