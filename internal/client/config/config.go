// Package config loads runtime settings for the hacksnooze CLI.
//
// Sources, later overriding earlier: built-in defaults, an optional config
// file (hacksnooze.yaml in the given path or the user config dir), and
// HACKSNOOZE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is the root of the story service's REST API.
	APIBaseURL string `mapstructure:"api_base_url"`
	// HTTPTimeout bounds each individual API request.
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	// SessionFile is where the token/username pair is persisted.
	// Empty means the platform default under the user config dir.
	SessionFile string `mapstructure:"session_file"`
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// ColorMode controls terminal colors: auto, always, never.
	ColorMode string `mapstructure:"color_mode"`
}

// Load reads configuration. path optionally names a directory to search for
// hacksnooze.yaml before the user config dir; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_base_url", "https://hack-or-snooze-api.onrender.com")
	v.SetDefault("http_timeout", 15*time.Second)
	v.SetDefault("session_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("color_mode", "auto")

	v.SetConfigName("hacksnooze")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "hacksnooze"))
	}

	v.SetEnvPrefix("HACKSNOOZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("api_base_url must not be empty")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("http_timeout must be positive, got %s", cfg.HTTPTimeout)
	}
	return &cfg, nil
}
