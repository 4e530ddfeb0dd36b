package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the client configuration
type Config struct {
	Backend struct {
		BaseURL        string  `koanf:"base_url"`
		TimeoutSeconds int     `koanf:"timeout_seconds"`
		RateLimit      float64 `koanf:"rate_limit"`
		RateBurst      int     `koanf:"rate_burst"`
	} `koanf:"backend"`

	Listing struct {
		PageSize int `koanf:"page_size"`
	} `koanf:"listing"`

	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

// LoadConfig loads the configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Set up default configuration
	k.Load(confmap.Provider(map[string]interface{}{
		"backend.base_url":        "http://localhost:8080/api",
		"backend.timeout_seconds": 30,
		"backend.rate_limit":      10.0,
		"backend.rate_burst":      5,
		"listing.page_size":       10,
		"log.level":               "info",
	}, "."), nil)

	// Load from TOML file if it exists
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		// Try to load from default locations
		defaultPaths := []string{"./toolair.toml", "$HOME/.toolair.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Load from environment variables with prefix TOOLAIR_. The section and
	// the key are separated by the first underscore; the key keeps its own
	// underscores, so TOOLAIR_BACKEND_BASE_URL maps to backend.base_url.
	k.Load(env.Provider("TOOLAIR_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "TOOLAIR_"))
		return strings.Replace(s, "_", ".", 1)
	}), nil)

	// Unmarshal into Config struct
	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sampleConfig := `# ToolAir client configuration

[backend]
base_url = "http://localhost:8080/api"
timeout_seconds = 30
rate_limit = 10.0
rate_burst = 5

[listing]
page_size = 10

[log]
level = "info"
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.Backend.BaseURL == "" {
		return fmt.Errorf("backend base_url is required")
	}
	if config.Backend.TimeoutSeconds <= 0 {
		return fmt.Errorf("backend timeout_seconds must be positive")
	}
	if config.Listing.PageSize <= 0 {
		return fmt.Errorf("listing page_size must be positive")
	}
	return nil
}
