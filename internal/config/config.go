package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vit0-9/utm_builder/pkg/utils"
	"github.com/vit0-9/utm_builder/pkg/utils/builder"
	"github.com/vit0-9/utm_builder/pkg/utils/settings"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Port            string
	DatabasePath    string
	SettingsKey     string
	RequireCampaign bool
	StatusTTL       time.Duration
	Mode            string
	LogLevel        string
}

const (
	envPort            = "PORT"
	envDatabasePath    = "UTM_DB_PATH"
	envSettingsKey     = "UTM_SETTINGS_KEY"
	envRequireCampaign = "UTM_REQUIRE_CAMPAIGN"
	envStatusTTL       = "UTM_STATUS_TTL"
	envMode            = "MODE"
	envLogLevel        = "LOG_LEVEL"
)

// Load reads the configuration, applying defaults for unset variables.
func Load() (Config, error) {
	cfg := Config{
		Port:        getenv(envPort, "8080"),
		SettingsKey: getenv(envSettingsKey, settings.DefaultKey),
		StatusTTL:   builder.DefaultStatusTTL,
		Mode:        os.Getenv(envMode),
		LogLevel:    getenv(envLogLevel, "info"),
	}

	cfg.DatabasePath = os.Getenv(envDatabasePath)
	if cfg.DatabasePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.DatabasePath = filepath.Join(home, ".utm-builder.db")
	}

	if v := os.Getenv(envRequireCampaign); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envRequireCampaign, err)
		}
		cfg.RequireCampaign = b
	}

	if v := os.Getenv(envStatusTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", envStatusTTL, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %s", envStatusTTL, v)
		}
		cfg.StatusTTL = d
	}

	return cfg, nil
}

// RequiredTags returns the readiness policy selected by the configuration.
func (c Config) RequiredTags() utils.RequiredTags {
	if c.RequireCampaign {
		return utils.RequiredTagsWithCampaign
	}
	return utils.RequiredTagsDefault
}

// Production reports whether MODE=production.
func (c Config) Production() bool {
	return c.Mode == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
