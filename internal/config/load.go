package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. QUICKCACHE_STORAGE_DRIVER.
const EnvPrefix = "QUICKCACHE"

// defaults lists every key Load knows about. Registering a default for each
// key also makes viper consult the environment for it during Unmarshal.
var defaults = map[string]any{
	"app.log_level":        "info",
	"app.log_format":       "text",
	"app.prefs_file":       "preferences.json",
	"storage.driver":       DriverJSON,
	"storage.data_file":    "data/quickcache.json",
	"storage.sqlite_path":  "data/quickcache.db",
	"storage.database_url": "",
	"storage.export_dir":   "data",
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// When configFile is empty, quickcache.yaml in the working directory is used
// if it exists. Returns a populated Config or an error if loading or
// validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("quickcache")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
