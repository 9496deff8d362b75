package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds settings shared by every command. Values come from flags,
// WIDGETKIT_* environment variables and config.yaml, in that order.
type Config struct {
	LogLevel        string        `mapstructure:"log_level"`
	Color           bool          `mapstructure:"color"`
	Format          string        `mapstructure:"format"`
	SocketPath      string        `mapstructure:"socket_path"`
	HTTPAddr        string        `mapstructure:"http_addr"`
	BatchWorkers    int           `mapstructure:"batch_workers"`
	TickInterval    time.Duration `mapstructure:"tick_interval"`
	Debounce        time.Duration `mapstructure:"debounce"`
	PrefsFile       string        `mapstructure:"prefs_file"`
	WorldClockZones []string      `mapstructure:"world_clock_zones"`
}

const envPrefix = "WIDGETKIT"

// defaultSocketPath places the socket in the runtime dir.
func defaultSocketPath() string {
	return filepath.Join(xdg.RuntimeDir, appName+".sock")
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("color", true)
	v.SetDefault("format", FormatText)
	v.SetDefault("socket_path", defaultSocketPath())
	v.SetDefault("http_addr", "127.0.0.1:8420")
	v.SetDefault("batch_workers", 4)
	v.SetDefault("tick_interval", 100*time.Millisecond)
	v.SetDefault("debounce", 100*time.Millisecond)
	v.SetDefault("prefs_file", "")
	v.SetDefault("world_clock_zones", strings.Split(defaultWorldClockZones, ","))
}

// loadConfig reads configuration into v. An explicit path must exist; the
// default config.yaml under the xdg config dir is optional.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	setConfigDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Format {
	case FormatText, FormatTable, FormatJSON:
	default:
		return newError(ErrCodeInvalidInput, "format must be text, table or json, got %q", c.Format)
	}
	if c.BatchWorkers < 1 {
		return newError(ErrCodeOutOfRange, "batch_workers must be at least 1, got %d", c.BatchWorkers)
	}
	if c.TickInterval <= 0 {
		return newError(ErrCodeOutOfRange, "tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.Debounce < 0 {
		return newError(ErrCodeOutOfRange, "debounce must not be negative, got %s", c.Debounce)
	}
	return nil
}

// preferences opens the preference store the config points at.
func (c Config) preferences() *FilePreferences {
	return NewFilePreferences(c.PrefsFile)
}
