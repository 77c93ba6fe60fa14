package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	Admin    AdminConfig
	Seed     SeedConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// DatabaseConfig holds SQLite settings. The default in-memory path gives the
// transient per-process state the storefront expects.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// AdminConfig holds the back-office session settings
type AdminConfig struct {
	InitialPassword string
	PasswordScheme  string // plain, bcrypt
}

// SeedConfig controls demo data loading on startup
type SeedConfig struct {
	Enabled bool
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SHOP_ prefix (e.g., SHOP_ADMIN_INITIAL_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Admin: AdminConfig{
			InitialPassword: v.GetString("admin.initial_password"),
			PasswordScheme:  v.GetString("admin.password_scheme"),
		},
		Seed: SeedConfig{
			Enabled: !v.IsSet("seed.enabled") || v.GetBool("seed.enabled"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "storefront"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = ":memory:"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Admin.InitialPassword == "" {
		cfg.Admin.InitialPassword = "ca123"
	}
	if cfg.Admin.PasswordScheme == "" {
		cfg.Admin.PasswordScheme = "plain"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Admin.PasswordScheme {
	case "plain", "bcrypt":
	default:
		return fmt.Errorf("admin.password_scheme must be 'plain' or 'bcrypt', got %q", c.Admin.PasswordScheme)
	}
	if c.App.Env == "production" && c.Admin.PasswordScheme == "plain" {
		return fmt.Errorf("admin.password_scheme must be 'bcrypt' in production")
	}
	return nil
}

// DSN returns the SQLite connection string
func (d *DatabaseConfig) DSN() string {
	if d.Path == ":memory:" {
		// Shared cache keeps every connection on the same in-memory database
		return "file::memory:?cache=shared"
	}
	return d.Path
}
