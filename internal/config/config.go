// Package config loads settings from the environment and an optional env file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application settings.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Log     LogConfig
	JWT     JWTConfig
}

// AppConfig is general application metadata.
type AppConfig struct {
	Env  string // development, production
	Name string
	// Fast disables the simulated request latency.
	Fast bool
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr      string
	StaticDir string
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// DBPath is the SQLite file. Empty keeps everything in memory.
	DBPath string
}

// LogConfig configures logging.
type LogConfig struct {
	Level string
}

// JWTConfig configures session tokens.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

const devSecret = "projex-development-secret"

// Load reads PROJEX_* environment variables, falling back to config.env in the
// working directory or ./config when present. The env file lists the same
// settings without the PROJEX_ prefix (ADDR=:9090). A non-empty path names the
// env file explicitly; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROJEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("env")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		_ = v.ReadInConfig() // optional
	}

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("env"),
			Name: v.GetString("app_name"),
			Fast: v.GetBool("fast"),
		},
		HTTP: HTTPConfig{
			Addr:      v.GetString("addr"),
			StaticDir: v.GetString("static_dir"),
		},
		Storage: StorageConfig{DBPath: v.GetString("db_path")},
		Log:     LogConfig{Level: v.GetString("log_level")},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt_secret"),
			Expiration: time.Duration(v.GetInt("jwt_expiration_minutes")) * time.Minute,
			Issuer:     v.GetString("jwt_issuer"),
		},
	}
	if cfg.JWT.Secret == "" && cfg.App.Env == "development" {
		cfg.JWT.Secret = devSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app_name", "projex")
	v.SetDefault("fast", false)
	v.SetDefault("addr", ":8080")
	v.SetDefault("static_dir", "web/dist")
	v.SetDefault("db_path", "data/projex.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("jwt_expiration_minutes", 60*24)
	v.SetDefault("jwt_issuer", "projex")
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("PROJEX_JWT_SECRET is required outside development")
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("PROJEX_JWT_EXPIRATION_MINUTES must be positive")
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("PROJEX_ADDR must not be empty")
	}
	return nil
}
