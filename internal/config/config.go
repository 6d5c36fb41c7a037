package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration options for the server
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Dir        string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			Environment:     "development",
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "timetrack.db",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		Log: LogConfig{
			Dir:        "logs",
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 30,
			MaxAgeDays: 90,
		},
	}
}

// Load reads an optional .env-style config file from path and applies
// environment overrides on top of the defaults. A missing config file is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	config := NewConfig()
	v.SetDefault("SERVER_PORT", config.Server.Port)
	v.SetDefault("ENVIRONMENT", config.Server.Environment)
	v.SetDefault("SHUTDOWN_TIMEOUT", config.Server.ShutdownTimeout.String())
	v.SetDefault("DB_PATH", config.Database.Path)
	v.SetDefault("CORS_ALLOW_ORIGINS", strings.Join(config.CORS.AllowOrigins, ","))
	v.SetDefault("LOG_DIR", config.Log.Dir)
	v.SetDefault("LOG_LEVEL", config.Log.Level)
	v.SetDefault("LOG_MAX_SIZE_MB", config.Log.MaxSizeMB)
	v.SetDefault("LOG_MAX_BACKUPS", config.Log.MaxBackups)
	v.SetDefault("LOG_MAX_AGE_DAYS", config.Log.MaxAgeDays)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.Environment = v.GetString("ENVIRONMENT")
	config.Server.ShutdownTimeout = v.GetDuration("SHUTDOWN_TIMEOUT")
	config.Database.Path = v.GetString("DB_PATH")
	config.CORS.AllowOrigins = splitOrigins(v.GetString("CORS_ALLOW_ORIGINS"))
	config.Log.Dir = v.GetString("LOG_DIR")
	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.MaxSizeMB = v.GetInt("LOG_MAX_SIZE_MB")
	config.Log.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	config.Log.MaxAgeDays = v.GetInt("LOG_MAX_AGE_DAYS")

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &ConfigError{Field: "server.port", Message: "port cannot be empty"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
	}
	if len(c.CORS.AllowOrigins) == 0 {
		return &ConfigError{Field: "cors.allow_origins", Message: "at least one origin is required"}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: "level must be one of debug, info, warn, error"}
	}
	return nil
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
