// Package config loads server settings from defaults, an optional config
// file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. TRACKMEET_SERVER_PORT.
const EnvPrefix = "TRACKMEET"

// Config holds the settings of a meet server.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	Meet    MeetConfig
	Metrics MetricsConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	Port int
}

type DBConfig struct {
	Path string
}

type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string
}

type MeetConfig struct {
	// ReferenceYear pins age categories. Zero means the current calendar year.
	ReferenceYear int

	// Name is reported until a meet name is saved through the settings service.
	Name string
}

type MetricsConfig struct {
	Enabled bool
}

type CacheConfig struct {
	TTL time.Duration
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.path", "./data/meet.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("meet.referenceyear", 0)
	v.SetDefault("meet.name", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("cache.ttl", 5*time.Minute)
}

// New returns a viper instance with defaults and environment bindings set up.
// The bare DB_PATH, PORT and LOG_LEVEL variables are honoured alongside the
// prefixed ones.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// BindEnv only fails without a key.
	_ = v.BindEnv("db.path", EnvPrefix+"_DB_PATH", "DB_PATH")
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	return v
}

// Load reads configuration into a Config. A .env file in the working
// directory is applied first; configFile, when set, must exist. Otherwise
// config.yaml is looked up in the working directory and $HOME/.trackmeet.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".trackmeet"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		slog.Debug("Config file loaded", "path", v.ConfigFileUsed())
	}

	cfg := &Config{
		Server:  ServerConfig{Port: v.GetInt("server.port")},
		DB:      DBConfig{Path: v.GetString("db.path")},
		Log:     LogConfig{Level: v.GetString("log.level")},
		Meet:    MeetConfig{ReferenceYear: v.GetInt("meet.referenceyear"), Name: v.GetString("meet.name")},
		Metrics: MetricsConfig{Enabled: v.GetBool("metrics.enabled")},
		Cache:   CacheConfig{TTL: v.GetDuration("cache.ttl")},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.DB.Path == "" {
		return errors.New("db path must not be empty")
	}
	if c.Meet.ReferenceYear < 0 {
		return fmt.Errorf("invalid reference year %d", c.Meet.ReferenceYear)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("invalid cache ttl %s", c.Cache.TTL)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}
