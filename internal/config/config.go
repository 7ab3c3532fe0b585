// Package config loads the service configuration with viper
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// EnvPrefix is prepended to every environment override, e.g.
// RPG_SHEET_SERVER_PORT.
const EnvPrefix = "RPG_SHEET"

// Storage drivers
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// ServerConfig holds the gRPC listener settings
type ServerConfig struct {
	Port int `mapstructure:"port"`

	// ShutdownTimeout bounds GracefulStop before the server is stopped hard.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// StorageConfig selects where sheets are kept
type StorageConfig struct {
	Driver string      `mapstructure:"driver"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is json or console.
	Format string `mapstructure:"format"`
}

// SheetConfig holds defaults for new sheets
type SheetConfig struct {
	// InitialMethod is used when a create request names no method.
	InitialMethod string `mapstructure:"initial_method"`
}

// Config is the top-level application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	Sheet   SheetConfig   `mapstructure:"sheet"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "console"}
	validDrivers = []string{StorageMemory, StorageRedis}
	validMethods = []string{"default", "3d6", "4d6_drop_lowest"}
)

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout < 0 {
		vb.Field("server.shutdown_timeout", "must not be negative")
	}

	errors.ValidateEnum("storage.driver", c.Storage.Driver, validDrivers, vb)
	if c.Storage.Driver == StorageRedis && c.Storage.Redis.Addr == "" {
		vb.RequiredField("storage.redis.addr")
	}
	if c.Storage.Redis.TTL < 0 {
		vb.Field("storage.redis.ttl", "must not be negative")
	}

	errors.ValidateEnum("logging.level", c.Logging.Level, validLevels, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, validFormats, vb)
	errors.ValidateEnum("sheet.initial_method", c.Sheet.InitialMethod, validMethods, vb)

	return vb.Build()
}

// New returns a viper instance with defaults and environment overrides
// applied. Callers may bind flags into it before calling LoadFromViper.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads an optional YAML file, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already configured viper instance
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.ttl", "0s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("sheet.initial_method", "default")
}
