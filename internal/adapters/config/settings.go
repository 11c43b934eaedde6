// Package config loads service settings and seed files for the cookbook.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// EnvPrefix is the prefix of environment variables that override settings.
	EnvPrefix = "COOKBOOK"
	// EnvConfigPath names the environment variable holding an explicit settings file.
	EnvConfigPath = "COOKBOOK_CONFIG"
	// DefaultConfigName is the settings file looked up in the working directory.
	DefaultConfigName = "cookbook"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Settings is the full service configuration.
type Settings struct {
	Server    ServerSettings    `mapstructure:"server"`
	Store     StoreSettings     `mapstructure:"store"`
	Resolver  ResolverSettings  `mapstructure:"resolver"`
	Cache     CacheSettings     `mapstructure:"cache"`
	Seed      SeedSettings      `mapstructure:"seed"`
	Log       LogSettings       `mapstructure:"log"`
	Telemetry TelemetrySettings `mapstructure:"telemetry"`
}

// ServerSettings configures the HTTP transport.
type ServerSettings struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreSettings selects and configures the entry registry backend.
type StoreSettings struct {
	Driver string        `mapstructure:"driver"`
	Shards int           `mapstructure:"shards"`
	Redis  RedisSettings `mapstructure:"redis"`
}

// RedisSettings configures the Redis-backed registry.
type RedisSettings struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// ResolverSettings bounds recipe expansion.
type ResolverSettings struct {
	MaxDepth int `mapstructure:"max_depth"`
}

// CacheSettings configures the summary cache.
type CacheSettings struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// SeedSettings points at a YAML file of entries loaded at startup.
type SeedSettings struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// LogSettings configures the logger.
type LogSettings struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// TelemetrySettings configures tracing.
type TelemetrySettings struct {
	Stdout      bool   `mapstructure:"stdout"`
	ServiceName string `mapstructure:"service_name"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.shards", 16)
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "cookbook:")
	v.SetDefault("resolver.max_depth", 64)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("seed.path", "")
	v.SetDefault("seed.watch", false)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("telemetry.stdout", false)
	v.SetDefault("telemetry.service_name", "cookbook")
}

// DefaultSettings returns the settings used when no file or environment overrides exist.
func DefaultSettings() *Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	_ = v.Unmarshal(&s)
	return &s
}

// LoadSettings reads settings from defaults, an optional YAML file and COOKBOOK_*
// environment variables, in increasing order of precedence.
// An empty path looks for cookbook.yaml in the working directory and tolerates its absence.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSettingsFromEnv loads settings from the file named by COOKBOOK_CONFIG, if set.
func LoadSettingsFromEnv() (*Settings, error) {
	return LoadSettings(os.Getenv(EnvConfigPath))
}

// Validate reports inconsistent settings.
func (s *Settings) Validate() error {
	switch s.Store.Driver {
	case DriverMemory, DriverRedis:
	default:
		return invalidSetting("store.driver", s.Store.Driver)
	}
	if s.Store.Shards <= 0 {
		return invalidSetting("store.shards", s.Store.Shards)
	}
	if s.Resolver.MaxDepth <= 0 {
		return invalidSetting("resolver.max_depth", s.Resolver.MaxDepth)
	}
	if s.Cache.TTL < 0 {
		return invalidSetting("cache.ttl", s.Cache.TTL.String())
	}
	return nil
}

func invalidSetting(key string, value any) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "settings rejected"), key, value)
}
