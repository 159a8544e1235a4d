package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

// Storage drivers
const (
	DriverMongoDB  = "mongodb"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	MongoDB  MongoDBConfig
	SQL      SQLConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Raffle   RaffleConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            string
	AllowedHosts    []string
	ShutdownTimeout time.Duration
}

// StorageConfig selects the store behind the repositories
type StorageConfig struct {
	Driver string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// SQLConfig holds the DSN for the postgres and sqlite drivers
type SQLConfig struct {
	DSN string
}

// RedisConfig holds the event bus configuration. When disabled events stay in process.
type RedisConfig struct {
	Enabled       bool
	Addr          string
	Password      string
	DB            int
	ChannelPrefix string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret string
	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int
}

// AdminConfig is the operator account seeded at startup
type AdminConfig struct {
	Email        string
	Password     string
	PasswordHash string
}

// RaffleConfig tunes the draw engine
type RaffleConfig struct {
	RevealDelay        time.Duration
	WinnersPageSize    int
	ReconcileOnStartup bool
	// Seed fixes the picker sequence; 0 seeds from the clock
	Seed int64
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	return load("")
}

// LoadFile loads configuration from the given file, with environment overrides
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.Storage.Driver = strings.ToLower(strings.TrimSpace(config.Storage.Driver))

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default values for configuration. Every key needs a default
// so that AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	v.SetDefault("Server.ShutdownTimeout", 5*time.Second)
	v.SetDefault("Storage.Driver", DriverMongoDB)
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "raffle")
	v.SetDefault("MongoDB.Timeout", 10*time.Second)
	v.SetDefault("SQL.DSN", "")
	v.SetDefault("Redis.Enabled", false)
	v.SetDefault("Redis.Addr", "localhost:6379")
	v.SetDefault("Redis.Password", "")
	v.SetDefault("Redis.DB", 0)
	v.SetDefault("Redis.ChannelPrefix", "raffle")
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	v.SetDefault("Admin.Email", "")
	v.SetDefault("Admin.Password", "")
	v.SetDefault("Admin.PasswordHash", "")
	v.SetDefault("Raffle.RevealDelay", time.Duration(0))
	v.SetDefault("Raffle.WinnersPageSize", 100)
	v.SetDefault("Raffle.ReconcileOnStartup", true)
	v.SetDefault("Raffle.Seed", 0)
	v.SetDefault("LogLevel", "info")
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.ExpiresIn <= 0 {
		return errors.New("JWT_EXPIRESIN must be positive")
	}

	switch c.Storage.Driver {
	case DriverMongoDB:
		if c.MongoDB.URI == "" || c.MongoDB.Database == "" {
			return errors.New("MONGODB_URI and MONGODB_DATABASE are required for the mongodb driver")
		}
	case DriverPostgres, DriverSQLite:
		if c.SQL.DSN == "" {
			return fmt.Errorf("SQL_DSN is required for the %s driver", c.Storage.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required when redis is enabled")
	}
	if c.Raffle.WinnersPageSize < 0 {
		return errors.New("RAFFLE_WINNERSPAGESIZE cannot be negative")
	}
	if c.Raffle.RevealDelay < 0 {
		return errors.New("RAFFLE_REVEALDELAY cannot be negative")
	}
	return nil
}

// TokenTTL is the lifetime of operator tokens
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpiresIn) * time.Second
}

// SlogLevel parses LogLevel, falling back to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
