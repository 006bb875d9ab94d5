package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"SERVER_PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
		ReadTimeout    string   `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout   string   `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		MaxBodyBytes   int64    `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrateOnStart  bool   `yaml:"migrate_on_start" env:"DB_MIGRATE_ON_START"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Redis struct {
		Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED"`
		Host     string `yaml:"host" env:"REDIS_HOST"`
		Port     int    `yaml:"port" env:"REDIS_PORT"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	RateLimit struct {
		AuthRequests int    `yaml:"auth_requests" env:"RATE_LIMIT_AUTH_REQUESTS"`
		AuthWindow   string `yaml:"auth_window" env:"RATE_LIMIT_AUTH_WINDOW"`
		AuthBurst    int    `yaml:"auth_burst" env:"RATE_LIMIT_AUTH_BURST"`
	} `yaml:"rate_limit"`

	// Admin is the account provisioned at startup when both email and password are set.
	Admin struct {
		Name     string `yaml:"name" env:"ADMIN_NAME"`
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; env vars alone are enough to run.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"http://localhost:3000"}
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.MaxBodyBytes = 1 << 20

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "alumnet"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrateOnStart = true

	// Sessions last a week.
	config.JWT.AccessTokenExpiration = "168h"
	config.JWT.Issuer = "alumnet"

	config.Redis.Host = "localhost"
	config.Redis.Port = 6379

	config.RateLimit.AuthRequests = 10
	config.RateLimit.AuthWindow = "1m"
	config.RateLimit.AuthBurst = 10

	config.Admin.Name = "Administrator"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Server.Mode) {
	case "development", "production":
	default:
		return fmt.Errorf("server mode must be development or production, got %q", config.Server.Mode)
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	durations := map[string]string{
		"JWT access token expiration": config.JWT.AccessTokenExpiration,
		"database connection lifetime": config.Database.ConnMaxLifetime,
		"server read timeout":          config.Server.ReadTimeout,
		"server write timeout":         config.Server.WriteTimeout,
		"auth rate limit window":       config.RateLimit.AuthWindow,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.RateLimit.AuthRequests <= 0 || config.RateLimit.AuthBurst <= 0 {
		return fmt.Errorf("auth rate limit requests and burst must be positive")
	}

	if config.Admin.Email != "" && len(config.Admin.Password) < 6 {
		return fmt.Errorf("admin password must be at least 6 characters")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetRedisAddr returns the host:port address of the Redis server
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
