package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Connection supervisor
	DBRetryDelay    time.Duration
	DBCheckInterval time.Duration

	// Migrations source directory, used by the migrate command
	MigrationsPath string

	// Token configuration
	JWTSecret string
	TokenTTL  time.Duration

	// Logging configuration
	LogLevel string
}

var defaults = map[string]any{
	"server_port":            "5000",
	"http_read_timeout":      30 * time.Second,
	"http_write_timeout":     30 * time.Second,
	"http_idle_timeout":      120 * time.Second,
	"http_shutdown_timeout":  5 * time.Second,
	"db_host":                "localhost",
	"db_port":                5432,
	"db_user":                "postgres",
	"db_password":            "postgres",
	"db_name":                "blog",
	"db_ssl_mode":            "disable",
	"db_max_conns":           25,
	"db_min_conns":           2,
	"db_max_conn_lifetime":   time.Hour,
	"db_max_conn_idle_time":  30 * time.Minute,
	"db_health_check_period": time.Minute,
	"db_retry_delay":         5 * time.Second,
	"db_check_interval":      15 * time.Second,
	"migrations_path":        "./migrations",
	"jwt_secret":             "",
	"token_ttl":              time.Hour,
	"log_level":              "info",
}

// Load loads configuration from environment variables and, when present,
// a blog-api.yaml file. An explicit configFile must exist.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("blog-api")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// SERVER_PORT, DB_HOST, ... override the file
	v.AutomaticEnv()

	cfg := &Config{
		ServerPort:          v.GetString("server_port"),
		ReadTimeout:         v.GetDuration("http_read_timeout"),
		WriteTimeout:        v.GetDuration("http_write_timeout"),
		IdleTimeout:         v.GetDuration("http_idle_timeout"),
		ShutdownTimeout:     v.GetDuration("http_shutdown_timeout"),
		DBHost:              v.GetString("db_host"),
		DBPort:              v.GetInt("db_port"),
		DBUser:              v.GetString("db_user"),
		DBPassword:          v.GetString("db_password"),
		DBName:              v.GetString("db_name"),
		DBSSLMode:           v.GetString("db_ssl_mode"),
		DBMaxConns:          v.GetInt32("db_max_conns"),
		DBMinConns:          v.GetInt32("db_min_conns"),
		DBMaxConnLifetime:   v.GetDuration("db_max_conn_lifetime"),
		DBMaxConnIdleTime:   v.GetDuration("db_max_conn_idle_time"),
		DBHealthCheckPeriod: v.GetDuration("db_health_check_period"),
		DBRetryDelay:        v.GetDuration("db_retry_delay"),
		DBCheckInterval:     v.GetDuration("db_check_interval"),
		MigrationsPath:      v.GetString("migrations_path"),
		JWTSecret:           v.GetString("jwt_secret"),
		TokenTTL:            v.GetDuration("token_ttl"),
		LogLevel:            v.GetString("log_level"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabaseURL returns the postgres URL used by the migrate command.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if c.DBRetryDelay <= 0 {
		return fmt.Errorf("DB_RETRY_DELAY must be positive")
	}
	if c.DBCheckInterval <= 0 {
		return fmt.Errorf("DB_CHECK_INTERVAL must be positive")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}
