package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HOLIDAY_CALENDAR_SERVER_ADDR
const EnvPrefix = "HOLIDAY_CALENDAR"

// Config represents application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Server   ServerConfig   `mapstructure:"server"`
	Console  ConsoleConfig  `mapstructure:"console"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// CalendarConfig represents the accepted year range and month cache
type CalendarConfig struct {
	MinYear  int    `mapstructure:"min_year"`
	MaxYear  int    `mapstructure:"max_year"`
	CacheTTL string `mapstructure:"cache_ttl"` // Month info cache used by the HTTP API
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Addr         string   `mapstructure:"addr"`
	RateLimit    int      `mapstructure:"rate_limit"` // requests per second per client IP
	CORSOrigins  []string `mapstructure:"cors_origins"`
	ReadTimeout  string   `mapstructure:"read_timeout"`
	WriteTimeout string   `mapstructure:"write_timeout"`
}

// ConsoleConfig represents interactive console configuration
type ConsoleConfig struct {
	HistoryFile string `mapstructure:"history_file"`
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("calendar.min_year", 1582)
	v.SetDefault("calendar.max_year", 3000)
	v.SetDefault("calendar.cache_ttl", "24h")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 20)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("console.history_file", "$HOME/.holiday-calendar-history")
}

// Load loads configuration from file, .env and environment.
// A missing config file is only an error when configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	// Optional .env in the working directory
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-calendar")
		v.AddConfigPath("/etc/holiday-calendar")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	if c.Calendar.MinYear < 1 {
		return fmt.Errorf("calendar.min_year must be positive")
	}
	if c.Calendar.MinYear > c.Calendar.MaxYear {
		return fmt.Errorf("calendar.min_year (%d) must not exceed calendar.max_year (%d)",
			c.Calendar.MinYear, c.Calendar.MaxYear)
	}

	if _, err := time.ParseDuration(c.Calendar.CacheTTL); err != nil {
		return fmt.Errorf("calendar.cache_ttl: %w", err)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	if _, err := time.ParseDuration(c.Server.ReadTimeout); err != nil {
		return fmt.Errorf("server.read_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.Server.WriteTimeout); err != nil {
		return fmt.Errorf("server.write_timeout: %w", err)
	}

	return nil
}

// GetCacheTTL returns cache TTL duration
func (c *CalendarConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// GetReadTimeout returns the HTTP read timeout
func (c *ServerConfig) GetReadTimeout() time.Duration {
	duration, err := time.ParseDuration(c.ReadTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return duration
}

// GetWriteTimeout returns the HTTP write timeout
func (c *ServerConfig) GetWriteTimeout() time.Duration {
	duration, err := time.ParseDuration(c.WriteTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.Console.HistoryFile = os.ExpandEnv(c.Console.HistoryFile)
}
