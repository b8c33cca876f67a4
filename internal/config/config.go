package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	SessionStore   string
	RedisHost      string
	RedisPort      string
	SessionSecret  string
	GinMode        string
	HTTPAddr       string
	ReportTimezone string
	AvatarDir      string
	OpenAIAPIKey   string
	LogLevel       string
}

var defaults = map[string]string{
	"DB_DRIVER":       "mysql",
	"DB_HOST":         "localhost",
	"DB_PORT":         "3306",
	"DB_USER":         "thunder",
	"DB_PASSWORD":     "thunderpassword",
	"DB_NAME":         "thunder",
	"SESSION_STORE":   "redis",
	"REDIS_HOST":      "localhost",
	"REDIS_PORT":      "6379",
	"SESSION_SECRET":  "default-secret-key-change-me",
	"GIN_MODE":        "debug",
	"HTTP_ADDR":       ":8080",
	"REPORT_TIMEZONE": "UTC",
	"AVATAR_DIR":      "./data/avatars",
	"OPENAI_API_KEY":  "",
	"LOG_LEVEL":       "info",
}

// Load reads configuration from the environment.
func Load() *Config {
	return FromViper(viper.New())
}

// FromViper builds a Config from v after registering defaults and env lookup.
// Callers may bind flags on v before calling it.
func FromViper(v *viper.Viper) *Config {
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	return &Config{
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		SessionStore:   strings.ToLower(v.GetString("SESSION_STORE")),
		RedisHost:      v.GetString("REDIS_HOST"),
		RedisPort:      v.GetString("REDIS_PORT"),
		SessionSecret:  v.GetString("SESSION_SECRET"),
		GinMode:        v.GetString("GIN_MODE"),
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		ReportTimezone: v.GetString("REPORT_TIMEZONE"),
		AvatarDir:      v.GetString("AVATAR_DIR"),
		OpenAIAPIKey:   v.GetString("OPENAI_API_KEY"),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// Location returns the time zone used to bucket records by calendar day.
func (c *Config) Location() (*time.Location, error) {
	if c.ReportTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", c.ReportTimezone, err)
	}
	return loc, nil
}
