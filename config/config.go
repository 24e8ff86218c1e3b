package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig

	// Calendar provider
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
}

type MetricsConfig struct {
	Enabled bool
}

// GoogleCalendarConfig is the credential material and event defaults.
// Secrets are not validated here; a missing one surfaces per request.
type GoogleCalendarConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
	RedirectURL  string
	CalendarID   string

	DefaultSummary  string
	DefaultTimezone string
	RequestTimeout  time.Duration

	ListWindow     time.Duration
	ListMaxResults int64
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = stringList(v, "cors.allowed_origins")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = v.GetInt("rate_limit.per_minute")
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")

	// Google Calendar: nested keys, overridden by the flat env names used in .env files
	gc := &cfg.GoogleCalendar
	gc.ClientID = firstNonEmpty(v.GetString("google_client_id"), v.GetString("google_calendar.client_id"))
	gc.ClientSecret = firstNonEmpty(v.GetString("google_client_secret"), v.GetString("google_calendar.client_secret"))
	gc.RefreshToken = firstNonEmpty(v.GetString("google_refresh_token"), v.GetString("google_calendar.refresh_token"))
	gc.TokenURL = firstNonEmpty(v.GetString("google_token_url"), v.GetString("google_calendar.token_url"))
	gc.RedirectURL = firstNonEmpty(v.GetString("redirect_uri"), v.GetString("google_calendar.redirect_url"))
	gc.CalendarID = firstNonEmpty(v.GetString("google_calendar_id"), v.GetString("google_calendar.calendar_id"))

	gc.DefaultSummary = v.GetString("google_calendar.default_summary")
	gc.DefaultTimezone = v.GetString("google_calendar.default_timezone")
	gc.RequestTimeout = v.GetDuration("google_calendar.request_timeout")
	gc.ListWindow = v.GetDuration("google_calendar.list_window")
	gc.ListMaxResults = v.GetInt64("google_calendar.list_max_results")

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.per_minute", 60)
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("google_calendar.token_url", "https://oauth2.googleapis.com/token")
	v.SetDefault("google_calendar.redirect_url", "http://localhost:3000/auth/callback")
	v.SetDefault("google_calendar.default_summary", "New Event")
	v.SetDefault("google_calendar.default_timezone", "UTC")
	v.SetDefault("google_calendar.request_timeout", "30s")
	v.SetDefault("google_calendar.list_window", "720h") // 30 days
	v.SetDefault("google_calendar.list_max_results", 10)
}

// stringList reads key as a YAML list or as a comma separated string.
func stringList(v *viper.Viper, key string) []string {
	if _, ok := v.Get(key).([]any); ok {
		return splitList(strings.Join(v.GetStringSlice(key), ","))
	}
	return splitList(v.GetString(key))
}

// splitList splits a comma separated value; viper does not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
