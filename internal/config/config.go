package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DriverSQLite   DatabaseDriver = "sqlite"   // Local file database (default)
	DriverPostgres DatabaseDriver = "postgres" // Connection string DSN
)

type (
	Config struct {
		HTTP
		Database
		Media
		Global
		RateLimit
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Driver     DatabaseDriver
		DSN        string // File path for sqlite, connection string for postgres
		LogQueries bool
	}
	Media struct {
		BaseURL string // Prefix joined with stored media paths, e.g. "/media/" or "https://cdn.example.com/"
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		ReadOnly                 bool // Serve the catalog without accepting writes
	}
	RateLimit struct {
		Enabled bool
		RPS     float64 // Sustained requests per second per client IP
		Burst   int
	}
)

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func NewConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("read_only", false)
	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_dsn", DefaultDatabasePath)
	v.SetDefault("database_log_queries", false)
	v.SetDefault("media_base_url", DefaultMediaBaseURL)

	// Rate limiting is off unless explicitly enabled
	v.SetDefault("rate_limit_enabled", false)
	v.SetDefault("rate_limit_rps", 20)
	v.SetDefault("rate_limit_burst", 40)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Driver:     DatabaseDriver(strings.ToLower(v.GetString("DATABASE_DRIVER"))),
			DSN:        v.GetString("DATABASE_DSN"),
			LogQueries: v.GetBool("DATABASE_LOG_QUERIES"),
		},
		Media: Media{
			BaseURL: v.GetString("MEDIA_BASE_URL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			ReadOnly:                 v.GetBool("READ_ONLY"),
		},
		RateLimit: RateLimit{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
	}
}
