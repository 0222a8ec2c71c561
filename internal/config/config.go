package config

import (
	"github.com/spf13/viper"
)

type LogFormat string

const (
	LogFormatConsole LogFormat = "console" // Human-readable output (default)
	LogFormatJSON    LogFormat = "json"    // One JSON object per line
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
		Demo
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // gorm SQL logger: silent, error, warn, info
	}
	Log struct {
		Level  string // zerolog level name
		Format LogFormat
	}
	Demo struct {
		Enabled bool // Serve read-only; write endpoints answer 403
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", string(LogFormatConsole))
	v.SetDefault("demo_mode", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: LogFormat(v.GetString("LOG_FORMAT")),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
	}
}
