package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Analysis
		History
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Analysis struct {
		InactivityDays int // days without highlights before a book counts as abandoned
	}
	History struct {
		Enabled bool // persist import sessions to the database
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("inactivity_days", 30)
	v.SetDefault("history_enabled", true)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Analysis: Analysis{
			InactivityDays: ClampInactivityDays(v.GetInt("INACTIVITY_DAYS")),
		},
		History: History{
			Enabled: v.GetBool("HISTORY_ENABLED"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

// ClampInactivityDays bounds the threshold to its valid 1-365 range.
func ClampInactivityDays(days int) int {
	if days < MinInactivityDays {
		return MinInactivityDays
	}
	if days > MaxInactivityDays {
		return MaxInactivityDays
	}
	return days
}
