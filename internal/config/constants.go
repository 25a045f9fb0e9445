package config

const (
	// DefaultDatabasePath is the default path for the import-history database
	DefaultDatabasePath = "./kindle-analytics.db"

	// Bounds for the configurable inactivity threshold, in days
	MinInactivityDays = 1
	MaxInactivityDays = 365
)
