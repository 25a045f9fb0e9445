package http

import (
	"github.com/readstats/kindle-analytics/internal/database"
)

// RouterConfig carries all router dependencies, improving testability and
// keeping NewRouter's signature stable.
type RouterConfig struct {
	Database       *database.Database
	InactivityDays int
	HistoryEnabled bool
	Version        string
}
