package http

import (
	"github.com/gin-gonic/gin"

	"github.com/readstats/kindle-analytics/internal/database"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Sessions are only recorded when history is enabled; health checks
	// still see the database either way.
	var historyDB *database.Database
	if cfg.HistoryEnabled {
		historyDB = cfg.Database
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	analyze := NewAnalyzeController(historyDB, cfg.InactivityDays)
	export := NewExportController(cfg.InactivityDays)

	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	router.POST("/api/analyze", analyze.Analyze)
	router.POST("/api/export/report", export.Report)
	router.POST("/api/export/notes", export.Notes)

	if cfg.Database != nil && cfg.HistoryEnabled {
		imports := NewImportsController(cfg.Database)
		router.GET("/api/imports", imports.List)
		router.GET("/api/imports/:id", imports.Get)
	}

	return router
}
