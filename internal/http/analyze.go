package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/readstats/kindle-analytics/internal/activity"
	"github.com/readstats/kindle-analytics/internal/database"
	"github.com/readstats/kindle-analytics/internal/entities"
	"github.com/readstats/kindle-analytics/internal/status"
)

type AnalyzeController struct {
	db             *database.Database
	inactivityDays int
	clock          func() time.Time
}

func NewAnalyzeController(db *database.Database, inactivityDays int) *AnalyzeController {
	return &AnalyzeController{
		db:             db,
		inactivityDays: inactivityDays,
		clock:          time.Now,
	}
}

type LibraryStats struct {
	TotalBooks int `json:"total_books"`
	Completed  int `json:"completed"`
	Reading    int `json:"reading"`
	Inactive   int `json:"inactive"`
	TotalNotes int `json:"total_notes"`
}

type AnalyzeResult struct {
	Success        bool                      `json:"success"`
	Error          string                    `json:"error,omitempty"`
	SessionID      string                    `json:"session_id,omitempty"`
	InactivityDays int                       `json:"inactivity_days"`
	Stats          LibraryStats              `json:"stats"`
	Records        []entities.ClippingRecord `json:"records"`
	Summaries      []entities.BookSummary    `json:"summaries"`
	Activity       []entities.YearActivity   `json:"activity"`
}

// Analyze runs the full pipeline on an uploaded clippings file: extract
// records, reconcile per-book status, and build the activity calendar.
func (c *AnalyzeController) Analyze(ctx *gin.Context) {
	records, header, err := readClippingsUpload(ctx)
	if err != nil {
		uploadErr := err.(*uploadError)
		ctx.JSON(uploadErr.status, &AnalyzeResult{
			Success: false,
			Error:   uploadErr.message,
		})
		return
	}

	inactivityDays := inactivityDaysFrom(ctx, c.inactivityDays)

	if len(records) == 0 {
		ctx.JSON(http.StatusOK, &AnalyzeResult{
			Success:        false,
			Error:          "No se encontraron datos.",
			InactivityDays: inactivityDays,
		})
		return
	}

	summaries := status.Reconcile(records, status.Options{
		InactivityDays: inactivityDays,
		Now:            c.clock(),
	})

	result := &AnalyzeResult{
		Success:        true,
		InactivityDays: inactivityDays,
		Stats:          buildStats(records, summaries),
		Records:        records,
		Summaries:      summaries,
		Activity:       activity.BuildYears(records),
	}

	if c.db != nil {
		session := &entities.ImportSession{
			Filename:       header.Filename,
			InactivityDays: inactivityDays,
			RecordCount:    len(records),
			BookCount:      len(summaries),
			CompletedCount: result.Stats.Completed,
			ReadingCount:   result.Stats.Reading,
			InactiveCount:  result.Stats.Inactive,
		}
		if err := c.db.SaveImportSession(session); err != nil {
			// History is best-effort; the analysis itself succeeded.
			log.Printf("Failed to record import session: %v", err)
		} else {
			result.SessionID = session.UUID
		}
	}

	ctx.JSON(http.StatusOK, result)
}

func buildStats(records []entities.ClippingRecord, summaries []entities.BookSummary) LibraryStats {
	stats := LibraryStats{
		TotalBooks: len(summaries),
		TotalNotes: len(records),
	}
	for _, summary := range summaries {
		switch summary.Status {
		case entities.StatusCompleted:
			stats.Completed++
		case entities.StatusReading:
			stats.Reading++
		case entities.StatusInactive:
			stats.Inactive++
		}
	}
	return stats
}
