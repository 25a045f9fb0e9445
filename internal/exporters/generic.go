package exporters

import (
	"time"

	"github.com/readstats/kindle-analytics/internal/entities"
	"github.com/readstats/kindle-analytics/internal/utils"
)

type ExportResult struct {
	BooksProcessed int `json:"books_processed"`
	NotesProcessed int `json:"notes_processed"`
}

// BaseFilename derives the export file stem from the newest record date,
// falling back to now for undated exports.
func BaseFilename(records []entities.ClippingRecord, now time.Time) string {
	var newest time.Time
	for _, record := range records {
		if record.AddedAt != nil && record.AddedAt.After(newest) {
			newest = *record.AddedAt
		}
	}
	if newest.IsZero() {
		newest = now
	}
	return utils.SanitizeFilename(newest.Format(entities.SummaryDateLayout) + "_Kindle")
}
