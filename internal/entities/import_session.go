package entities

import "time"

// ImportSession records the outcome of one processed upload. Only derived
// counts are stored; summaries are always recomputed from the raw text on
// the next upload, never read back from here.
type ImportSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UUID           string    `gorm:"uniqueIndex;size:36" json:"uuid"`
	Filename       string    `gorm:"size:512" json:"filename"`
	InactivityDays int       `json:"inactivity_days"`
	RecordCount    int       `json:"record_count"`
	BookCount      int       `json:"book_count"`
	CompletedCount int       `json:"completed_count"`
	ReadingCount   int       `json:"reading_count"`
	InactiveCount  int       `json:"inactive_count"`
	CreatedAt      time.Time `json:"created_at"`
}

func (ImportSession) TableName() string {
	return "import_sessions"
}
