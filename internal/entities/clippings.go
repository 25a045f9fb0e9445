package entities

import "time"

// UnknownAuthor is the sentinel used when a clipping header carries no
// author in parentheses. Kept in Spanish to match the exported tables.
const UnknownAuthor = "Desconocido"

// Sentinels shown in place of dates that could not be parsed.
const (
	NoDateDisplay     = "S/F"
	NoActivityDisplay = "N/A"
	SummaryDateLayout = "2006-01-02"
	NotesDateLayout   = "02/01/2006"
)

type ReadingStatus string

const (
	StatusReading   ReadingStatus = "reading"
	StatusInactive  ReadingStatus = "inactive"
	StatusCompleted ReadingStatus = "completed"
)

// DisplayName returns the label used in exported tables.
func (s ReadingStatus) DisplayName() string {
	switch s {
	case StatusReading:
		return "Leyendo actualmente"
	case StatusInactive:
		return "Inactivo"
	case StatusCompleted:
		return "Completado"
	default:
		return string(s)
	}
}

// ClippingRecord is a single annotation extracted from a clippings export.
// Records are value types: once extracted they are never mutated.
type ClippingRecord struct {
	Author   string     `json:"author"`
	Title    string     `json:"title"`
	AddedAt  *time.Time `json:"added_at,omitempty"` // nil when the date could not be parsed
	Location int        `json:"location"`
	Text     string     `json:"text"`
}

// BookSummary is the inferred reading state for one (author, title) group.
// Summaries are recomputed from the full record set on every invocation.
type BookSummary struct {
	Author       string        `json:"author"`
	Title        string        `json:"title"`
	Status       ReadingStatus `json:"status"`
	ReadingDays  int           `json:"reading_days"`
	StartDate    *time.Time    `json:"start_date,omitempty"`
	EndDate      *time.Time    `json:"end_date,omitempty"`
	StartDisplay string        `json:"start_display"`
	EndDisplay   string        `json:"end_display"`
	MaxLocation  int           `json:"max_location"`
	NoteCount    int           `json:"note_count"`
}

// DayActivity is one cell of the calendar heatmap: highlight count for a
// single day, positioned by week-of-year and weekday.
type DayActivity struct {
	Date    time.Time    `json:"date"`
	Week    int          `json:"week"`
	Weekday time.Weekday `json:"weekday"`
	Count   int          `json:"count"`
}

// YearActivity holds a full calendar year of daily activity plus the week
// numbers where each month starts, for axis labelling.
type YearActivity struct {
	Year       int           `json:"year"`
	Days       []DayActivity `json:"days"`
	MonthTicks []int         `json:"month_ticks"`
}
