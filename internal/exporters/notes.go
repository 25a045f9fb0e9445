package exporters

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/readstats/kindle-analytics/internal/entities"
)

const bookSeparator = "=================================================="

// NotesExporter writes all highlights as a single plain-text bundle,
// grouped per book with an estimated reading date range.
type NotesExporter struct {
	IncludeHeader bool
	Now           time.Time
}

func NewNotesExporter(includeHeader bool) *NotesExporter {
	return &NotesExporter{IncludeHeader: includeHeader}
}

func (e *NotesExporter) Export(w io.Writer, records []entities.ClippingRecord) (ExportResult, error) {
	now := e.Now
	if now.IsZero() {
		now = time.Now()
	}

	var builder strings.Builder

	if e.IncludeHeader {
		fmt.Fprintf(&builder, "Export generado el: %s\n", now.Format(entities.NotesDateLayout))
		builder.WriteString(bookSeparator + "\n\n")
	}

	result := ExportResult{}
	for _, book := range groupSorted(records) {
		fmt.Fprintf(&builder, "Título del libro: %s\n", book.title)
		fmt.Fprintf(&builder, "Autor: %s\n", book.author)
		fmt.Fprintf(&builder, "Estimado de fechas de lectura: %s\n\n", dateRange(book.records))

		for _, record := range book.records {
			fmt.Fprintf(&builder, "\"%s\"\n\n", record.Text)
			result.NotesProcessed++
		}

		builder.WriteString(bookSeparator + "\n\n")
		result.BooksProcessed++
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write notes bundle: %w", err)
	}
	return result, nil
}

type notesGroup struct {
	author  string
	title   string
	records []entities.ClippingRecord
}

// groupSorted orders records by author, title, then date (undated last)
// and groups them per book.
func groupSorted(records []entities.ClippingRecord) []notesGroup {
	sorted := make([]entities.ClippingRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Author != sorted[j].Author {
			return sorted[i].Author < sorted[j].Author
		}
		if sorted[i].Title != sorted[j].Title {
			return sorted[i].Title < sorted[j].Title
		}
		di, dj := sorted[i].AddedAt, sorted[j].AddedAt
		if di == nil || dj == nil {
			return dj == nil && di != nil
		}
		return di.Before(*dj)
	})

	var groups []notesGroup
	for _, record := range sorted {
		n := len(groups)
		if n == 0 || groups[n-1].author != record.Author || groups[n-1].title != record.Title {
			groups = append(groups, notesGroup{author: record.Author, title: record.Title})
			n++
		}
		groups[n-1].records = append(groups[n-1].records, record)
	}
	return groups
}

func dateRange(records []entities.ClippingRecord) string {
	var min, max *time.Time
	for _, record := range records {
		if record.AddedAt == nil {
			continue
		}
		if min == nil || record.AddedAt.Before(*min) {
			min = record.AddedAt
		}
		if max == nil || record.AddedAt.After(*max) {
			max = record.AddedAt
		}
	}

	if min == nil {
		return "Fechas desconocidas"
	}
	return min.Format(entities.NotesDateLayout) + " - " + max.Format(entities.NotesDateLayout)
}
