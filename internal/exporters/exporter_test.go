package exporters

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readstats/kindle-analytics/internal/entities"
)

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// --- CSVReportExporter tests ---

func TestCSVReportExporter(t *testing.T) {
	t.Run("writes header and one row per summary", func(t *testing.T) {
		summaries := []entities.BookSummary{
			{
				Author:       "Author X",
				Title:        "Book A",
				Status:       entities.StatusCompleted,
				ReadingDays:  9,
				StartDisplay: "2024-01-01",
				EndDisplay:   "2024-01-10",
				MaxLocation:  200,
				NoteCount:    2,
			},
			{
				Author:       "Author Y",
				Title:        "Book B",
				Status:       entities.StatusReading,
				StartDisplay: "N/A",
				EndDisplay:   "N/A",
			},
		}

		var buf bytes.Buffer
		err := NewCSVReportExporter().Export(&buf, summaries)
		require.NoError(t, err)

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, []string{
			"Autor", "Título", "Estado", "Días leyendo",
			"Fecha Inicio", "Fecha Fin / Última", "Max Locación", "Total Notas",
		}, rows[0])
		assert.Equal(t, []string{
			"Author X", "Book A", "Completado", "9",
			"2024-01-01", "2024-01-10", "200", "2",
		}, rows[1])
		assert.Equal(t, "Leyendo actualmente", rows[2][2])
	})

	t.Run("empty summary list yields only the header", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewCSVReportExporter().Export(&buf, nil)
		require.NoError(t, err)

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

// --- NotesExporter tests ---

func TestNotesExporter(t *testing.T) {
	records := []entities.ClippingRecord{
		{Author: "Zavala", Title: "Last Book", AddedAt: day(2024, time.March, 3), Text: "z-note"},
		{Author: "Alonso", Title: "First Book", AddedAt: day(2024, time.January, 10), Text: "later note"},
		{Author: "Alonso", Title: "First Book", AddedAt: day(2024, time.January, 2), Text: "earlier note"},
	}

	t.Run("groups by author and title with date range", func(t *testing.T) {
		exporter := NewNotesExporter(false)

		var buf bytes.Buffer
		result, err := exporter.Export(&buf, records)
		require.NoError(t, err)

		assert.Equal(t, 2, result.BooksProcessed)
		assert.Equal(t, 3, result.NotesProcessed)

		output := buf.String()
		assert.Contains(t, output, "Título del libro: First Book")
		assert.Contains(t, output, "Autor: Alonso")
		assert.Contains(t, output, "Estimado de fechas de lectura: 02/01/2024 - 10/01/2024")
		assert.Contains(t, output, "\"earlier note\"")

		// Authors sort alphabetically, notes within a book by date.
		assert.Less(t, strings.Index(output, "Alonso"), strings.Index(output, "Zavala"))
		assert.Less(t, strings.Index(output, "earlier note"), strings.Index(output, "later note"))
	})

	t.Run("includes generation header when enabled", func(t *testing.T) {
		exporter := NewNotesExporter(true)
		exporter.Now = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

		var buf bytes.Buffer
		_, err := exporter.Export(&buf, records)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(buf.String(), "Export generado el: 20/05/2024\n"))
	})

	t.Run("undated books get the unknown-range sentinel", func(t *testing.T) {
		undated := []entities.ClippingRecord{
			{Author: "Author", Title: "No Dates", Text: "note"},
		}

		var buf bytes.Buffer
		_, err := NewNotesExporter(false).Export(&buf, undated)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "Estimado de fechas de lectura: Fechas desconocidas")
	})
}

// --- BaseFilename tests ---

func TestBaseFilename(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("uses newest record date", func(t *testing.T) {
		records := []entities.ClippingRecord{
			{AddedAt: day(2024, time.January, 5)},
			{AddedAt: day(2024, time.March, 20)},
		}

		assert.Equal(t, "2024-03-20_Kindle", BaseFilename(records, now))
	})

	t.Run("falls back to now when nothing is dated", func(t *testing.T) {
		records := []entities.ClippingRecord{{Text: "undated"}}

		assert.Equal(t, "2024-06-01_Kindle", BaseFilename(records, now))
	})
}
