package exporters

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/readstats/kindle-analytics/internal/entities"
)

// summaryHeader matches the columns of the on-screen progress table.
var summaryHeader = []string{
	"Autor", "Título", "Estado", "Días leyendo",
	"Fecha Inicio", "Fecha Fin / Última", "Max Locación", "Total Notas",
}

// CSVReportExporter serializes the per-book summary table.
type CSVReportExporter struct{}

func NewCSVReportExporter() *CSVReportExporter {
	return &CSVReportExporter{}
}

func (e *CSVReportExporter) Export(w io.Writer, summaries []entities.BookSummary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(summaryHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			summary.Author,
			summary.Title,
			summary.Status.DisplayName(),
			strconv.Itoa(summary.ReadingDays),
			summary.StartDisplay,
			summary.EndDisplay,
			strconv.Itoa(summary.MaxLocation),
			strconv.Itoa(summary.NoteCount),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
