package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/readstats/kindle-analytics/internal/exporters"
	"github.com/readstats/kindle-analytics/internal/status"
)

type ExportController struct {
	inactivityDays int
	clock          func() time.Time
}

func NewExportController(inactivityDays int) *ExportController {
	return &ExportController{
		inactivityDays: inactivityDays,
		clock:          time.Now,
	}
}

type ExportError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Report serves the summary table as a CSV download.
func (c *ExportController) Report(ctx *gin.Context) {
	records, _, err := readClippingsUpload(ctx)
	if err != nil {
		uploadErr := err.(*uploadError)
		ctx.JSON(uploadErr.status, &ExportError{Error: uploadErr.message})
		return
	}

	if len(records) == 0 {
		ctx.JSON(http.StatusOK, &ExportError{Error: "No se encontraron datos."})
		return
	}

	summaries := status.Reconcile(records, status.Options{
		InactivityDays: inactivityDaysFrom(ctx, c.inactivityDays),
		Now:            c.clock(),
	})

	var buf bytes.Buffer
	exporter := exporters.NewCSVReportExporter()
	if err := exporter.Export(&buf, summaries); err != nil {
		ctx.JSON(http.StatusInternalServerError, &ExportError{
			Error: fmt.Sprintf("Failed to build report: %v", err),
		})
		return
	}

	filename := exporters.BaseFilename(records, c.clock()) + "_Reporte.csv"
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Notes serves all highlights as a single plain-text bundle.
func (c *ExportController) Notes(ctx *gin.Context) {
	records, _, err := readClippingsUpload(ctx)
	if err != nil {
		uploadErr := err.(*uploadError)
		ctx.JSON(uploadErr.status, &ExportError{Error: uploadErr.message})
		return
	}

	if len(records) == 0 {
		ctx.JSON(http.StatusOK, &ExportError{Error: "No se encontraron datos."})
		return
	}

	includeHeader := ctx.DefaultPostForm("include_header", "true") == "true"

	var buf bytes.Buffer
	exporter := exporters.NewNotesExporter(includeHeader)
	if _, err := exporter.Export(&buf, records); err != nil {
		ctx.JSON(http.StatusInternalServerError, &ExportError{
			Error: fmt.Sprintf("Failed to build notes bundle: %v", err),
		})
		return
	}

	filename := exporters.BaseFilename(records, c.clock()) + "_Notas.txt"
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
