package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/readstats/kindle-analytics/internal/clippings"
	"github.com/readstats/kindle-analytics/internal/config"
	"github.com/readstats/kindle-analytics/internal/entities"
)

const maxClippingsFileSize = 10 * 1024 * 1024 // 10 MB

// uploadError is a user-facing problem with the uploaded form itself.
type uploadError struct {
	status  int
	message string
}

func (e *uploadError) Error() string {
	return e.message
}

// readClippingsUpload pulls the clippings file out of the multipart form
// and parses it into records. Returns an uploadError for form problems.
func readClippingsUpload(ctx *gin.Context) ([]entities.ClippingRecord, *multipart.FileHeader, error) {
	file, header, err := ctx.Request.FormFile("clippings_file")
	if err != nil {
		return nil, nil, &uploadError{
			status:  http.StatusBadRequest,
			message: "Clippings file not provided",
		}
	}
	defer file.Close()

	if header.Size > maxClippingsFileSize {
		return nil, nil, &uploadError{
			status:  http.StatusBadRequest,
			message: fmt.Sprintf("File too large (max %d MB)", maxClippingsFileSize/(1024*1024)),
		}
	}

	limitedReader := io.LimitReader(file, maxClippingsFileSize+1)

	parser := clippings.NewParser()
	records, err := parser.Parse(limitedReader)
	if err != nil {
		return nil, nil, &uploadError{
			status:  http.StatusBadRequest,
			message: fmt.Sprintf("Failed to read clippings: %v", err),
		}
	}

	return records, header, nil
}

// inactivityDaysFrom reads the optional inactivity_days form value,
// falling back to the configured default and clamping to the valid range.
func inactivityDaysFrom(ctx *gin.Context, fallback int) int {
	raw := ctx.PostForm("inactivity_days")
	if raw == "" {
		return fallback
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return config.ClampInactivityDays(days)
}
