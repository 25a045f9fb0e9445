package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/readstats/kindle-analytics/internal/database"
)

type ImportsController struct {
	db *database.Database
}

func NewImportsController(db *database.Database) *ImportsController {
	return &ImportsController{db: db}
}

func (c *ImportsController) List(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	sessions, err := c.db.ListImportSessions(limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"imports": sessions})
}

func (c *ImportsController) Get(ctx *gin.Context) {
	session, err := c.db.GetImportSession(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "import session not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, session)
}
