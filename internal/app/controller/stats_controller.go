package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/internal/app/service"
	apperrors "github.com/jmlee/storefront-backend/internal/errors"
	"github.com/jmlee/storefront-backend/internal/middleware"
)

type StatsController struct {
	visitorService service.VisitorService
}

func NewStatsController(visitorService service.VisitorService) *StatsController {
	return &StatsController{
		visitorService: visitorService,
	}
}

type RecordVisitRequest struct {
	Path     string `json:"path" binding:"required"`
	Referrer string `json:"referrer"`
}

// RecordVisit appends a page-visit record; classification comes from the
// request's own headers
// POST /api/v1/visits
func (ctrl *StatsController) RecordVisit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RecordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid visit record request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Path is required")
		return
	}

	referrer := req.Referrer
	if referrer == "" {
		referrer = c.GetHeader("Referer")
	}

	err := ctrl.visitorService.RecordVisit(
		req.Path,
		c.Request.UserAgent(),
		referrer,
		c.ClientIP(),
	)
	if err != nil {
		// The storefront should not surface analytics failures to
		// shoppers; log and report success-shaped no-op.
		log.Error("Failed to record visit", err, map[string]interface{}{
			"path": req.Path,
		})
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Visit recorded",
	})
}

// GetStats returns aggregate visitor statistics (admin only)
// GET /api/v1/admin/stats
func (ctrl *StatsController) GetStats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stats, err := ctrl.visitorService.GetStats()
	if err != nil {
		log.Error("Failed to build visitor statistics", err, nil)
		apperrors.InternalError(c, "Failed to fetch statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
	})
}
