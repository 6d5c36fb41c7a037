package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "timetrack/internal/errors"
	"timetrack/internal/services"
)

// StatsHandler exposes the statistics and invoice endpoints.
type StatsHandler struct {
	stats  services.StatsService
	logger *zap.SugaredLogger
}

func NewStatsHandler(stats services.StatsService, logger *zap.SugaredLogger) *StatsHandler {
	return &StatsHandler{stats: stats, logger: logger}
}

// Overview serves period totals by default; type=projects or type=tasks
// switches to grouped totals.
func (h *StatsHandler) Overview(c *gin.Context) {
	switch c.Query("type") {
	case "":
		totals, err := h.stats.PeriodTotals(c.Request.Context())
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, totals)
	case "projects":
		totals, err := h.stats.ProjectTotals(c.Request.Context())
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, totals)
	case "tasks":
		totals, err := h.stats.TaskTotals(c.Request.Context())
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, totals)
	default:
		respondError(c, h.logger, apperrors.NewInvalidInputError("type", c.Query("type"), "must be projects or tasks"))
	}
}

// EntryStats serves aggregate counters over a filtered entry set.
func (h *StatsHandler) EntryStats(c *gin.Context) {
	projectID, err := parseIDQuery(c, "project_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	dateRange, err := parseDateRangeQuery(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	stats, err := h.stats.EntryStats(c.Request.Context(), projectID, dateRange)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Invoice serves the billable summary for a project over a date range.
// Project and range are required.
func (h *StatsHandler) Invoice(c *gin.Context) {
	projectID, err := parseIDQuery(c, "project_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if projectID == nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("project_id", nil, "required"))
		return
	}

	dateRange, err := parseDateRangeQuery(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if dateRange == nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("start_date", nil, "start_date and end_date are required"))
		return
	}

	invoice, err := h.stats.Invoice(c.Request.Context(), *projectID, *dateRange)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// parseDateRangeQuery reads start_date and end_date together; one without
// the other is an error.
func parseDateRangeQuery(c *gin.Context) (*services.DateRange, error) {
	start, err := parseDateQuery(c, "start_date", false)
	if err != nil {
		return nil, err
	}
	end, err := parseDateQuery(c, "end_date", true)
	if err != nil {
		return nil, err
	}
	if start == nil && end == nil {
		return nil, nil
	}
	if start == nil || end == nil {
		return nil, apperrors.NewInvalidInputError("date_range", nil, "start_date and end_date must be supplied together")
	}
	return &services.DateRange{StartDate: *start, EndDate: *end}, nil
}
