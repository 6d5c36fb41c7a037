package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetrack/internal/domain"
	apperrors "timetrack/internal/errors"
	"timetrack/internal/services"
)

// EntryHandler exposes the time entry CRUD, listing, search and bulk
// endpoints.
type EntryHandler struct {
	entries services.EntryService
	logger  *zap.SugaredLogger
}

func NewEntryHandler(entries services.EntryService, logger *zap.SugaredLogger) *EntryHandler {
	return &EntryHandler{entries: entries, logger: logger}
}

type bulkRequest struct {
	Action       string                       `json:"action"`
	TimeEntryIDs []int64                      `json:"time_entry_ids"`
	Data         *services.UpdateEntryRequest `json:"data,omitempty"`
}

type searchResponse struct {
	Data       []domain.TimeEntryWithDetails `json:"data"`
	Query      string                        `json:"query"`
	Pagination domain.Pagination             `json:"pagination"`
}

// parseEntryFilter reads the shared listing filters from query parameters.
func parseEntryFilter(c *gin.Context) (domain.EntryFilter, error) {
	var filter domain.EntryFilter

	startDate, err := parseDateQuery(c, "start_date", false)
	if err != nil {
		return filter, err
	}
	endDate, err := parseDateQuery(c, "end_date", true)
	if err != nil {
		return filter, err
	}
	projectID, err := parseIDQuery(c, "project_id")
	if err != nil {
		return filter, err
	}
	taskID, err := parseIDQuery(c, "task_id")
	if err != nil {
		return filter, err
	}
	page, err := parseIntQuery(c, "page")
	if err != nil {
		return filter, err
	}
	limit, err := parseIntQuery(c, "limit")
	if err != nil {
		return filter, err
	}

	filter.StartDate = startDate
	filter.EndDate = endDate
	filter.ProjectID = projectID
	filter.TaskID = taskID
	filter.Status = domain.EntryStatusFilter(c.DefaultQuery("status", string(domain.EntryStatusAll)))
	filter.Page = page
	filter.Limit = limit
	return filter, nil
}

// List returns one page of the filtered entry listing.
func (h *EntryHandler) List(c *gin.Context) {
	filter, err := parseEntryFilter(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, err := h.entries.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Search runs a free-text listing over descriptions, task and project names.
func (h *EntryHandler) Search(c *gin.Context) {
	filter, err := parseEntryFilter(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	filter.Query = c.Query("q")

	page, err := h.entries.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, searchResponse{
		Data:       page.Data,
		Query:      filter.Query,
		Pagination: page.Pagination,
	})
}

// Create inserts a manual time entry.
func (h *EntryHandler) Create(c *gin.Context) {
	var req services.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("body", nil, "invalid JSON body"))
		return
	}

	entry, err := h.entries.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update applies a partial update to one entry.
func (h *EntryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req services.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("body", nil, "invalid JSON body"))
		return
	}

	entry, err := h.entries.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete removes one entry.
func (h *EntryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.entries.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "time entry deleted"})
}

// Bulk applies stop, delete or update over a list of entry ids.
func (h *EntryHandler) Bulk(c *gin.Context) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("body", nil, "invalid JSON body"))
		return
	}

	result, err := h.entries.Bulk(c.Request.Context(), services.BulkAction(req.Action), req.TimeEntryIDs, req.Data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
