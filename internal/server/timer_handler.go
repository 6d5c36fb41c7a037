package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "timetrack/internal/errors"
	"timetrack/internal/services"
)

// TimerHandler exposes the start/stop/active timer endpoints.
type TimerHandler struct {
	timer  services.TimerService
	logger *zap.SugaredLogger
}

func NewTimerHandler(timer services.TimerService, logger *zap.SugaredLogger) *TimerHandler {
	return &TimerHandler{timer: timer, logger: logger}
}

type startTimerRequest struct {
	TaskID      int64   `json:"task_id"`
	Description *string `json:"description,omitempty"`
}

type stopTimerRequest struct {
	TimeEntryID int64 `json:"time_entry_id"`
}

// Active returns all running entries with task and project details.
func (h *TimerHandler) Active(c *gin.Context) {
	entries, err := h.timer.Active(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Start begins a running entry for a task.
func (h *TimerHandler) Start(c *gin.Context) {
	var req startTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("body", nil, "invalid JSON body"))
		return
	}

	entry, err := h.timer.Start(c.Request.Context(), req.TaskID, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Stop completes the running entry named in the body.
func (h *TimerHandler) Stop(c *gin.Context) {
	var req stopTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("body", nil, "invalid JSON body"))
		return
	}

	entry, err := h.timer.Stop(c.Request.Context(), req.TimeEntryID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
