package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "timetrack/internal/errors"
	"timetrack/internal/services"
)

// TaskHandler exposes the task CRUD endpoints.
type TaskHandler struct {
	tasks  services.TaskService
	logger *zap.SugaredLogger
}

func NewTaskHandler(tasks services.TaskService, logger *zap.SugaredLogger) *TaskHandler {
	return &TaskHandler{tasks: tasks, logger: logger}
}

// List returns all tasks, or the tasks of one project when project_id is set.
func (h *TaskHandler) List(c *gin.Context) {
	projectID, err := parseIDQuery(c, "project_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var tasks interface{}
	if projectID != nil {
		tasks, err = h.tasks.ListByProject(c.Request.Context(), *projectID)
	} else {
		tasks, err = h.tasks.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Get returns one task.
func (h *TaskHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create inserts a task under an existing project.
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("body", nil, "invalid JSON body"))
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update applies a partial update to one task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req services.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperrors.NewInvalidInputError("body", nil, "invalid JSON body"))
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete removes a task and its time entries.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
