package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "timetrack/internal/errors"
	"timetrack/internal/validation"
)

// errorResponse is the uniform error body. Details carries per-field
// messages for validation failures.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// respondError translates service errors into HTTP responses. Unexpected
// errors are logged and reported as a generic 500.
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	if ve, ok := validation.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "validation failed",
			Details: ve.Details(),
		})
		return
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		if apperrors.ShouldLogError(appErr) {
			logger.Errorw("request failed",
				"requestID", c.GetString("requestID"),
				"code", appErr.Code,
				"error", appErr.Error(),
			)
		}
		c.JSON(appErr.Type.HTTPStatus(), errorResponse{Error: appErr.Message})
		return
	}

	logger.Errorw("request failed",
		"requestID", c.GetString("requestID"),
		"error", err.Error(),
	)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidInputError(name, c.Param(name), "must be a positive integer")
	}
	return id, nil
}

// parseIDQuery reads an optional positive integer query parameter.
func parseIDQuery(c *gin.Context, name string) (*int64, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewInvalidInputError(name, value, "must be a positive integer")
	}
	return &id, nil
}

// parseDateQuery reads an optional RFC3339 or YYYY-MM-DD query parameter.
// Date-only end bounds extend to the last second of that day.
func parseDateQuery(c *gin.Context, name string, endOfDay bool) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, apperrors.NewInvalidInputError(name, value, "must be RFC3339 or YYYY-MM-DD")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, nil
}

// parseIntQuery reads an optional integer query parameter, zero when absent.
func parseIntQuery(c *gin.Context, name string) (int, error) {
	value := c.Query(name)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewInvalidInputError(name, value, "must be an integer")
	}
	return n, nil
}
