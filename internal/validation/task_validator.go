package validation

import (
	"timetrack/internal/domain"
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskForCreation validates task fields for creation
func (tv *TaskValidator) ValidateTaskForCreation(projectID int64, name string, status domain.TaskStatus) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidID(projectID) {
		validationError.AddInvalidValueError("project_id", projectID, "must be a positive integer")
	}

	trimmed := tv.validator.TrimAndValidateString(name)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("name")
	} else if !tv.validator.IsValidStringLength(trimmed, 1, NameMaxLength) {
		validationError.AddInvalidLengthError("name", name, 1, NameMaxLength)
	}

	if status != "" && !status.IsValid() {
		validationError.AddInvalidValueError("status", status, "must be one of active, completed, paused")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateStatus validates a task status value
func (tv *TaskValidator) ValidateStatus(status domain.TaskStatus) error {
	if !status.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be one of active, completed, paused")
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
