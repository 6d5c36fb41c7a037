package validation

import (
	"time"

	"timetrack/internal/domain"
)

// TimeEntryValidator provides validation for TimeEntry-related operations
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a new time entry validator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{
		validator: NewValidator(),
	}
}

// ValidateTimeEntryForCreation validates a time entry for creation
func (tev *TimeEntryValidator) ValidateTimeEntryForCreation(taskID int64, startTime time.Time, endTime *time.Time) error {
	validationError := NewValidationError()

	// Validate task ID
	if !tev.validator.IsValidID(taskID) {
		validationError.AddInvalidValueError("task_id", taskID, "must be a positive integer")
	}

	// Validate start time
	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else if !tev.validator.IsReasonableDate(startTime) {
		validationError.AddInvalidValueError("start_time", startTime, "must be within reasonable date range")
	}

	// Validate end time if provided
	if endTime != nil {
		if !tev.validator.IsReasonableDate(*endTime) {
			validationError.AddInvalidValueError("end_time", *endTime, "must be within reasonable date range")
		}

		if !tev.validator.IsValidTimeRange(startTime, endTime) {
			validationError.AddInvalidRangeError("time_range", map[string]time.Time{
				"start": startTime,
				"end":   *endTime,
			}, "end time must not be before start time")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateFilter validates the filter parameters of an entry listing
func (tev *TimeEntryValidator) ValidateFilter(filter domain.EntryFilter) error {
	validationError := NewValidationError()

	// A date range needs both ends
	if (filter.StartDate == nil) != (filter.EndDate == nil) {
		validationError.AddRequiredError("date_range")
	}

	if !tev.validator.IsValidDateRange(filter.StartDate, filter.EndDate) {
		validationError.AddInvalidRangeError("date_range", map[string]interface{}{
			"start": filter.StartDate,
			"end":   filter.EndDate,
		}, "end date must be after or equal to start date")
	}

	if filter.ProjectID != nil && !tev.validator.IsValidID(*filter.ProjectID) {
		validationError.AddInvalidValueError("project_id", *filter.ProjectID, "must be a positive integer")
	}

	if filter.TaskID != nil && !tev.validator.IsValidID(*filter.TaskID) {
		validationError.AddInvalidValueError("task_id", *filter.TaskID, "must be a positive integer")
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		validationError.AddInvalidValueError("status", filter.Status, "must be one of all, active, completed")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSearchQuery validates a free-text search query
func (tev *TimeEntryValidator) ValidateSearchQuery(query string) error {
	trimmed := tev.validator.TrimAndValidateString(query)
	if len(trimmed) < SearchQueryMinLength {
		validationError := NewValidationError()
		validationError.AddInvalidLengthError("q", query, SearchQueryMinLength, NameMaxLength)
		return validationError
	}
	return nil
}

// ValidateTimeEntryID validates a time entry ID
func (tev *TimeEntryValidator) ValidateTimeEntryID(id int64) error {
	if !tev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("time_entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
