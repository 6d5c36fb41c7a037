package services

import (
	"context"
	"time"

	"timetrack/internal/domain"
)

// Listing and search page sizes. Limits above the maximum are clamped,
// not rejected.
const (
	DefaultListLimit   = 50
	MaxListLimit       = 100
	DefaultSearchLimit = 20
	MaxSearchLimit     = 50
)

// CreateEntryRequest carries the fields for creating a manual time entry.
// EndTime and Duration are optional; omitting both creates a running entry.
type CreateEntryRequest struct {
	TaskID      int64      `json:"task_id"`
	Description *string    `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Duration    *int64     `json:"duration,omitempty"`
}

// UpdateEntryRequest carries a partial update; nil fields are left unchanged.
type UpdateEntryRequest struct {
	TaskID      *int64     `json:"task_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Duration    *int64     `json:"duration,omitempty"`
}

// BulkAction enumerates the operations a bulk request may apply.
type BulkAction string

const (
	BulkActionStop   BulkAction = "stop"
	BulkActionDelete BulkAction = "delete"
	BulkActionUpdate BulkAction = "update"
)

// IsValid checks if the action is one of the known values.
func (a BulkAction) IsValid() bool {
	switch a {
	case BulkActionStop, BulkActionDelete, BulkActionUpdate:
		return true
	}
	return false
}

// BulkItemResult reports one successfully processed id.
type BulkItemResult struct {
	ID      int64             `json:"id"`
	Success bool              `json:"success"`
	Data    *domain.TimeEntry `json:"data,omitempty"`
}

// BulkItemError reports one failed id.
type BulkItemError struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// BulkSummary counts the outcome of a bulk operation.
type BulkSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BulkResult is the per-id breakdown of a best-effort bulk operation.
// Success is true only when every id succeeded.
type BulkResult struct {
	Success bool             `json:"success"`
	Results []BulkItemResult `json:"results"`
	Errors  []BulkItemError  `json:"errors"`
	Summary BulkSummary      `json:"summary"`
}

// EntryPage is one page of a filtered entry listing.
type EntryPage struct {
	Data       []domain.TimeEntryWithDetails `json:"data"`
	Pagination domain.Pagination             `json:"pagination"`
}

// PeriodTotals holds the summed durations for the current day and the
// current week (weeks start Monday 00:00, server-local time).
type PeriodTotals struct {
	Today    int64 `json:"today"`
	ThisWeek int64 `json:"this_week"`
}

// DateRange is an inclusive start/end pair bounding entry start times.
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// EntryStatistics holds aggregate counters over a filtered entry set.
type EntryStatistics struct {
	TotalEntries     int64      `json:"total_entries"`
	ActiveEntries    int64      `json:"active_entries"`
	CompletedEntries int64      `json:"completed_entries"`
	TotalDuration    int64      `json:"total_duration"`
	AvgDuration      *float64   `json:"avg_duration"`
	DateRange        *DateRange `json:"date_range,omitempty"`
}

// Invoice is the computed billable summary for a project over a date range.
type Invoice struct {
	TotalHours  float64                       `json:"totalHours"`
	TotalAmount float64                       `json:"totalAmount"`
	Entries     []domain.TimeEntryWithDetails `json:"entries"`
}

// CreateProjectRequest carries the fields for creating a project.
type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Color       string   `json:"color,omitempty"`
	BillingRate *float64 `json:"billing_rate,omitempty"`
}

// UpdateProjectRequest carries a partial project update.
type UpdateProjectRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Color       *string  `json:"color,omitempty"`
	BillingRate *float64 `json:"billing_rate,omitempty"`
}

// CreateTaskRequest carries the fields for creating a task.
type CreateTaskRequest struct {
	ProjectID   int64             `json:"project_id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Status      domain.TaskStatus `json:"status,omitempty"`
}

// UpdateTaskRequest carries a partial task update.
type UpdateTaskRequest struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Status      *domain.TaskStatus `json:"status,omitempty"`
}

// TimerService owns the start/stop lifecycle of running entries. The set
// of active timers is always derived from entries with a NULL end time,
// never cached.
type TimerService interface {
	Start(ctx context.Context, taskID int64, description *string) (*domain.TimeEntry, error)
	Stop(ctx context.Context, entryID int64) (*domain.TimeEntry, error)
	Active(ctx context.Context) ([]domain.TimeEntryWithDetails, error)
}

// EntryService owns manual creation, editing, deletion, listing, search
// and bulk operations for time entries.
type EntryService interface {
	Create(ctx context.Context, req CreateEntryRequest) (*domain.TimeEntry, error)
	Get(ctx context.Context, id int64) (*domain.TimeEntry, error)
	Update(ctx context.Context, id int64, req UpdateEntryRequest) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.EntryFilter) (*EntryPage, error)
	Search(ctx context.Context, filter domain.EntryFilter) (*EntryPage, error)
	Bulk(ctx context.Context, action BulkAction, ids []int64, data *UpdateEntryRequest) (*BulkResult, error)
}

// StatsService computes derived statistics by summing durations over
// filtered sets of time entries.
type StatsService interface {
	PeriodTotals(ctx context.Context) (*PeriodTotals, error)
	ProjectTotals(ctx context.Context) ([]domain.ProjectTotals, error)
	TaskTotals(ctx context.Context) ([]domain.TaskTotals, error)
	EntryStats(ctx context.Context, projectID *int64, dateRange *DateRange) (*EntryStatistics, error)
	Invoice(ctx context.Context, projectID int64, dateRange DateRange) (*Invoice, error)
}

// ProjectService handles project CRUD.
type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id int64, req UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// TaskService handles task CRUD.
type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.TaskWithStats, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.TaskWithStats, error)
	Update(ctx context.Context, id int64, req UpdateTaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Timer   TimerService
	Entries EntryService
	Stats   StatsService
	Project ProjectService
	Task    TaskService
}
