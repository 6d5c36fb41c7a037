package sqlite

import "time"

// Project represents a row in the projects table
type Project struct {
	ID          int64
	Name        string
	Description *string
	Color       string
	BillingRate *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Task represents a row in the tasks table
type Task struct {
	ID          int64
	ProjectID   int64
	Name        string
	Description *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskWithStats is a task row joined with project display fields and the
// summed duration of its time entries
type TaskWithStats struct {
	Task
	ProjectName   string
	ProjectColor  string
	TotalDuration int64
}

// TimeEntry represents a row in the time_entries table
// EndTime and Duration use pointers to allow NULL values for running entries
type TimeEntry struct {
	ID          int64
	TaskID      int64
	Description *string
	StartTime   time.Time
	EndTime     *time.Time
	Duration    *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TimeEntryDetails is a time entry row joined with its task and project
type TimeEntryDetails struct {
	TimeEntry
	TaskName     string
	ProjectID    int64
	ProjectName  string
	ProjectColor string
}

// EntryQuery contains all possible filter parameters for time entry
// listings. Set fields are combined with AND semantics; StartDate and
// EndDate bound the entry start_time.
type EntryQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	ProjectID *int64
	TaskID    *int64
	Text      *string
	Status    string // "active", "completed" or "" for all
	Limit     int
	Offset    int
}

// EntryStats holds aggregate counters over a filtered set of time entries
type EntryStats struct {
	TotalEntries     int64    `json:"total_entries"`
	ActiveEntries    int64    `json:"active_entries"`
	CompletedEntries int64    `json:"completed_entries"`
	TotalDuration    int64    `json:"total_duration"`
	AvgDuration      *float64 `json:"avg_duration"`
}

// ProjectTotalsRow holds summed durations grouped by project
type ProjectTotalsRow struct {
	ProjectID     int64
	ProjectName   string
	ProjectColor  string
	TotalDuration int64
	EntryCount    int64
}

// TaskTotalsRow holds summed durations grouped by task
type TaskTotalsRow struct {
	TaskID        int64
	TaskName      string
	ProjectName   string
	ProjectColor  string
	TotalDuration int64
	EntryCount    int64
}
