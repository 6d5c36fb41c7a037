package domain

import "time"

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	TaskStatusActive    TaskStatus = "active"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusPaused    TaskStatus = "paused"
)

// IsValid checks if the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusActive, TaskStatusCompleted, TaskStatusPaused:
		return true
	}
	return false
}

// Task represents a unit of work under a project in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"project_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new active Task under the given project.
func NewTask(projectID int64, name string) Task {
	return Task{
		ProjectID: projectID,
		Name:      name,
		Status:    TaskStatusActive,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ProjectID > 0 && t.Name != "" && t.Status.IsValid()
}

// TaskWithStats is a Task joined with project display fields and the sum
// of its entry durations. TotalDuration is derived, never stored.
type TaskWithStats struct {
	Task
	ProjectName   string `json:"project_name"`
	ProjectColor  string `json:"project_color"`
	TotalDuration int64  `json:"total_duration"`
}

// TaskTotals represents aggregated time for a single task.
type TaskTotals struct {
	TaskID        int64  `json:"task_id"`
	TaskName      string `json:"task_name"`
	ProjectName   string `json:"project_name"`
	ProjectColor  string `json:"project_color"`
	TotalDuration int64  `json:"total_duration"`
	EntryCount    int64  `json:"entry_count"`
}
