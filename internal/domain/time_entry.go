package domain

import (
	"time"
)

// TimeEntry represents a time tracking entry in the domain model.
// A nil EndTime means the entry is running; EndTime and Duration are set
// together when it stops, with Duration = floor(EndTime - StartTime) in
// whole seconds.
type TimeEntry struct {
	ID          int64      `json:"id"`
	TaskID      int64      `json:"task_id"`
	Description *string    `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Duration    *int64     `json:"duration,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTimeEntry creates a new running TimeEntry for the given task.
func NewTimeEntry(taskID int64, startTime time.Time) TimeEntry {
	return TimeEntry{
		TaskID:    taskID,
		StartTime: startTime,
	}
}

// DurationBetween computes the stored duration for a completed entry:
// whole seconds between start and end, truncated.
func DurationBetween(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Second)
}

// IsRunning returns true if the time entry is currently running (no end time).
func (te TimeEntry) IsRunning() bool {
	return te.EndTime == nil
}

// Stop returns a copy of the entry completed at endTime, with the
// duration computed from the start time.
func (te TimeEntry) Stop(endTime time.Time) TimeEntry {
	duration := DurationBetween(te.StartTime, endTime)
	te.EndTime = &endTime
	te.Duration = &duration
	return te
}

// DurationSeconds returns the stored duration, treating a running entry as zero.
func (te TimeEntry) DurationSeconds() int64 {
	if te.Duration == nil {
		return 0
	}
	return *te.Duration
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.TaskID <= 0 {
		return false
	}
	if te.StartTime.IsZero() {
		return false
	}
	if te.EndTime != nil && te.EndTime.Before(te.StartTime) {
		return false
	}
	// end_time and duration are set together or not at all
	if (te.EndTime == nil) != (te.Duration == nil) {
		return false
	}
	if te.Duration != nil && *te.Duration < 0 {
		return false
	}
	return true
}

// TimeEntryWithDetails is a TimeEntry joined with denormalised task and
// project display fields for list, search and report responses.
type TimeEntryWithDetails struct {
	TimeEntry
	TaskName     string `json:"task_name"`
	ProjectID    int64  `json:"project_id"`
	ProjectName  string `json:"project_name"`
	ProjectColor string `json:"project_color"`
}
