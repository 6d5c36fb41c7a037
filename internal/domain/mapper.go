package domain

import (
	"timetrack/internal/repository/sqlite"
)

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(p Project) sqlite.Project {
	return sqlite.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		BillingRate: p.BillingRate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(p sqlite.Project) Project {
	return Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		BillingRate: p.BillingRate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []Project {
	projects := make([]Project, len(dbProjects))
	for i, p := range dbProjects {
		projects[i] = m.FromDatabase(*p)
	}
	return projects
}

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(t Task) sqlite.Task {
	return sqlite.Task{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(t sqlite.Task) Task {
	return Task{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		Description: t.Description,
		Status:      TaskStatus(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// StatsFromDatabase converts a database TaskWithStats to a domain TaskWithStats.
func (m *TaskMapper) StatsFromDatabase(t sqlite.TaskWithStats) TaskWithStats {
	return TaskWithStats{
		Task:          m.FromDatabase(t.Task),
		ProjectName:   t.ProjectName,
		ProjectColor:  t.ProjectColor,
		TotalDuration: t.TotalDuration,
	}
}

// StatsFromDatabaseSlice converts a slice of database TaskWithStats to domain models.
func (m *TaskMapper) StatsFromDatabaseSlice(dbTasks []*sqlite.TaskWithStats) []TaskWithStats {
	tasks := make([]TaskWithStats, len(dbTasks))
	for i, t := range dbTasks {
		tasks[i] = m.StatsFromDatabase(*t)
	}
	return tasks
}

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *TimeEntryMapper) ToDatabase(e TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		ID:          e.ID,
		TaskID:      e.TaskID,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Duration:    e.Duration,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(e sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:          e.ID,
		TaskID:      e.TaskID,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Duration:    e.Duration,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []TimeEntry {
	entries := make([]TimeEntry, len(dbEntries))
	for i, e := range dbEntries {
		entries[i] = m.FromDatabase(*e)
	}
	return entries
}

// DetailsFromDatabase converts a database TimeEntryDetails to a domain TimeEntryWithDetails.
func (m *TimeEntryMapper) DetailsFromDatabase(e sqlite.TimeEntryDetails) TimeEntryWithDetails {
	return TimeEntryWithDetails{
		TimeEntry:    m.FromDatabase(e.TimeEntry),
		TaskName:     e.TaskName,
		ProjectID:    e.ProjectID,
		ProjectName:  e.ProjectName,
		ProjectColor: e.ProjectColor,
	}
}

// DetailsFromDatabaseSlice converts a slice of database TimeEntryDetails to domain models.
func (m *TimeEntryMapper) DetailsFromDatabaseSlice(dbEntries []*sqlite.TimeEntryDetails) []TimeEntryWithDetails {
	entries := make([]TimeEntryWithDetails, len(dbEntries))
	for i, e := range dbEntries {
		entries[i] = m.DetailsFromDatabase(*e)
	}
	return entries
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Project   *ProjectMapper
	Task      *TaskMapper
	TimeEntry *TimeEntryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Project:   NewProjectMapper(),
		Task:      NewTaskMapper(),
		TimeEntry: NewTimeEntryMapper(),
	}
}
