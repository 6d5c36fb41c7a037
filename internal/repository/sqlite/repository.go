package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"timetrack/internal/errors"
	"timetrack/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id int64) error

	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*TaskWithStats, error)
	ListTasksByProject(ctx context.Context, projectID int64) ([]*TaskWithStats, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Time entry operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry) error
	GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error
	DeleteTimeEntry(ctx context.Context, id int64) error
	ListTimeEntries(ctx context.Context, q EntryQuery) ([]*TimeEntryDetails, error)
	CountTimeEntries(ctx context.Context, q EntryQuery) (int64, error)
	GetRunningEntryForTask(ctx context.Context, taskID int64) (*TimeEntry, error)

	// Aggregation operations
	SumDurations(ctx context.Context, start, end time.Time) (int64, error)
	EntryStats(ctx context.Context, q EntryQuery) (*EntryStats, error)
	ProjectTotals(ctx context.Context) ([]*ProjectTotalsRow, error)
	TaskTotals(ctx context.Context) ([]*TaskTotalsRow, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Cascade deletes rely on foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const projectColumns = "id, name, description, color, billing_rate, created_at, updated_at"

// CreateProject creates a new project
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `
	INSERT INTO projects (name, description, color, billing_rate, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	now := time.Now()
	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		project.Name, project.Description, project.Color, project.BillingRate,
		FormatTimeForDB(now), FormatTimeForDB(now))
	if err != nil {
		return err
	}

	project.ID = id
	project.CreatedAt = now
	project.UpdatedAt = now
	return nil
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id int64) (*Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id = ?", projectColumns)
	return QuerySingle(ctx, r.db, query, ScanProject, "project", fmt.Sprintf("%d", id), id)
}

// ListProjects retrieves all projects, newest first
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects ORDER BY created_at DESC", projectColumns)
	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// UpdateProject updates an existing project
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `
	UPDATE projects
	SET name = ?, description = ?, color = ?, billing_rate = ?, updated_at = ?
	WHERE id = ?`

	now := time.Now()
	err := ExecuteWithRowsAffected(ctx, r.db, query, "project", fmt.Sprintf("%d", project.ID),
		project.Name, project.Description, project.Color, project.BillingRate,
		FormatTimeForDB(now), project.ID)
	if err != nil {
		return err
	}

	project.UpdatedAt = now
	return nil
}

// DeleteProject deletes a project by ID, cascading to its tasks and entries
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", fmt.Sprintf("%d", id), id)
}

const taskColumns = "id, project_id, name, description, status, created_at, updated_at"

// taskStatsQuery joins tasks with their project and the summed duration of
// their entries. Running entries carry a NULL duration and sum as zero.
const taskStatsQuery = `
	SELECT t.id, t.project_id, t.name, t.description, t.status, t.created_at, t.updated_at,
	       p.name, p.color, SUM(te.duration)
	FROM tasks t
	JOIN projects p ON t.project_id = p.id
	LEFT JOIN time_entries te ON t.id = te.task_id`

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (project_id, name, description, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	now := time.Now()
	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.ProjectID, task.Name, task.Description, task.Status,
		FormatTimeForDB(now), FormatTimeForDB(now))
	if err != nil {
		return err
	}

	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = ?", taskColumns)
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks with project fields and total durations
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*TaskWithStats, error) {
	query := taskStatsQuery + `
	GROUP BY t.id
	ORDER BY t.created_at DESC`
	return QueryMultiple(ctx, r.db, query, ScanTasksWithStats, "tasks")
}

// ListTasksByProject retrieves the tasks of one project with total durations
func (r *SQLiteRepository) ListTasksByProject(ctx context.Context, projectID int64) ([]*TaskWithStats, error) {
	query := taskStatsQuery + `
	WHERE t.project_id = ?
	GROUP BY t.id
	ORDER BY t.created_at DESC`
	return QueryMultiple(ctx, r.db, query, ScanTasksWithStats, "tasks", projectID)
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET name = ?, description = ?, status = ?, updated_at = ?
	WHERE id = ?`

	now := time.Now()
	err := ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Name, task.Description, task.Status, FormatTimeForDB(now), task.ID)
	if err != nil {
		return err
	}

	task.UpdatedAt = now
	return nil
}

// DeleteTask deletes a task by ID, cascading to its time entries
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

const entryColumns = "id, task_id, description, start_time, end_time, duration, created_at, updated_at"

const entryDetailsSelect = `
	SELECT te.id, te.task_id, te.description, te.start_time, te.end_time, te.duration,
	       te.created_at, te.updated_at, t.name, p.id, p.name, p.color
	FROM time_entries te
	JOIN tasks t ON te.task_id = t.id
	JOIN projects p ON t.project_id = p.id`

// CreateTimeEntry creates a new time entry
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO time_entries (task_id, description, start_time, end_time, duration, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := time.Now()
	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		entry.TaskID, entry.Description, FormatTimeForDB(entry.StartTime),
		FormatTimePtrForDB(entry.EndTime), entry.Duration,
		FormatTimeForDB(now), FormatTimeForDB(now))
	if err != nil {
		return err
	}

	entry.ID = id
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return nil
}

// GetTimeEntry retrieves a time entry by ID
func (r *SQLiteRepository) GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	query := fmt.Sprintf("SELECT %s FROM time_entries WHERE id = ?", entryColumns)
	return QuerySingle(ctx, r.db, query, ScanTimeEntry, "time entry", fmt.Sprintf("%d", id), id)
}

// UpdateTimeEntry updates an existing time entry
func (r *SQLiteRepository) UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	UPDATE time_entries
	SET task_id = ?, description = ?, start_time = ?, end_time = ?, duration = ?, updated_at = ?
	WHERE id = ?`

	now := time.Now()
	err := ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", entry.ID),
		entry.TaskID, entry.Description, FormatTimeForDB(entry.StartTime),
		FormatTimePtrForDB(entry.EndTime), entry.Duration, FormatTimeForDB(now), entry.ID)
	if err != nil {
		return err
	}

	entry.UpdatedAt = now
	return nil
}

// DeleteTimeEntry deletes a time entry by ID
func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", id), id)
}

// buildEntryConditions translates an EntryQuery into a conjunctive WHERE
// clause over the joined entry/task/project rows
func buildEntryConditions(q EntryQuery) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if q.StartDate != nil {
		conditions = append(conditions, "te.start_time >= ?")
		args = append(args, FormatTimePtrForDB(q.StartDate))
	}
	if q.EndDate != nil {
		conditions = append(conditions, "te.start_time <= ?")
		args = append(args, FormatTimePtrForDB(q.EndDate))
	}
	if q.ProjectID != nil {
		conditions = append(conditions, "p.id = ?")
		args = append(args, *q.ProjectID)
	}
	if q.TaskID != nil {
		conditions = append(conditions, "te.task_id = ?")
		args = append(args, *q.TaskID)
	}

	switch q.Status {
	case "active":
		conditions = append(conditions, "te.end_time IS NULL")
	case "completed":
		conditions = append(conditions, "te.end_time IS NOT NULL")
	}

	// LIKE is case-insensitive for ASCII in SQLite
	if q.Text != nil && *q.Text != "" {
		conditions = append(conditions, "(te.description LIKE ? OR t.name LIKE ? OR p.name LIKE ?)")
		term := "%" + *q.Text + "%"
		args = append(args, term, term, term)
	}

	return conditions, args
}

// ListTimeEntries retrieves a filtered, paginated page of entries with details
func (r *SQLiteRepository) ListTimeEntries(ctx context.Context, q EntryQuery) ([]*TimeEntryDetails, error) {
	query := entryDetailsSelect
	conditions, args := buildEntryConditions(q)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY te.start_time DESC"
	if q.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, q.Limit, q.Offset)
	}

	return QueryMultiple(ctx, r.db, query, ScanTimeEntriesDetails, "time entries", args...)
}

// CountTimeEntries counts the entries matching the same filtered set as
// ListTimeEntries, ignoring pagination
func (r *SQLiteRepository) CountTimeEntries(ctx context.Context, q EntryQuery) (int64, error) {
	query := `
	SELECT COUNT(*)
	FROM time_entries te
	JOIN tasks t ON te.task_id = t.id
	JOIN projects p ON t.project_id = p.id`
	conditions, args := buildEntryConditions(q)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	return QueryValue[int64](ctx, r.db, query, "time entry count", args...)
}

// GetRunningEntryForTask retrieves the running entry of a task, or a not
// found error when the task has none
func (r *SQLiteRepository) GetRunningEntryForTask(ctx context.Context, taskID int64) (*TimeEntry, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM time_entries
	WHERE task_id = ? AND end_time IS NULL
	ORDER BY start_time DESC
	LIMIT 1`, entryColumns)

	return QuerySingle(ctx, r.db, query, ScanTimeEntry, "running time entry", fmt.Sprintf("task %d", taskID), taskID)
}

// SumDurations sums the stored durations of entries whose start_time falls
// within [start, end]. Running entries carry a NULL duration and sum as zero.
func (r *SQLiteRepository) SumDurations(ctx context.Context, start, end time.Time) (int64, error) {
	query := `
	SELECT COALESCE(SUM(duration), 0)
	FROM time_entries
	WHERE start_time >= ? AND start_time <= ?`

	return QueryValue[int64](ctx, r.db, query, "duration sum", FormatTimeForDB(start), FormatTimeForDB(end))
}

// EntryStats computes aggregate counters over the filtered entry set
func (r *SQLiteRepository) EntryStats(ctx context.Context, q EntryQuery) (*EntryStats, error) {
	query := `
	SELECT COUNT(*),
	       COALESCE(SUM(CASE WHEN te.end_time IS NULL THEN 1 ELSE 0 END), 0),
	       COALESCE(SUM(CASE WHEN te.end_time IS NOT NULL THEN 1 ELSE 0 END), 0),
	       COALESCE(SUM(te.duration), 0),
	       AVG(te.duration)
	FROM time_entries te
	JOIN tasks t ON te.task_id = t.id
	JOIN projects p ON t.project_id = p.id`
	conditions, args := buildEntryConditions(q)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	stats := &EntryStats{}
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalEntries,
		&stats.ActiveEntries,
		&stats.CompletedEntries,
		&stats.TotalDuration,
		&avg,
	)
	if err != nil {
		return nil, HandleDatabaseError("query entry stats", err)
	}
	if avg.Valid {
		stats.AvgDuration = &avg.Float64
	}

	return stats, nil
}

// ProjectTotals sums durations and counts entries grouped by project.
// Projects without entries appear with zero totals.
func (r *SQLiteRepository) ProjectTotals(ctx context.Context) ([]*ProjectTotalsRow, error) {
	query := `
	SELECT p.id, p.name, p.color, SUM(te.duration), COUNT(te.id)
	FROM projects p
	LEFT JOIN tasks t ON p.id = t.project_id
	LEFT JOIN time_entries te ON t.id = te.task_id
	GROUP BY p.id, p.name, p.color
	ORDER BY SUM(te.duration) DESC`

	return QueryMultiple(ctx, r.db, query, ScanProjectTotalsRows, "project totals")
}

// TaskTotals sums durations and counts entries grouped by task
func (r *SQLiteRepository) TaskTotals(ctx context.Context) ([]*TaskTotalsRow, error) {
	query := `
	SELECT t.id, t.name, p.name, p.color, SUM(te.duration), COUNT(te.id)
	FROM tasks t
	JOIN projects p ON t.project_id = p.id
	LEFT JOIN time_entries te ON t.id = te.task_id
	GROUP BY t.id, t.name, p.name, p.color
	ORDER BY SUM(te.duration) DESC`

	return QueryMultiple(ctx, r.db, query, ScanTaskTotalsRows, "task totals")
}
