package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	var description sql.NullString
	var billingRate sql.NullFloat64

	err := scanner.Scan(
		&project.ID,
		&project.Name,
		&description,
		&project.Color,
		&billingRate,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		project.Description = &description.String
	}
	if billingRate.Valid {
		project.BillingRate = &billingRate.Float64
	}

	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var description sql.NullString

	err := scanner.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Name,
		&description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}

	return task, nil
}

// ScanTaskWithStats scans a task joined with project fields and summed duration
func ScanTaskWithStats(scanner Scanner) (*TaskWithStats, error) {
	task := &TaskWithStats{}
	var description sql.NullString
	var totalDuration sql.NullInt64

	err := scanner.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Name,
		&description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.ProjectName,
		&task.ProjectColor,
		&totalDuration,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if totalDuration.Valid {
		task.TotalDuration = totalDuration.Int64
	}

	return task, nil
}

// ScanTasksWithStats scans multiple joined task rows
func ScanTasksWithStats(rows Rows) ([]*TaskWithStats, error) {
	var tasks []*TaskWithStats
	for rows.Next() {
		task, err := ScanTaskWithStats(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var description sql.NullString
	var endTime sql.NullTime
	var duration sql.NullInt64

	err := scanner.Scan(
		&entry.ID,
		&entry.TaskID,
		&description,
		&entry.StartTime,
		&endTime,
		&duration,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		entry.Description = &description.String
	}
	if endTime.Valid {
		entry.EndTime = &endTime.Time
	}
	if duration.Valid {
		entry.Duration = &duration.Int64
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanTimeEntryDetails scans a time entry joined with its task and project
func ScanTimeEntryDetails(scanner Scanner) (*TimeEntryDetails, error) {
	entry := &TimeEntryDetails{}
	var description sql.NullString
	var endTime sql.NullTime
	var duration sql.NullInt64

	err := scanner.Scan(
		&entry.ID,
		&entry.TaskID,
		&description,
		&entry.StartTime,
		&endTime,
		&duration,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.TaskName,
		&entry.ProjectID,
		&entry.ProjectName,
		&entry.ProjectColor,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		entry.Description = &description.String
	}
	if endTime.Valid {
		entry.EndTime = &endTime.Time
	}
	if duration.Valid {
		entry.Duration = &duration.Int64
	}

	return entry, nil
}

// ScanTimeEntriesDetails scans multiple joined time entry rows
func ScanTimeEntriesDetails(rows Rows) ([]*TimeEntryDetails, error) {
	var entries []*TimeEntryDetails
	for rows.Next() {
		entry, err := ScanTimeEntryDetails(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanProjectTotals scans a per-project aggregation row
func ScanProjectTotals(scanner Scanner) (*ProjectTotalsRow, error) {
	row := &ProjectTotalsRow{}
	var totalDuration sql.NullInt64

	err := scanner.Scan(
		&row.ProjectID,
		&row.ProjectName,
		&row.ProjectColor,
		&totalDuration,
		&row.EntryCount,
	)
	if err != nil {
		return nil, err
	}

	if totalDuration.Valid {
		row.TotalDuration = totalDuration.Int64
	}

	return row, nil
}

// ScanProjectTotalsRows scans multiple per-project aggregation rows
func ScanProjectTotalsRows(rows Rows) ([]*ProjectTotalsRow, error) {
	var results []*ProjectTotalsRow
	for rows.Next() {
		row, err := ScanProjectTotals(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanTaskTotals scans a per-task aggregation row
func ScanTaskTotals(scanner Scanner) (*TaskTotalsRow, error) {
	row := &TaskTotalsRow{}
	var totalDuration sql.NullInt64

	err := scanner.Scan(
		&row.TaskID,
		&row.TaskName,
		&row.ProjectName,
		&row.ProjectColor,
		&totalDuration,
		&row.EntryCount,
	)
	if err != nil {
		return nil, err
	}

	if totalDuration.Valid {
		row.TotalDuration = totalDuration.Int64
	}

	return row, nil
}

// ScanTaskTotalsRows scans multiple per-task aggregation rows
func ScanTaskTotalsRows(rows Rows) ([]*TaskTotalsRow, error) {
	var results []*TaskTotalsRow
	for rows.Next() {
		row, err := ScanTaskTotals(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
