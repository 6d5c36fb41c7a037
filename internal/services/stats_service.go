package services

import (
	"context"
	"time"

	"timetrack/internal/domain"
	apperrors "timetrack/internal/errors"
	"timetrack/internal/repository/sqlite"
	"timetrack/internal/validation"
)

type statsServiceImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	projectValidator *validation.ProjectValidator
	now              func() time.Time
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(repo sqlite.Repository) StatsService {
	return &statsServiceImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		projectValidator: validation.NewProjectValidator(),
		now:              time.Now,
	}
}

// startOfDay returns midnight of t in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the most recent Monday 00:00 in t's location.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -daysSinceMonday)
}

// PeriodTotals sums completed durations for the current day and the
// current week. Running entries contribute zero until stopped.
func (s *statsServiceImpl) PeriodTotals(ctx context.Context) (*PeriodTotals, error) {
	now := s.now()

	dayStart := startOfDay(now)
	today, err := s.repo.SumDurations(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	weekStart := startOfWeek(now)
	thisWeek, err := s.repo.SumDurations(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	return &PeriodTotals{Today: today, ThisWeek: thisWeek}, nil
}

// ProjectTotals returns the summed duration and entry count per project.
// Running entries count toward the entry count with a zero duration.
func (s *statsServiceImpl) ProjectTotals(ctx context.Context) ([]domain.ProjectTotals, error) {
	rows, err := s.repo.ProjectTotals(ctx)
	if err != nil {
		return nil, err
	}

	totals := make([]domain.ProjectTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, domain.ProjectTotals{
			ProjectID:     row.ProjectID,
			ProjectName:   row.ProjectName,
			ProjectColor:  row.ProjectColor,
			TotalDuration: row.TotalDuration,
			EntryCount:    row.EntryCount,
		})
	}
	return totals, nil
}

// TaskTotals returns the summed duration and entry count per task.
func (s *statsServiceImpl) TaskTotals(ctx context.Context) ([]domain.TaskTotals, error) {
	rows, err := s.repo.TaskTotals(ctx)
	if err != nil {
		return nil, err
	}

	totals := make([]domain.TaskTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, domain.TaskTotals{
			TaskID:        row.TaskID,
			TaskName:      row.TaskName,
			ProjectName:   row.ProjectName,
			ProjectColor:  row.ProjectColor,
			TotalDuration: row.TotalDuration,
			EntryCount:    row.EntryCount,
		})
	}
	return totals, nil
}

// EntryStats computes aggregate counters over the filtered entry set. An
// unknown project id is an error, not an empty result.
func (s *statsServiceImpl) EntryStats(ctx context.Context, projectID *int64, dateRange *DateRange) (*EntryStatistics, error) {
	query := sqlite.EntryQuery{}
	if projectID != nil {
		if err := s.projectValidator.ValidateProjectID(*projectID); err != nil {
			return nil, err
		}
		if _, err := s.repo.GetProject(ctx, *projectID); err != nil {
			return nil, err
		}
		query.ProjectID = projectID
	}
	if dateRange != nil {
		if dateRange.EndDate.Before(dateRange.StartDate) {
			return nil, apperrors.NewInvalidInputError("end_date", dateRange.EndDate, "must not be before start_date")
		}
		query.StartDate = &dateRange.StartDate
		query.EndDate = &dateRange.EndDate
	}

	stats, err := s.repo.EntryStats(ctx, query)
	if err != nil {
		return nil, err
	}

	result := &EntryStatistics{
		TotalEntries:     stats.TotalEntries,
		ActiveEntries:    stats.ActiveEntries,
		CompletedEntries: stats.CompletedEntries,
		TotalDuration:    stats.TotalDuration,
		AvgDuration:      stats.AvgDuration,
	}
	if dateRange != nil {
		result.DateRange = dateRange
	}
	return result, nil
}

// Invoice sums the project's completed entries over the date range and
// prices them at the project billing rate. Entries of other projects
// never leak in, even when task ids overlap numerically.
func (s *statsServiceImpl) Invoice(ctx context.Context, projectID int64, dateRange DateRange) (*Invoice, error) {
	if err := s.projectValidator.ValidateProjectID(projectID); err != nil {
		return nil, err
	}
	if dateRange.EndDate.Before(dateRange.StartDate) {
		return nil, apperrors.NewInvalidInputError("end_date", dateRange.EndDate, "must not be before start_date")
	}

	dbProject, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	project := s.mapper.Project.FromDatabase(*dbProject)

	rows, err := s.repo.ListTimeEntries(ctx, sqlite.EntryQuery{
		ProjectID: &projectID,
		StartDate: &dateRange.StartDate,
		EndDate:   &dateRange.EndDate,
		Status:    "completed",
	})
	if err != nil {
		return nil, err
	}

	entries := s.mapper.TimeEntry.DetailsFromDatabaseSlice(rows)
	var totalSeconds int64
	for _, entry := range entries {
		totalSeconds += entry.DurationSeconds()
	}

	totalHours := float64(totalSeconds) / 3600.0
	return &Invoice{
		TotalHours:  totalHours,
		TotalAmount: totalHours * project.Rate(),
		Entries:     entries,
	}, nil
}
