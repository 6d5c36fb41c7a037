package services

import (
	"context"
	"time"

	"timetrack/internal/domain"
	"timetrack/internal/repository/sqlite"
	"timetrack/internal/validation"
)

type timerServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	validator     *validation.TimeEntryValidator
	taskValidator *validation.TaskValidator
	now           func() time.Time
}

// NewTimerService creates a new TimerService instance.
func NewTimerService(repo sqlite.Repository) TimerService {
	return &timerServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		validator:     validation.NewTimeEntryValidator(),
		taskValidator: validation.NewTaskValidator(),
		now:           time.Now,
	}
}

// Start begins a running entry for the task at the current instant. A task
// can hold at most one running entry; a second start conflicts.
func (s *timerServiceImpl) Start(ctx context.Context, taskID int64, description *string) (*domain.TimeEntry, error) {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	if err := ensureNoRunningEntry(ctx, s.repo, taskID); err != nil {
		return nil, err
	}

	entry := domain.NewTimeEntry(taskID, s.now())
	entry.Description = description

	dbEntry := s.mapper.TimeEntry.ToDatabase(entry)
	if err := s.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	created := s.mapper.TimeEntry.FromDatabase(dbEntry)
	return &created, nil
}

// Stop completes the running entry at the current instant and stores the
// computed duration.
func (s *timerServiceImpl) Stop(ctx context.Context, entryID int64) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateTimeEntryID(entryID); err != nil {
		return nil, err
	}
	return stopEntry(ctx, s.repo, s.mapper, entryID, s.now())
}

// Active returns every running entry with task and project details. The
// result is derived from entries whose end time is NULL on each call.
func (s *timerServiceImpl) Active(ctx context.Context) ([]domain.TimeEntryWithDetails, error) {
	rows, err := s.repo.ListTimeEntries(ctx, sqlite.EntryQuery{Status: "active"})
	if err != nil {
		return nil, err
	}
	return s.mapper.TimeEntry.DetailsFromDatabaseSlice(rows), nil
}
