package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timetrack/internal/domain"
	apperrors "timetrack/internal/errors"
	"timetrack/internal/repository/sqlite"
	"timetrack/internal/validation"
)

type entryServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TimeEntryValidator
	now       func() time.Time
}

// NewEntryService creates a new EntryService instance.
func NewEntryService(repo sqlite.Repository) EntryService {
	return &entryServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTimeEntryValidator(),
		now:       time.Now,
	}
}

// ensureNoRunningEntry fails with a conflict when the task already has a
// running entry. A not-found lookup result is the success path here.
func ensureNoRunningEntry(ctx context.Context, repo sqlite.Repository, taskID int64) error {
	_, err := repo.GetRunningEntryForTask(ctx, taskID)
	if err == nil {
		return apperrors.NewConflictError("time entry", fmt.Sprintf("task %d already has a running entry", taskID))
	}
	if apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) {
		return nil
	}
	return err
}

// stopEntry completes a running entry at the given instant. Stopping an
// entry that is missing or already stopped reports not found.
func stopEntry(ctx context.Context, repo sqlite.Repository, mapper *domain.Mapper, id int64, endTime time.Time) (*domain.TimeEntry, error) {
	dbEntry, err := repo.GetTimeEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if dbEntry.EndTime != nil {
		return nil, apperrors.NewNotFoundError("running time entry", fmt.Sprintf("%d", id))
	}

	entry := mapper.TimeEntry.FromDatabase(*dbEntry)
	duration := domain.DurationBetween(entry.StartTime, endTime)
	if duration < 0 {
		return nil, apperrors.NewInvalidInputError("end_time", endTime, "entry starts after the stop time")
	}
	stopped := entry.Stop(endTime)

	updated := mapper.TimeEntry.ToDatabase(stopped)
	if err := repo.UpdateTimeEntry(ctx, &updated); err != nil {
		return nil, err
	}

	result := mapper.TimeEntry.FromDatabase(updated)
	return &result, nil
}

// Create inserts a manual time entry. A provided end time wins over a
// provided duration; a duration without an end time derives the end time.
// Entries created without either are running and follow the same
// one-running-entry-per-task rule as the timer.
func (s *entryServiceImpl) Create(ctx context.Context, req CreateEntryRequest) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateTimeEntryForCreation(req.TaskID, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetTask(ctx, req.TaskID); err != nil {
		return nil, err
	}

	entry := domain.NewTimeEntry(req.TaskID, req.StartTime)
	entry.Description = req.Description

	switch {
	case req.EndTime != nil:
		entry = entry.Stop(*req.EndTime)
	case req.Duration != nil:
		if *req.Duration < 0 {
			return nil, apperrors.NewInvalidInputError("duration", *req.Duration, "must not be negative")
		}
		end := req.StartTime.Add(time.Duration(*req.Duration) * time.Second)
		entry = entry.Stop(end)
	default:
		if err := ensureNoRunningEntry(ctx, s.repo, req.TaskID); err != nil {
			return nil, err
		}
	}

	dbEntry := s.mapper.TimeEntry.ToDatabase(entry)
	if err := s.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	created := s.mapper.TimeEntry.FromDatabase(dbEntry)
	return &created, nil
}

// Get retrieves a single time entry by ID.
func (s *entryServiceImpl) Get(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateTimeEntryID(id); err != nil {
		return nil, err
	}

	dbEntry, err := s.repo.GetTimeEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := s.mapper.TimeEntry.FromDatabase(*dbEntry)
	return &entry, nil
}

// Update applies a partial update. When the start or end time changes on a
// completed entry the stored duration is recomputed, so the two never
// drift apart.
func (s *entryServiceImpl) Update(ctx context.Context, id int64, req UpdateEntryRequest) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateTimeEntryID(id); err != nil {
		return nil, err
	}

	dbEntry, err := s.repo.GetTimeEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	entry := s.mapper.TimeEntry.FromDatabase(*dbEntry)

	if req.TaskID != nil {
		if _, err := s.repo.GetTask(ctx, *req.TaskID); err != nil {
			return nil, err
		}
		entry.TaskID = *req.TaskID
	}
	if req.Description != nil {
		entry.Description = req.Description
	}
	if req.StartTime != nil {
		entry.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		entry.EndTime = req.EndTime
	}
	if req.Duration != nil && req.EndTime == nil {
		if *req.Duration < 0 {
			return nil, apperrors.NewInvalidInputError("duration", *req.Duration, "must not be negative")
		}
		end := entry.StartTime.Add(time.Duration(*req.Duration) * time.Second)
		entry.EndTime = &end
	}

	if entry.EndTime != nil {
		if entry.EndTime.Before(entry.StartTime) {
			return nil, apperrors.NewInvalidInputError("end_time", *entry.EndTime, "must not be before start_time")
		}
		duration := domain.DurationBetween(entry.StartTime, *entry.EndTime)
		entry.Duration = &duration
	} else {
		entry.Duration = nil
	}

	updated := s.mapper.TimeEntry.ToDatabase(entry)
	if err := s.repo.UpdateTimeEntry(ctx, &updated); err != nil {
		return nil, err
	}

	result := s.mapper.TimeEntry.FromDatabase(updated)
	return &result, nil
}

// Delete removes a time entry by ID.
func (s *entryServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.validator.ValidateTimeEntryID(id); err != nil {
		return err
	}
	return s.repo.DeleteTimeEntry(ctx, id)
}

// List returns one page of the filtered entry listing, newest first,
// with pagination computed over the filtered total.
func (s *entryServiceImpl) List(ctx context.Context, filter domain.EntryFilter) (*EntryPage, error) {
	if err := s.validator.ValidateFilter(filter); err != nil {
		return nil, err
	}
	normalizeFilter(&filter, DefaultListLimit, MaxListLimit)
	return s.page(ctx, filter)
}

// Search runs a free-text listing. The query must be at least two
// characters after trimming; all other filters still apply.
func (s *entryServiceImpl) Search(ctx context.Context, filter domain.EntryFilter) (*EntryPage, error) {
	if err := s.validator.ValidateSearchQuery(filter.Query); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateFilter(filter); err != nil {
		return nil, err
	}
	normalizeFilter(&filter, DefaultSearchLimit, MaxSearchLimit)
	return s.page(ctx, filter)
}

func (s *entryServiceImpl) page(ctx context.Context, filter domain.EntryFilter) (*EntryPage, error) {
	query := buildEntryQuery(filter)

	total, err := s.repo.CountTimeEntries(ctx, query)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListTimeEntries(ctx, query)
	if err != nil {
		return nil, err
	}

	return &EntryPage{
		Data:       s.mapper.TimeEntry.DetailsFromDatabaseSlice(rows),
		Pagination: domain.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Bulk applies one action over a list of entry ids, best effort. A failed
// id is recorded and the remaining ids are still processed.
func (s *entryServiceImpl) Bulk(ctx context.Context, action BulkAction, ids []int64, data *UpdateEntryRequest) (*BulkResult, error) {
	if !action.IsValid() {
		return nil, apperrors.NewInvalidInputError("action", string(action), "must be one of stop, delete, update")
	}
	if len(ids) == 0 {
		return nil, apperrors.NewInvalidInputError("ids", ids, "must not be empty")
	}
	if action == BulkActionUpdate && data == nil {
		return nil, apperrors.NewInvalidInputError("data", nil, "required for bulk update")
	}

	result := &BulkResult{
		Results: []BulkItemResult{},
		Errors:  []BulkItemError{},
	}
	for _, id := range ids {
		entry, err := s.applyBulkAction(ctx, action, id, data)
		if err != nil {
			result.Errors = append(result.Errors, BulkItemError{ID: id, Error: apperrors.GetUserMessage(err)})
			continue
		}
		result.Results = append(result.Results, BulkItemResult{ID: id, Success: true, Data: entry})
	}

	result.Summary = BulkSummary{
		Total:      len(ids),
		Successful: len(result.Results),
		Failed:     len(result.Errors),
	}
	result.Success = result.Summary.Failed == 0
	return result, nil
}

func (s *entryServiceImpl) applyBulkAction(ctx context.Context, action BulkAction, id int64, data *UpdateEntryRequest) (*domain.TimeEntry, error) {
	switch action {
	case BulkActionStop:
		return stopEntry(ctx, s.repo, s.mapper, id, s.now())
	case BulkActionDelete:
		return nil, s.Delete(ctx, id)
	case BulkActionUpdate:
		return s.Update(ctx, id, *data)
	}
	return nil, apperrors.NewInvalidInputError("action", string(action), "unknown action")
}

// normalizeFilter clamps page and limit to sane bounds before querying.
func normalizeFilter(filter *domain.EntryFilter, defaultLimit, maxLimit int) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	if filter.Status == "" {
		filter.Status = domain.EntryStatusAll
	}
}

// buildEntryQuery translates a domain filter into the repository query shape.
func buildEntryQuery(filter domain.EntryFilter) sqlite.EntryQuery {
	query := sqlite.EntryQuery{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		ProjectID: filter.ProjectID,
		TaskID:    filter.TaskID,
		Limit:     filter.Limit,
		Offset:    filter.Offset(),
	}
	if trimmed := strings.TrimSpace(filter.Query); trimmed != "" {
		query.Text = &trimmed
	}
	switch filter.Status {
	case domain.EntryStatusActive:
		query.Status = "active"
	case domain.EntryStatusCompleted:
		query.Status = "completed"
	}
	return query
}
