package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetrack/internal/domain"
	apperrors "timetrack/internal/errors"
	"timetrack/internal/validation"
)

func TestEntryService_Create_ComputesDurationFromEndTime(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	svc := NewEntryService(repo)
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	entry, err := svc.Create(context.Background(), CreateEntryRequest{
		TaskID:    task.ID,
		StartTime: start,
		EndTime:   timePtr(start.Add(90 * time.Minute)),
	})
	require.NoError(t, err)

	require.NotNil(t, entry.Duration)
	assert.Equal(t, int64(5400), *entry.Duration)
}

func TestEntryService_Create_DerivesEndTimeFromDuration(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	svc := NewEntryService(repo)
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	entry, err := svc.Create(context.Background(), CreateEntryRequest{
		TaskID:    task.ID,
		StartTime: start,
		Duration:  int64Ptr(3600),
	})
	require.NoError(t, err)

	require.NotNil(t, entry.EndTime)
	assert.True(t, entry.EndTime.Equal(start.Add(time.Hour)))
	require.NotNil(t, entry.Duration)
	assert.Equal(t, int64(3600), *entry.Duration)
}

func TestEntryService_Create_RunningConflictsWithRunningEntry(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")
	createTestEntry(t, repo, task.ID, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), nil)

	svc := NewEntryService(repo)
	_, err := svc.Create(context.Background(), CreateEntryRequest{
		TaskID:    task.ID,
		StartTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeConflict))
}

func TestEntryService_Create_CompletedBackfillSkipsConflictCheck(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")
	createTestEntry(t, repo, task.ID, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), nil)

	svc := NewEntryService(repo)
	start := time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)

	entry, err := svc.Create(context.Background(), CreateEntryRequest{
		TaskID:    task.ID,
		StartTime: start,
		EndTime:   timePtr(start.Add(time.Hour)),
	})
	require.NoError(t, err)
	assert.False(t, entry.IsRunning())
}

func TestEntryService_Create_TaskNotFound(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewEntryService(repo)

	_, err := svc.Create(context.Background(), CreateEntryRequest{
		TaskID:    999,
		StartTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestEntryService_Update_RecomputesDuration(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	entry := createTestEntry(t, repo, task.ID, start, timePtr(start.Add(time.Hour)))

	svc := NewEntryService(repo)
	updated, err := svc.Update(context.Background(), entry.ID, UpdateEntryRequest{
		EndTime: timePtr(start.Add(2 * time.Hour)),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Duration)
	assert.Equal(t, int64(7200), *updated.Duration)
}

func TestEntryService_Update_RejectsEndBeforeStart(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	entry := createTestEntry(t, repo, task.ID, start, timePtr(start.Add(time.Hour)))

	svc := NewEntryService(repo)
	_, err := svc.Update(context.Background(), entry.ID, UpdateEntryRequest{
		EndTime: timePtr(start.Add(-time.Minute)),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
}

func TestEntryService_Delete(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	entry := createTestEntry(t, repo, task.ID, start, timePtr(start.Add(time.Hour)))

	svc := NewEntryService(repo)
	require.NoError(t, svc.Delete(context.Background(), entry.ID))

	err := svc.Delete(context.Background(), entry.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestEntryService_List_FiltersAndPaginates(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		createTestEntry(t, repo, task.ID, start, timePtr(start.Add(30*time.Minute)))
	}

	svc := NewEntryService(repo)
	page, err := svc.List(context.Background(), domain.EntryFilter{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.Pagination.Total)
	assert.Equal(t, int64(3), page.Pagination.Pages)
	assert.True(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrev)
	// newest first
	assert.True(t, page.Data[0].StartTime.After(page.Data[1].StartTime))
}

func TestEntryService_List_DateRangeMustBePaired(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewEntryService(repo)

	_, err := svc.List(context.Background(), domain.EntryFilter{
		StartDate: timePtr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
}

func TestEntryService_List_StatusFilter(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	createTestEntry(t, repo, task.ID, start, timePtr(start.Add(time.Hour)))
	running := createTestEntry(t, repo, task.ID, start.Add(2*time.Hour), nil)

	svc := NewEntryService(repo)
	page, err := svc.List(context.Background(), domain.EntryFilter{Status: domain.EntryStatusActive})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, running.ID, page.Data[0].ID)
}

func TestEntryService_Search(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design review")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	createTestEntry(t, repo, task.ID, start, timePtr(start.Add(time.Hour)))

	svc := NewEntryService(repo)
	page, err := svc.Search(context.Background(), domain.EntryFilter{Query: "review"})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	page, err = svc.Search(context.Background(), domain.EntryFilter{Query: "nomatch"})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.Pagination.Total)
}

func TestEntryService_Search_QueryTooShort(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewEntryService(repo)

	_, err := svc.Search(context.Background(), domain.EntryFilter{Query: " a "})
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
}

func TestEntryService_Bulk_StopBestEffort(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task1 := createTestTask(t, repo, project.ID, "Design")
	task2 := createTestTask(t, repo, project.ID, "Backend")
	task3 := createTestTask(t, repo, project.ID, "Docs")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	running1 := createTestEntry(t, repo, task1.ID, start, nil)
	stopped := createTestEntry(t, repo, task2.ID, start, timePtr(start.Add(time.Hour)))
	running2 := createTestEntry(t, repo, task3.ID, start, nil)

	svc := NewEntryService(repo)
	result, err := svc.Bulk(context.Background(), BulkActionStop, []int64{running1.ID, stopped.ID, running2.ID}, nil)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 3, result.Summary.Total)
	assert.Equal(t, 2, result.Summary.Successful)
	assert.Equal(t, 1, result.Summary.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, stopped.ID, result.Errors[0].ID)
	require.Len(t, result.Results, 2)
	require.NotNil(t, result.Results[0].Data)
	assert.False(t, result.Results[0].Data.IsRunning())
}

func TestEntryService_Bulk_Delete(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	e1 := createTestEntry(t, repo, task.ID, start, timePtr(start.Add(time.Hour)))
	e2 := createTestEntry(t, repo, task.ID, start.Add(2*time.Hour), timePtr(start.Add(3*time.Hour)))

	svc := NewEntryService(repo)
	result, err := svc.Bulk(context.Background(), BulkActionDelete, []int64{e1.ID, e2.ID, 999}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.Successful)
	assert.Equal(t, 1, result.Summary.Failed)

	page, err := svc.List(context.Background(), domain.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestEntryService_Bulk_Update(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	e1 := createTestEntry(t, repo, task.ID, start, timePtr(start.Add(time.Hour)))
	e2 := createTestEntry(t, repo, task.ID, start.Add(2*time.Hour), timePtr(start.Add(3*time.Hour)))

	svc := NewEntryService(repo)
	result, err := svc.Bulk(context.Background(), BulkActionUpdate, []int64{e1.ID, e2.ID}, &UpdateEntryRequest{
		Description: strPtr("sprint review"),
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	for _, item := range result.Results {
		require.NotNil(t, item.Data)
		require.NotNil(t, item.Data.Description)
		assert.Equal(t, "sprint review", *item.Data.Description)
	}
}

func TestEntryService_Bulk_InvalidRequests(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewEntryService(repo)

	_, err := svc.Bulk(context.Background(), "archive", []int64{1}, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

	_, err = svc.Bulk(context.Background(), BulkActionStop, nil, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

	_, err = svc.Bulk(context.Background(), BulkActionUpdate, []int64{1}, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
}
