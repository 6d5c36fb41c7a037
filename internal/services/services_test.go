package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timetrack/internal/domain"
	"timetrack/internal/repository/sqlite"
)

func newTestRepo(t *testing.T) *sqlite.SQLiteRepository {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})
	return repo
}

func createTestProject(t *testing.T, repo sqlite.Repository, name string, rate *float64) *sqlite.Project {
	t.Helper()

	project := &sqlite.Project{
		Name:        name,
		Color:       domain.DefaultProjectColor,
		BillingRate: rate,
	}
	require.NoError(t, repo.CreateProject(context.Background(), project))
	return project
}

func createTestTask(t *testing.T, repo sqlite.Repository, projectID int64, name string) *sqlite.Task {
	t.Helper()

	task := &sqlite.Task{
		ProjectID: projectID,
		Name:      name,
		Status:    string(domain.TaskStatusActive),
	}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	return task
}

func createTestEntry(t *testing.T, repo sqlite.Repository, taskID int64, start time.Time, end *time.Time) *sqlite.TimeEntry {
	t.Helper()

	entry := &sqlite.TimeEntry{
		TaskID:    taskID,
		StartTime: start,
		EndTime:   end,
	}
	if end != nil {
		duration := domain.DurationBetween(start, *end)
		entry.Duration = &duration
	}
	require.NoError(t, repo.CreateTimeEntry(context.Background(), entry))
	return entry
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func strPtr(s string) *string                          { return &s }
func int64Ptr(i int64) *int64                          { return &i }
func float64Ptr(f float64) *float64                    { return &f }
func timePtr(t time.Time) *time.Time                   { return &t }
func statusPtr(s domain.TaskStatus) *domain.TaskStatus { return &s }
