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

func TestTaskService_Create(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)

	svc := NewTaskService(repo)
	task, err := svc.Create(context.Background(), CreateTaskRequest{
		ProjectID:   project.ID,
		Name:        "Design",
		Description: strPtr("landing page"),
	})
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.Equal(t, project.ID, task.ProjectID)
	assert.Equal(t, domain.TaskStatusActive, task.Status)
}

func TestTaskService_Create_UnknownProject(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewTaskService(repo)

	_, err := svc.Create(context.Background(), CreateTaskRequest{ProjectID: 999, Name: "Orphan"})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestTaskService_Create_InvalidStatus(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)

	svc := NewTaskService(repo)
	_, err := svc.Create(context.Background(), CreateTaskRequest{
		ProjectID: project.ID,
		Name:      "Design",
		Status:    "archived",
	})
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
}

func TestTaskService_List_IncludesTotals(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	createTestEntry(t, repo, task.ID, start, timePtr(start.Add(time.Hour)))
	createTestEntry(t, repo, task.ID, start.Add(2*time.Hour), nil)

	svc := NewTaskService(repo)
	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Equal(t, "Website", tasks[0].ProjectName)
	assert.Equal(t, domain.DefaultProjectColor, tasks[0].ProjectColor)
	assert.Equal(t, int64(3600), tasks[0].TotalDuration)
}

func TestTaskService_ListByProject(t *testing.T) {
	repo := newTestRepo(t)
	projectA := createTestProject(t, repo, "Alpha", nil)
	projectB := createTestProject(t, repo, "Beta", nil)
	createTestTask(t, repo, projectA.ID, "Design")
	createTestTask(t, repo, projectB.ID, "Backend")

	svc := NewTaskService(repo)
	tasks, err := svc.ListByProject(context.Background(), projectA.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Design", tasks[0].Name)
}

func TestTaskService_ListByProject_UnknownProject(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewTaskService(repo)

	_, err := svc.ListByProject(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestTaskService_Update_Partial(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	svc := NewTaskService(repo)
	updated, err := svc.Update(context.Background(), task.ID, UpdateTaskRequest{
		Status: statusPtr(domain.TaskStatusCompleted),
	})
	require.NoError(t, err)

	assert.Equal(t, "Design", updated.Name)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)
}

func TestTaskService_Delete(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Website", nil)
	task := createTestTask(t, repo, project.ID, "Design")

	svc := NewTaskService(repo)
	require.NoError(t, svc.Delete(context.Background(), task.ID))

	_, err := svc.Get(context.Background(), task.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}
