package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetrack/internal/domain"
	apperrors "timetrack/internal/errors"
	"timetrack/internal/validation"
)

func TestProjectService_Create(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), CreateProjectRequest{
		Name:        "Website Redesign",
		Description: strPtr("Q3 relaunch"),
		Color:       "#FF5733",
		BillingRate: float64Ptr(95),
	})
	require.NoError(t, err)

	assert.NotZero(t, project.ID)
	assert.Equal(t, "Website Redesign", project.Name)
	assert.Equal(t, "#FF5733", project.Color)
	require.NotNil(t, project.BillingRate)
	assert.Equal(t, 95.0, *project.BillingRate)
	assert.False(t, project.CreatedAt.IsZero())
}

func TestProjectService_Create_DefaultColor(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), CreateProjectRequest{Name: "Plain"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProjectColor, project.Color)
}

func TestProjectService_Create_Invalid(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProjectService(repo)

	tests := []struct {
		name string
		req  CreateProjectRequest
	}{
		{"empty name", CreateProjectRequest{Name: ""}},
		{"bad color", CreateProjectRequest{Name: "P", Color: "blue"}},
		{"negative rate", CreateProjectRequest{Name: "P", BillingRate: float64Ptr(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, validation.IsValidationError(err))
		})
	}
}

func TestProjectService_GetAndList(t *testing.T) {
	repo := newTestRepo(t)
	createTestProject(t, repo, "Beta", nil)
	alpha := createTestProject(t, repo, "Alpha", nil)

	svc := NewProjectService(repo)
	got, err := svc.Get(context.Background(), alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	names := []string{all[0].Name, all[1].Name}
	assert.ElementsMatch(t, []string{"Alpha", "Beta"}, names)
}

func TestProjectService_Get_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewProjectService(repo)

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestProjectService_Update_Partial(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Old Name", float64Ptr(80))

	svc := NewProjectService(repo)
	updated, err := svc.Update(context.Background(), project.ID, UpdateProjectRequest{
		Name: strPtr("New Name"),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	require.NotNil(t, updated.BillingRate)
	assert.Equal(t, 80.0, *updated.BillingRate)
	assert.Equal(t, domain.DefaultProjectColor, updated.Color)
}

func TestProjectService_Delete(t *testing.T) {
	repo := newTestRepo(t)
	project := createTestProject(t, repo, "Doomed", nil)

	svc := NewProjectService(repo)
	require.NoError(t, svc.Delete(context.Background(), project.ID))

	err := svc.Delete(context.Background(), project.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}
