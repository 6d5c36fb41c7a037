package services

import (
	"context"

	"timetrack/internal/domain"
	"timetrack/internal/repository/sqlite"
	"timetrack/internal/validation"
)

type projectServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.ProjectValidator
}

// NewProjectService creates a new ProjectService instance.
func NewProjectService(repo sqlite.Repository) ProjectService {
	return &projectServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewProjectValidator(),
	}
}

// Create inserts a project, applying the default colour when none is given.
func (s *projectServiceImpl) Create(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	color := req.Color
	if color == "" {
		color = domain.DefaultProjectColor
	}
	if err := s.validator.ValidateProjectForCreation(req.Name, color, req.BillingRate); err != nil {
		return nil, err
	}

	project := domain.NewProject(req.Name)
	project.Description = req.Description
	project.Color = color
	project.BillingRate = req.BillingRate

	dbProject := s.mapper.Project.ToDatabase(project)
	if err := s.repo.CreateProject(ctx, &dbProject); err != nil {
		return nil, err
	}

	created := s.mapper.Project.FromDatabase(dbProject)
	return &created, nil
}

// Get retrieves a project by ID.
func (s *projectServiceImpl) Get(ctx context.Context, id int64) (*domain.Project, error) {
	if err := s.validator.ValidateProjectID(id); err != nil {
		return nil, err
	}

	dbProject, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	project := s.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// List returns all projects, newest first.
func (s *projectServiceImpl) List(ctx context.Context) ([]domain.Project, error) {
	dbProjects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// Update applies a partial update; nil fields keep their stored values.
func (s *projectServiceImpl) Update(ctx context.Context, id int64, req UpdateProjectRequest) (*domain.Project, error) {
	if err := s.validator.ValidateProjectID(id); err != nil {
		return nil, err
	}

	dbProject, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project := s.mapper.Project.FromDatabase(*dbProject)

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Color != nil {
		project.Color = *req.Color
	}
	if req.BillingRate != nil {
		project.BillingRate = req.BillingRate
	}

	if err := s.validator.ValidateProjectForCreation(project.Name, project.Color, project.BillingRate); err != nil {
		return nil, err
	}

	updated := s.mapper.Project.ToDatabase(project)
	if err := s.repo.UpdateProject(ctx, &updated); err != nil {
		return nil, err
	}

	result := s.mapper.Project.FromDatabase(updated)
	return &result, nil
}

// Delete removes a project. Its tasks and their time entries go with it.
func (s *projectServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.validator.ValidateProjectID(id); err != nil {
		return err
	}
	return s.repo.DeleteProject(ctx, id)
}
