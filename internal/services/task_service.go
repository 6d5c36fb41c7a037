package services

import (
	"context"

	"timetrack/internal/domain"
	"timetrack/internal/repository/sqlite"
	"timetrack/internal/validation"
)

type taskServiceImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	validator        *validation.TaskValidator
	projectValidator *validation.ProjectValidator
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		validator:        validation.NewTaskValidator(),
		projectValidator: validation.NewProjectValidator(),
	}
}

// Create inserts a task under an existing project. An omitted status
// defaults to active.
func (s *taskServiceImpl) Create(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	status := req.Status
	if status == "" {
		status = domain.TaskStatusActive
	}
	if err := s.validator.ValidateTaskForCreation(req.ProjectID, req.Name, status); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	task := domain.NewTask(req.ProjectID, req.Name)
	task.Description = req.Description
	task.Status = status

	dbTask := s.mapper.Task.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := s.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// Get retrieves a task by ID.
func (s *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := s.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// List returns all tasks with project details and summed durations.
func (s *taskServiceImpl) List(ctx context.Context) ([]domain.TaskWithStats, error) {
	rows, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Task.StatsFromDatabaseSlice(rows), nil
}

// ListByProject returns the project's tasks with summed durations. An
// unknown project id is an error, not an empty result.
func (s *taskServiceImpl) ListByProject(ctx context.Context, projectID int64) ([]domain.TaskWithStats, error) {
	if err := s.projectValidator.ValidateProjectID(projectID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.mapper.Task.StatsFromDatabaseSlice(rows), nil
}

// Update applies a partial update; nil fields keep their stored values.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, req UpdateTaskRequest) (*domain.Task, error) {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task := s.mapper.Task.FromDatabase(*dbTask)

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := s.validator.ValidateTaskForCreation(task.ProjectID, task.Name, task.Status); err != nil {
		return nil, err
	}

	updated := s.mapper.Task.ToDatabase(task)
	if err := s.repo.UpdateTask(ctx, &updated); err != nil {
		return nil, err
	}

	result := s.mapper.Task.FromDatabase(updated)
	return &result, nil
}

// Delete removes a task and its time entries.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return err
	}
	return s.repo.DeleteTask(ctx, id)
}
