package services

import (
	"timetrack/internal/repository/sqlite"
)

// NewServiceContainer creates all services wired to the given repository.
func NewServiceContainer(repo sqlite.Repository) *ServiceContainer {
	return &ServiceContainer{
		Timer:   NewTimerService(repo),
		Entries: NewEntryService(repo),
		Stats:   NewStatsService(repo),
		Project: NewProjectService(repo),
		Task:    NewTaskService(repo),
	}
}
