package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetrack/internal/config"
	"timetrack/internal/services"
)

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(cfg *config.Config, logger *zap.SugaredLogger, container *services.ServiceContainer) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	SetupMiddleware(r, cfg.CORS, logger)

	timerHandler := NewTimerHandler(container.Timer, logger)
	entryHandler := NewEntryHandler(container.Entries, logger)
	projectHandler := NewProjectHandler(container.Project, logger)
	taskHandler := NewTaskHandler(container.Task, logger)
	statsHandler := NewStatsHandler(container.Stats, logger)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/timer", timerHandler.Active)
		api.POST("/timer", timerHandler.Start)
		api.PUT("/timer", timerHandler.Stop)

		api.GET("/time-entries", entryHandler.List)
		api.POST("/time-entries", entryHandler.Create)
		api.GET("/time-entries/search", entryHandler.Search)
		api.GET("/time-entries/stats", statsHandler.EntryStats)
		api.POST("/time-entries/bulk", entryHandler.Bulk)
		api.PUT("/time-entries/:id", entryHandler.Update)
		api.DELETE("/time-entries/:id", entryHandler.Delete)

		api.GET("/stats", statsHandler.Overview)
		api.GET("/invoice", statsHandler.Invoice)

		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:id", projectHandler.Get)
		api.PUT("/projects/:id", projectHandler.Update)
		api.DELETE("/projects/:id", projectHandler.Delete)

		api.GET("/tasks", taskHandler.List)
		api.POST("/tasks", taskHandler.Create)
		api.GET("/tasks/:id", taskHandler.Get)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)
	}

	return r
}
