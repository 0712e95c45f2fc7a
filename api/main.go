package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/gorevce/api/handlers"
	"github.com/kutbudev/gorevce/internal/dispatch"
	"github.com/kutbudev/gorevce/internal/store"
	"github.com/kutbudev/gorevce/pkg/config"
	"github.com/kutbudev/gorevce/pkg/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := repository.NewDatabase(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	pool := dispatch.New(dispatch.WithWorkerCount(4), dispatch.WithLogger(logger))
	defer pool.Stop()

	h := handlers.New(store.NewTaskStore(db), store.NewTagStore(db), pool)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		v1.GET("/tasks", h.ListTasks)
		v1.POST("/tasks", h.CreateTask)
		v1.GET("/tasks/:id", h.GetTask)
		v1.PUT("/tasks/:id", h.UpdateTask)
		v1.DELETE("/tasks/:id", h.DeleteTask)
		v1.PUT("/tasks/:id/toggle", h.ToggleTask)

		// Tag routes
		v1.GET("/tags", h.ListTags)
		v1.POST("/tags", h.CreateTag)
		v1.PUT("/tags/:id", h.RenameTag)
		v1.DELETE("/tags/:id", h.DeleteTag)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
