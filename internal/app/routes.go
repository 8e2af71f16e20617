package app

import (
	"context"
	"net/http"
	"time"

	_ "github.com/ikedadada/start-ddd-and-clean-architecture/docs"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/config"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/handlers"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/repo"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/usecase"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, logger *log.Logger, reg *prometheus.Registry) {
	todoHandler := newTodoHandler(repo.NewPGTodoRepo(db), repo.NewPGTransactor(db), logger)
	registerRoutes(r, cfg, todoHandler, db, reg)
}

func newTodoHandler(todoRepo repo.TodoRepo, tx repo.Transactor, logger *log.Logger) *handlers.TodoHandler {
	return handlers.NewTodoHandler(handlers.TodoUsecases{
		Create:         usecase.NewCreateTodo(todoRepo),
		Get:            usecase.NewGetTodo(todoRepo),
		List:           usecase.NewGetAllTodos(todoRepo),
		Update:         usecase.NewUpdateTodo(todoRepo, tx),
		MarkCompleted:  usecase.NewMarkCompleted(todoRepo, tx),
		MarkIncomplete: usecase.NewMarkIncomplete(todoRepo, tx),
		Delete:         usecase.NewDeleteTodo(todoRepo, tx),
	}, logger)
}

func registerRoutes(r *gin.Engine, cfg config.Config, h *handlers.TodoHandler, db pinger, reg *prometheus.Registry) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg, db))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", metricsHandler(reg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api/v1")
	registerTodoRoutes(api, h)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Todo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"openapi": "/swagger-doc.json",
			"health":  "/health",
			"metrics": "/metrics",
			"api":     "/api/v1",
		})
	}
}

// healthHandler reports 503 while the database is unreachable.
func healthHandler(cfg config.Config, db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "env": cfg.App.Env, "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.POST("/todos", h.Create)
	api.GET("/todos", h.List)
	api.GET("/todos/:id", h.GetByID)
	api.PUT("/todos/:id", h.Update)
	api.PUT("/todos/:id/complete", h.Complete)
	api.PUT("/todos/:id/uncomplete", h.Uncomplete)
	api.DELETE("/todos/:id", h.Delete)
}
