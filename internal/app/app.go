package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/config"
	"github.com/ikedadada/start-ddd-and-clean-architecture/internal/handlers"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	cfg     config.Config
	db      *pgxpool.Pool
	logger  *log.Logger
	metrics *prometheus.Registry
	router  *gin.Engine
}

func New(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger, metrics: NewRegistry()}

	if cfg.PG.AutoMigrate {
		if err := Migrate(ctx, cfg.PG.DSN, "up", logger); err != nil {
			return nil, err
		}
	}

	db, err := newPostgres(ctx, cfg.PG)
	if err != nil {
		return nil, err
	}
	a.db = db
	registerPoolMetrics(a.metrics, db)

	if err := handlers.RegisterValidations(); err != nil {
		db.Close()
		return nil, err
	}

	a.router = newRouter(cfg, logger, a.metrics)
	Setup(a.router, cfg, db, logger, a.metrics)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.db != nil {
		a.db.Close()
	}
	return nil
}

func newPostgres(ctx context.Context, cfg config.PGConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	pcfg.MaxConns = cfg.MaxConns
	pcfg.MinConns = cfg.MinConns
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRouter(cfg config.Config, logger *log.Logger, reg *prometheus.Registry) *gin.Engine {
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(requestLogger(logger), newHTTPMetrics(reg).middleware(), recovery(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.AllowOrigins(),
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	return r
}
