package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/mlmplatform/internal/config"
	"github.com/GlebRadaev/mlmplatform/internal/handlers"
	"github.com/GlebRadaev/mlmplatform/internal/pg"
	"github.com/GlebRadaev/mlmplatform/internal/repo"
	"github.com/GlebRadaev/mlmplatform/internal/service"
	"github.com/GlebRadaev/mlmplatform/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	group *errgroup.Group
	ready bool
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := cfg.EnvFileErr(); err != nil {
		zap.L().Warn("env file ignored", zap.Error(err))
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	a.srv = service.New(a.repo, cfg)
	a.api = handlers.New(a.srv, cfg)

	router := chi.NewRouter()
	a.api.InitRoutes(router)
	a.startHTTPServer(ctx, cfg.Address, router)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// startHTTPServer serves handler until ctx is done or the listener fails,
// then drains in-flight requests for up to shutdownTimeout.
func (a *Application) startHTTPServer(ctx context.Context, addr string, handler http.Handler) {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, gctx := errgroup.WithContext(ctx)
	a.group = group

	group.Go(func() error {
		zap.L().Info("starting http server", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-gctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		zap.L().Info("http server stopped")
		return nil
	})
}

// Wait blocks until every component has stopped and releases the pool.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error
	if a.group != nil {
		appErr = a.group.Wait()
		if appErr != nil {
			zap.L().Error("application stopped with error", zap.Error(appErr))
		}
	} else {
		<-ctx.Done()
	}
	cancel()

	if a.pool != nil {
		a.pool.Close()
	}
	return appErr
}
