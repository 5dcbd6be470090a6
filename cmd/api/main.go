package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"io.winapps.thiday/internal/config"
	"io.winapps.thiday/internal/db"
	"io.winapps.thiday/internal/handlers"
	"io.winapps.thiday/internal/logger"
	"io.winapps.thiday/internal/middleware"
	"io.winapps.thiday/internal/scheduler"
	"io.winapps.thiday/internal/service"
	"io.winapps.thiday/internal/store"
)

const readHeaderTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	appLogger, err := logger.New(cfg.App.LogLevel, cfg.App.Pretty)
	if err != nil {
		return fmt.Errorf("init logger: %v", err)
	}
	defer appLogger.Sync()

	wordStore, closeStore, err := openStore(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("open %s store: %v", cfg.Store.Backend, err)
	}
	defer closeStore()

	if cfg.Redis.Enabled {
		redisClient, err := db.InitRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("init redis: %v", err)
		}
		defer redisClient.Close()

		wordStore = store.NewCached(wordStore, redisClient, cfg.Redis.TTL, appLogger)
	}

	wordService := service.NewWordService(wordStore, service.WithLogger(appLogger))

	if cfg.Purge.Schedule != "" {
		purges, err := scheduler.NewPurgeScheduler(cfg.Purge.Schedule, wordService, appLogger)
		if err != nil {
			return err
		}
		purges.Start()
		defer purges.Stop()

		appLogger.Warnw("scheduled purge of all words enabled", "schedule", cfg.Purge.Schedule, "next_run", purges.Next())
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           newRouter(cfg, wordService, wordStore, appLogger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		appLogger.Infow("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	eg.Go(func() error {
		appLogger.Infow("server starting", "addr", cfg.HTTP.Addr, "store", cfg.Store.Backend, "cache", cfg.Redis.Enabled)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %v", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	appLogger.Infow("server exited")
	return nil
}

func newRouter(cfg config.Config, words *service.WordService, wordStore store.Store, logger *zap.SugaredLogger) *gin.Engine {
	if !cfg.App.Pretty {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RequestLoggingMiddleware(logger),
		middleware.RecoveryMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	handlers.RegisterRoutes(router,
		middleware.OwnerMiddleware(middleware.FixedOwner(cfg.App.OwnerID)),
		handlers.NewWordHandler(words, logger),
		handlers.NewHealthHandler(wordStore, logger),
	)

	return router
}
