// Package server implements the `prio server` command.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"prio/internal/application/checklist/usecases"
	domainactivity "prio/internal/domain/activity"
	infraactivity "prio/internal/infrastructure/activity"
	"prio/internal/infrastructure/auth"
	appconfig "prio/internal/infrastructure/config"
	"prio/internal/infrastructure/database"
	"prio/internal/infrastructure/permission"
	"prio/internal/infrastructure/ratelimit"
	"prio/internal/infrastructure/repository"
	httpiface "prio/internal/interfaces/http"
	checklisthandler "prio/internal/interfaces/http/handlers/checklist"
	"prio/internal/shared/goroutine"
	"prio/internal/shared/logger"
)

// NewCommand builds the server command.
func NewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")

	return cmd
}

func run(configPath string) error {
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Debug); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.NewLogger().Named("server")

	db, err := database.Init(&cfg.Database, cfg.Server.Debug)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	dispatcher := domainactivity.NewInMemoryDispatcher(cfg.Activity.BufferSize, func(event domainactivity.Event, err error) {
		log.Warnw("activity handler failed", "event_id", event.ID, "error", err)
	})
	recorder := infraactivity.NewRecorder(repository.NewGormActivityRepository(db), log.Named("activity"))
	dispatcher.Subscribe(recorder)
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("start activity dispatcher: %w", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			log.Warnw("failed to stop activity dispatcher", "error", err)
		}
	}()

	tokens, err := auth.NewTokenService(&cfg.JWT)
	if err != nil {
		return fmt.Errorf("init token service: %w", err)
	}

	perms, err := permission.NewService(db, cfg.Permission.ModelPath)
	if err != nil {
		return fmt.Errorf("init permission service: %w", err)
	}

	var limiter ratelimit.Limiter = ratelimit.NoopLimiter{}
	if cfg.RateLimit.Enabled && cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	itemRepo := repository.NewGormChecklistItemRepository(db)
	issueRepo := repository.NewGormIssueRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	handler := checklisthandler.NewHandler(
		usecases.NewListItemsUseCase(itemRepo, issueRepo, userRepo, log),
		usecases.NewCreateItemUseCase(itemRepo, issueRepo, userRepo, dispatcher, log),
		usecases.NewGetItemUseCase(itemRepo, issueRepo, userRepo, log),
		usecases.NewUpdateItemUseCase(itemRepo, issueRepo, userRepo, dispatcher, log),
		usecases.NewDeleteItemUseCase(itemRepo, issueRepo, dispatcher, log),
		log.Named("checklist"),
	)

	router := httpiface.NewRouter(httpiface.RouterDeps{
		Config:           cfg,
		ChecklistHandler: handler,
		Tokens:           tokens,
		Permissions:      perms,
		Limiter:          limiter,
		Logger:           log.Named("http"),
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped unexpectedly", "error", err)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}
