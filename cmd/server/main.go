package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wellness-backend/internal/config"
	httpdelivery "wellness-backend/internal/delivery/http"
	"wellness-backend/internal/delivery/websocket"
	"wellness-backend/internal/domain"
	"wellness-backend/internal/infrastructure/db"
	"wellness-backend/internal/infrastructure/fcm"
	"wellness-backend/internal/logging"
	"wellness-backend/internal/repository"
	"wellness-backend/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Initialize Repositories
	assessments, tokens, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// 2. Initialize Push Notifications (disabled without credentials)
	fcmClient, err := fcm.NewClient(ctx, fcm.Credentials{
		Path: cfg.Firebase.CredentialsPath,
		JSON: cfg.Firebase.CredentialsJSON,
	}, log.Named("fcm"))
	if err != nil {
		return fmt.Errorf("init fcm: %w", err)
	}

	// 3. Initialize Usecase
	uc := usecase.NewAssessmentUsecase(assessments, tokens, fcmClient, cfg.NotifyCooldown(), log.Named("assessment"))

	// 4. Initialize Delivery
	handler := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Assessments:    httpdelivery.NewAssessmentHandler(uc, log),
		Tokens:         httpdelivery.NewTokenHandler(tokens, log),
		Test:           httpdelivery.NewTestHandler(fcmClient, tokens, log),
		WS:             websocket.NewHandler(uc, cfg.PollInterval(), log.Named("ws")),
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Log:            log.Named("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()

		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStore builds the repositories for the configured driver. The SQLite
// driver keeps device tokens in memory.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (domain.AssessmentRepository, domain.DeviceTokenRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg.Store)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		log.Info("using postgres store")
		return repository.NewPostgresAssessmentRepository(pool), repository.NewPostgresTokenRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		repo, err := repository.NewSQLiteAssessmentRepository(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Info("using sqlite store", zap.String("path", cfg.Store.SQLitePath))
		return repo, repository.NewTokenRepository(), func() { repo.Close() }, nil

	default:
		log.Warn("using in-memory store, data is lost on restart")
		return repository.NewInMemoryAssessmentRepository(), repository.NewTokenRepository(), func() {}, nil
	}
}
