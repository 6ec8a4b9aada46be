package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhub-backend/internal/adapter/postgres/concept"
	"github.com/heartmarshall/studyhub-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/studyhub-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/studyhub-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/studyhub-backend/internal/auth"
	"github.com/heartmarshall/studyhub-backend/internal/config"
	"github.com/heartmarshall/studyhub-backend/internal/service/interleaved"
	"github.com/heartmarshall/studyhub-backend/internal/service/study"
	"github.com/heartmarshall/studyhub-backend/internal/transport/middleware"
	"github.com/heartmarshall/studyhub-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled, then
// shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("oracle", cfg.Oracle.Provider),
	)

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, pool, logger); err != nil {
			return err
		}
	}

	// 2. Repositories.
	txm := postgres.NewTxManager(pool, postgres.WithLockTimeout(cfg.Database.LockTimeout))
	conceptRepo := concept.New(pool)
	flashcardRepo := flashcard.New(pool)
	sessionRepo := session.New(pool)
	questionRepo := question.New(pool)

	// 3. Oracles.
	oracle := newOracle(cfg.Oracle, logger)

	// 4. Services.
	clock := clockwork.NewRealClock()

	studyService := study.NewService(logger, flashcardRepo, txm, clock, study.Config{
		Timezone:        cfg.SRS.Location,
		DefaultDueLimit: cfg.SRS.DefaultDueLimit,
		MaxDueLimit:     cfg.SRS.MaxDueLimit,
	})

	interleavedService := interleaved.NewService(
		logger, conceptRepo, sessionRepo, questionRepo,
		oracle.generator, oracle.grader, txm,
		interleaved.Config{
			QuestionsPerConcept:      cfg.Interleaved.QuestionsPerConcept,
			MinConcepts:              cfg.Interleaved.MinConcepts,
			MaxConcepts:              cfg.Interleaved.MaxConcepts,
			GenerationTimeout:        cfg.Interleaved.GenerationTimeout,
			GradingTimeout:           cfg.Interleaved.GradingTimeout,
			MaxConcurrentGenerations: cfg.Interleaved.MaxConcurrentGenerations,
		},
		interleaved.WithClock(clock),
	)

	// 5. HTTP.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, clock)

	var rateLimit middleware.Middleware
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		defer limiter.Stop()
		rateLimit = limiter.Middleware()
	}

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, BuildVersion(), cfg.Oracle.Provider, clock),
		rest.NewFlashcardHandler(studyService, logger),
		rest.NewConceptHandler(interleavedService, logger),
		rest.NewSessionHandler(interleavedService, logger),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
		middleware.Auth(jwtMgr, logger),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests within the
// configured shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	applied, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	logger.Info("migrations applied", slog.Int("count", len(applied)))
	return nil
}
