package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
	"github.com/Palaka108/kb-quiz-adventure/internal/auth/jwt"
	"github.com/Palaka108/kb-quiz-adventure/internal/config"
	"github.com/Palaka108/kb-quiz-adventure/internal/db/queries"
	"github.com/Palaka108/kb-quiz-adventure/internal/db/repository"
	"github.com/Palaka108/kb-quiz-adventure/internal/logging"
	"github.com/Palaka108/kb-quiz-adventure/internal/metrics"
	"github.com/Palaka108/kb-quiz-adventure/internal/question"
	"github.com/Palaka108/kb-quiz-adventure/internal/quiz"
	"github.com/Palaka108/kb-quiz-adventure/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	refreshWorker *question.RefreshWorker
	bgCancels     []context.CancelFunc
}

// New bootstraps logger, Postgres, Redis, the quiz service and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	engine, err := adaptive.NewEngine(cfg.Quiz.Engine(), adaptive.EngineOptions{})
	if err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Postgres.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		pool.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	q := queries.New(pool)
	questionRepo := repository.NewQuestionRepository(q)
	masteryRepo := repository.NewMasteryRepository(q)
	sessionRepo := repository.NewSessionRepository(q)

	bank := question.NewBank(questionRepo, question.NewCache(redisClient, cfg.Quiz.BankCacheTTL), m, logger)
	refreshWorker := question.NewRefreshWorker(bank, cfg.Quiz.BankRefreshInterval, cfg.Quiz.RequestTimeout, m, logger)

	quizSvc := quiz.NewService(bank, masteryRepo, sessionRepo, engine, quiz.ServiceOptions{Metrics: m}, logger)
	quizHandlers := quiz.NewHTTPHandlers(quizSvc, cfg.Quiz.RequestTimeout, logger)

	verifier := jwt.NewVerifier([]byte(cfg.Security.JWTSecret), cfg.Security.JWTIssuer)

	deps := server.Dependencies{
		"postgres": pool.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}
	apiServer := server.NewHTTPServer(cfg, logger, deps, verifier, quizHandlers)

	return &Application{
		cfg:           cfg,
		logger:        logger,
		pool:          pool,
		redis:         redisClient,
		http:          apiServer,
		refreshWorker: refreshWorker,
		bgCancels:     make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.refreshWorker != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.refreshWorker.Run(bgCtx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Warn().Err(err).Msg("bank refresh worker stopped")
			}
		}()
	}
}
