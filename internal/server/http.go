package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Palaka108/kb-quiz-adventure/internal/auth"
	"github.com/Palaka108/kb-quiz-adventure/internal/config"
	"github.com/Palaka108/kb-quiz-adventure/internal/logging"
	"github.com/Palaka108/kb-quiz-adventure/internal/quiz"
	httperrors "github.com/Palaka108/kb-quiz-adventure/pkg/http/errors"
)

// PingFunc checks a single upstream dependency.
type PingFunc func(ctx context.Context) error

// Dependencies pinged by /v1/ping, keyed by name.
type Dependencies map[string]PingFunc

// NewHTTPServer wires health, metrics and the quiz routes.
// quizHandlers can be nil when only the base routes are needed.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, deps Dependencies, validator auth.TokenValidator, quizHandlers *quiz.HTTPHandlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(logger, deps, validator, quizHandlers),
	}
}

// NewRouter builds the request mux behind the API server.
func NewRouter(logger zerolog.Logger, deps Dependencies, validator auth.TokenValidator, quizHandlers *quiz.HTTPHandlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), deps); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondError(w, http.StatusBadGateway, httperrors.ErrCodeUpstreamError, "upstream error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if quizHandlers != nil && validator != nil {
		authn := auth.AuthMiddleware(validator, logger)
		mux.Handle("GET /v1/players/{player}/quiz", authn(auth.RequireAuth(http.HandlerFunc(quizHandlers.GetQuiz))))
		mux.Handle("GET /v1/players/{player}/focus", authn(auth.RequireAuth(http.HandlerFunc(quizHandlers.GetFocus))))
	}

	return withRequestLogger(logger, mux)
}

func pingDependencies(ctx context.Context, deps Dependencies) error {
	for name, ping := range deps {
		if err := ping(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// withRequestLogger puts a request-scoped logger into the context.
func withRequestLogger(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), reqLogger)))
	})
}
