package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Palaka108/kb-quiz-adventure/internal/adaptive"
	"github.com/Palaka108/kb-quiz-adventure/internal/auth"
	"github.com/Palaka108/kb-quiz-adventure/internal/logging"
	"github.com/Palaka108/kb-quiz-adventure/internal/question"
	httperrors "github.com/Palaka108/kb-quiz-adventure/pkg/http/errors"
)

type quizBuilder interface {
	BuildQuiz(ctx context.Context, player string) (Quiz, error)
	Dashboard(ctx context.Context, player string) (Dashboard, error)
}

// HTTPHandlers serves the player quiz routes. Both routes expect
// auth.RequireAuth in front of them.
type HTTPHandlers struct {
	svc     quizBuilder
	timeout time.Duration
	logger  zerolog.Logger
}

func NewHTTPHandlers(svc quizBuilder, timeout time.Duration, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:     svc,
		timeout: timeout,
		logger:  logger.With().Str("component", "quiz_http").Logger(),
	}
}

// QuestionPayload is a question as sent to clients: no answer key or explanation.
type QuestionPayload struct {
	ID         string   `json:"id"`
	Skill      string   `json:"skill"`
	SubSkill   string   `json:"sub_skill,omitempty"`
	Difficulty int      `json:"difficulty"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
}

// QuizResponse is the body of GET /v1/players/{player}/quiz.
type QuizResponse struct {
	QuizID    string            `json:"quiz_id"`
	Player    string            `json:"player"`
	Questions []QuestionPayload `json:"questions"`
	Requested int               `json:"requested"`
	Short     bool              `json:"short"`
	CreatedAt string            `json:"created_at"`
}

// FocusResponse is the body of GET /v1/players/{player}/focus.
type FocusResponse struct {
	Player      string               `json:"player"`
	Focus       []adaptive.FocusArea `json:"focus"`
	NeedsReview []string             `json:"needs_review"`
}

// GetQuiz handles GET /v1/players/{player}/quiz.
func (h *HTTPHandlers) GetQuiz(w http.ResponseWriter, r *http.Request) {
	player, ok := h.authorize(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	quiz, err := h.svc.BuildQuiz(ctx, player)
	if err != nil {
		h.respondError(w, r, err, httperrors.ErrCodeQuizBuildFailed, "Failed to build quiz")
		return
	}

	resp := QuizResponse{
		QuizID:    quiz.ID.String(),
		Player:    quiz.Player,
		Questions: toPayload(quiz.Questions),
		Requested: quiz.Requested,
		Short:     quiz.Short,
		CreatedAt: quiz.CreatedAt.UTC().Format(time.RFC3339),
	}
	writeJSON(w, resp)
}

// GetFocus handles GET /v1/players/{player}/focus.
func (h *HTTPHandlers) GetFocus(w http.ResponseWriter, r *http.Request) {
	player, ok := h.authorize(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	dash, err := h.svc.Dashboard(ctx, player)
	if err != nil {
		h.respondError(w, r, err, httperrors.ErrCodeFocusFailed, "Failed to load focus summary")
		return
	}

	review := dash.NeedsReview
	if review == nil {
		review = []string{}
	}
	writeJSON(w, FocusResponse{Player: dash.Player, Focus: dash.Focus, NeedsReview: review})
}

// authorize returns the path player when it matches the token's player.
func (h *HTTPHandlers) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	player := r.PathValue("player")
	if player == "" {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "player is required")
		return "", false
	}
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
		return "", false
	}
	if claims.Player() != player {
		httperrors.RespondForbidden(w, httperrors.ErrCodePlayerMismatch, "token does not belong to this player")
		return "", false
	}
	return player, true
}

func (h *HTTPHandlers) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func (h *HTTPHandlers) respondError(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	logger := logging.FromContext(r.Context())
	switch {
	case errors.Is(err, ErrMissingPlayer):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, adaptive.ErrInvalidQuestion), errors.Is(err, adaptive.ErrDuplicateQuestion):
		logger.Error().Err(err).Msg("question bank rejected by engine")
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeInvalidQuestionBank, err.Error())
	case errors.Is(err, adaptive.ErrInvalidMastery):
		logger.Error().Err(err).Msg("mastery rejected by engine")
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeInvalidMastery, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn().Err(err).Msg("quiz request timed out")
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeServiceUnavailable, "upstream timed out")
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg(message)
		httperrors.RespondError(w, http.StatusInternalServerError, code, message)
	}
}

func toPayload(qs []question.Question) []QuestionPayload {
	out := make([]QuestionPayload, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuestionPayload{
			ID:         q.ID,
			Skill:      q.Skill,
			SubSkill:   q.SubSkill,
			Difficulty: q.Difficulty,
			Text:       q.Text,
			Options:    q.Options,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
