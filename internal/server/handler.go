package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/asifr/shikkhok/internal/auth"
	"github.com/asifr/shikkhok/internal/solver"
	"github.com/asifr/shikkhok/internal/store"
)

// QuestionPipeline is the ingestion surface the handlers drive.
type QuestionPipeline interface {
	FromText(ctx context.Context, in solver.Input) solver.Result
	FromImage(ctx context.Context, image []byte, subject, classLevel, language string) solver.Result
	FromAudio(ctx context.Context, audio []byte, subject, classLevel, language string) solver.Result
}

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, email, username, hashedPassword string) (*store.User, error)
	GetByEmail(ctx context.Context, email string) (*store.User, error)
	GetByUsername(ctx context.Context, username string) (*store.User, error)
}

// QuestionStore persists solved questions.
type QuestionStore interface {
	Save(ctx context.Context, q *store.Question) error
	ListByOwner(ctx context.Context, ownerID int64, limit int) ([]store.Question, error)
}

// Pinger reports database liveness. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the API dependencies.
type Handler struct {
	pipeline  QuestionPipeline
	users     UserStore
	questions QuestionStore
	tokens    *auth.TokenManager
	db        Pinger
	log       *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(p QuestionPipeline, users UserStore, questions QuestionStore, tokens *auth.TokenManager, db Pinger, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		pipeline:  p,
		users:     users,
		questions: questions,
		tokens:    tokens,
		db:        db,
		log:       log,
	}
}

// Routes builds the route table with middleware applied.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Root)

	mux.HandleFunc("POST /api/v1/questions/solve_question", h.withOptionalUser(h.SolveQuestion))
	mux.HandleFunc("POST /api/v1/questions/solve_from_image", h.withOptionalUser(h.SolveFromImage))
	mux.HandleFunc("POST /api/v1/questions/solve_from_audio", h.withOptionalUser(h.SolveFromAudio))
	mux.HandleFunc("GET /api/v1/questions/history", h.withUser(h.History))

	mux.HandleFunc("POST /api/v1/auth/register", h.Register)
	mux.HandleFunc("POST /api/v1/auth/token", h.Token)
	mux.HandleFunc("GET /api/v1/auth/health", h.Health)

	return h.withRequestLog(withCORS(mux))
}

// Root answers the liveness probe.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "API is running"})
}
