// Package solver turns normalized question text into a step-by-step
// tutoring solution via a completion model.
package solver

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/asifr/shikkhok/internal/llm"
)

// ErrAnswerFailed is the user-facing message returned when the downstream
// completion call fails for any reason.
const ErrAnswerFailed = "Failed to generate an answer. Please try again later."

// Input carries a question and its context to the generator.
type Input struct {
	Text       string
	Subject    string
	ClassLevel string
	Language   string
}

// Generator produces solutions through an llm.Provider. It is stateless and
// safe for concurrent use.
type Generator struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{provider: provider, cfg: cfg, log: log}
}

// Solve sends one completion request for the given question and returns a
// well-formed Result in every case. Downstream failures are absorbed into
// an error-shaped Result, never returned as a Go error, so HTTP handlers
// can marshal the return value unconditionally.
func (g *Generator) Solve(ctx context.Context, in Input) Result {
	ctx = llm.WithPurpose(ctx, "solve")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(in)},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		g.log.Error("solution generation failed",
			zap.String("subject", in.Subject),
			zap.String("class_level", in.ClassLevel),
			zap.Error(err))
		return Result{
			Error:   ErrAnswerFailed,
			Details: err.Error(),
		}
	}

	answer := strings.TrimSpace(string(resp.Content))

	return Result{
		Question:   in.Text,
		Answer:     answer,
		Subject:    in.Subject,
		ClassLevel: in.ClassLevel,
		Language:   in.Language,
	}
}
