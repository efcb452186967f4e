// Package pipeline orchestrates question ingestion: text, image and audio
// entry points that converge on the solution generator.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/asifr/shikkhok/internal/solver"
)

// Short-circuit messages returned when no question text could be recovered
// from the uploaded payload. Wire-visible; do not reword casually.
const (
	MsgNoTextInImage = "Could not extract any text from the image. Please try a clearer image."
	MsgNoTextInAudio = "Could not transcribe any audio. Please try a clearer recording."
)

// TextExtractor recovers text from an image. Empty means no recoverable text.
type TextExtractor interface {
	Extract(ctx context.Context, image []byte) string
}

// AudioTranscriber recovers text from audio. Empty means no recoverable text.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) string
}

// SolutionGenerator solves normalized question text.
type SolutionGenerator interface {
	Solve(ctx context.Context, in solver.Input) solver.Result
}

// Pipeline wires the three ingestion paths to the solver. Invocations are
// independent: the pipeline holds no per-request state, so one Pipeline
// serves all concurrent requests.
type Pipeline struct {
	extractor   TextExtractor
	transcriber AudioTranscriber
	solver      SolutionGenerator
	log         *zap.Logger
}

// New creates a Pipeline.
func New(extractor TextExtractor, transcriber AudioTranscriber, gen SolutionGenerator, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		extractor:   extractor,
		transcriber: transcriber,
		solver:      gen,
		log:         log,
	}
}

// FromText solves a question that arrived as text. The text is passed to
// the generator unmodified.
func (p *Pipeline) FromText(ctx context.Context, in solver.Input) solver.Result {
	return p.solver.Solve(ctx, in)
}

// FromImage recognizes text in the image and solves it. When nothing could
// be recognized it short-circuits with an error-shaped result and the
// generator is never invoked. On success the recognized text is attached
// to the result for caller-side transparency.
func (p *Pipeline) FromImage(ctx context.Context, image []byte, subject, classLevel, language string) solver.Result {
	text := p.extractor.Extract(ctx, image)
	if text == "" {
		p.log.Warn("image yielded no text", zap.String("subject", subject))
		return solver.Result{Error: MsgNoTextInImage}
	}

	res := p.solver.Solve(ctx, solver.Input{
		Text:       text,
		Subject:    subject,
		ClassLevel: classLevel,
		Language:   language,
	})
	res.ExtractedText = text
	return res
}

// FromAudio transcribes the audio and solves it. Symmetric to FromImage,
// with the transcript attached as provenance.
func (p *Pipeline) FromAudio(ctx context.Context, audio []byte, subject, classLevel, language string) solver.Result {
	text := p.transcriber.Transcribe(ctx, audio, language)
	if text == "" {
		p.log.Warn("audio yielded no text", zap.String("subject", subject))
		return solver.Result{Error: MsgNoTextInAudio}
	}

	res := p.solver.Solve(ctx, solver.Input{
		Text:       text,
		Subject:    subject,
		ClassLevel: classLevel,
		Language:   language,
	})
	res.TranscribedText = text
	return res
}
