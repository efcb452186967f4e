// Package ocr recovers question text from images using a vision-capable
// completion model.
package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/asifr/shikkhok/internal/llm"
)

const extractPrompt = `Read every piece of text visible in this image, in natural reading order.
The text may be in English, in Bangla, or in a mix of both; transcribe each span exactly as written, without translating or correcting it.
Return each detected span with your confidence in the transcription.`

// spanSchema constrains the model output to an ordered span list. Each span
// mirrors one detected text region with its confidence score.
var spanSchema = &llm.Schema{
	Name:        "ocr-spans",
	Description: "Text spans recognized in an image, in reading order",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"spans": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":       map[string]any{"type": "string"},
						"confidence": map[string]any{"type": "number"},
					},
					"required": []any{"text", "confidence"},
				},
			},
		},
		"required": []any{"spans"},
	},
}

type span struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type spanList struct {
	Spans []span `json:"spans"`
}

// Extractor recognizes text in images. Construct one per process: the
// underlying model client is expensive to set up and is shared read-only by
// all concurrent requests. A construction failure is remembered and every
// later Extract call degrades to "no text recovered" instead of retrying
// initialization.
type Extractor struct {
	provider llm.Provider
	cfg      Config
	initErr  error
	log      *zap.Logger
}

// New builds the Extractor and its vision model client. It never returns an
// error; an initialization failure is cached inside the returned value.
func New(ctx context.Context, cfg Config, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}

	provider, err := llm.NewGeminiProvider(ctx, llm.GeminiConfig{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
	}, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		log.Error("text extractor unavailable", zap.Error(err))
		return &Extractor{cfg: cfg, initErr: err, log: log}
	}

	log.Info("text extractor initialized", zap.String("model", provider.ModelID()))
	return &Extractor{provider: llm.WithLogging(provider, log), cfg: cfg, log: log}
}

// newWithProvider wires an Extractor onto an existing provider. Used by tests.
func newWithProvider(p llm.Provider, cfg Config, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{provider: p, cfg: cfg, log: log}
}

// Extract runs recognition over the image and returns the detected span
// texts joined by single spaces, in the order the model reported them.
// It returns "" when the extractor failed to initialize, when recognition
// fails, or when no text was found; callers treat emptiness as "no
// recoverable text", not as a hard failure.
func (e *Extractor) Extract(ctx context.Context, image []byte) string {
	if e.initErr != nil {
		e.log.Error("text extractor is not available", zap.Error(e.initErr))
		return ""
	}

	ctx = llm.WithPurpose(ctx, "ocr")

	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: extractPrompt,
			Images: []llm.Image{{
				MIMEType: sniffMIME(image),
				Data:     image,
			}},
		}},
		Schema:    spanSchema,
		MaxTokens: e.cfg.MaxTokens,
	})
	if err != nil {
		e.log.Error("recognition failed", zap.Error(err))
		return ""
	}

	var list spanList
	if err := json.Unmarshal(resp.Content, &list); err != nil {
		e.log.Error("recognition returned unparseable spans", zap.Error(err))
		return ""
	}

	if len(list.Spans) == 0 {
		// Legitimately blank image vs. unreadable text is the model's
		// call; both surface as empty to the caller.
		e.log.Warn("recognition found no text spans")
		return ""
	}

	text := joinSpans(list.Spans)
	e.log.Info("extracted text from image",
		zap.Int("spans", len(list.Spans)),
		zap.Int("chars", len(text)))
	return text
}

// joinSpans concatenates span texts with single-space separators, keeping
// the model's reported order. Confidence scores are ignored.
func joinSpans(spans []span) string {
	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// sniffMIME detects the image content type from its leading bytes.
func sniffMIME(image []byte) string {
	return http.DetectContentType(image)
}
