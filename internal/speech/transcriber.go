// Package speech turns audio payloads into question text using a
// speech-to-text completion model.
package speech

import (
	"bytes"
	"context"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Transcriber converts audio to text through the Whisper API. It holds one
// long-lived client and is safe for concurrent use.
type Transcriber struct {
	client *openai.Client
	cfg    Config
	log    *zap.Logger
}

// New creates a Transcriber. The configured timeout is applied to the HTTP
// client once here, so a single slow call cannot pin a request forever.
func New(cfg Config, log *zap.Logger) (*Transcriber, error) {
	if log == nil {
		log = zap.NewNop()
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Transcriber{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		log:    log,
	}, nil
}

// LanguageCode maps the request language to a transcription language code.
// The mapping is total: "bangla" becomes "bn" and everything else,
// including unknown or empty values, becomes "en".
func LanguageCode(language string) string {
	if language == "bangla" {
		return "bn"
	}
	return "en"
}

// Transcribe sends the audio payload for transcription and returns the
// transcript. Any failure is absorbed and surfaces as "", mirroring the
// extractor's convention that empty means no text recovered.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, language string) string {
	code := LanguageCode(language)

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.cfg.Model,
		Reader:   bytes.NewReader(audio),
		FilePath: "question-audio.mp3",
		Language: code,
	})
	if err != nil {
		t.log.Error("transcription failed",
			zap.String("language", code),
			zap.Error(err))
		return ""
	}

	t.log.Info("transcribed audio",
		zap.String("language", code),
		zap.Int("chars", len(resp.Text)))
	return resp.Text
}
