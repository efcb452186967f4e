package speech

import "time"

// Config holds audio transcription configuration.
type Config struct {
	// APIKey authenticates against the OpenAI API.
	APIKey string

	// Model is the speech-to-text model. Default: "whisper-1".
	Model string

	// BaseURL optionally overrides the API endpoint (compatible APIs, tests).
	BaseURL string

	// Timeout bounds one transcription call. Default: 60s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:   "whisper-1",
		Timeout: 60 * time.Second,
	}
}
