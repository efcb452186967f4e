package ocr

import "time"

// Config holds text extractor configuration.
type Config struct {
	// APIKey authenticates against the Gemini API.
	APIKey string

	// Model is the vision-capable model used for recognition.
	// Default: "gemini-flash".
	Model string

	// MaxTokens bounds the recognized span payload. Default: 2000.
	MaxTokens int

	// Timeout bounds one recognition call. Default: 45s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:     "gemini-flash",
		MaxTokens: 2000,
		Timeout:   45 * time.Second,
	}
}
