package llm

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with request
// logging. Every failure surfaces as an error from Generate; there is no
// retry layer, a failed call is terminal for that invocation.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI, httpClient)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic, httpClient)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini, httpClient)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, log), nil
}
