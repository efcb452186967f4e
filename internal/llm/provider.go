package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a completion model vendor.
type Provider interface {
	// Generate sends a single non-streamed completion request and returns
	// the model's output. When the request carries a Schema, the provider
	// uses its native structured-output mechanism and the returned Content
	// is JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Solving a question is single-turn, so
	// this usually holds one user message.
	Messages []Message

	// Schema, when set, constrains the response to JSON conforming to it.
	// When nil the response Content is the raw generated text.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls sampling randomness, 0.0-1.0. Zero value means
	// deterministic.
	Temperature float64
}

// Message is a single conversation entry.
type Message struct {
	Role    Role
	Content string

	// Images are inline attachments for vision-capable models. Text
	// recognition sends the page image here.
	Images []Image
}

// Image is an inline binary attachment to a message.
type Image struct {
	MIMEType string
	Data     []byte
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "ocr-spans".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when the request had
	// a Schema, otherwise the raw text wrapped as json.RawMessage.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
