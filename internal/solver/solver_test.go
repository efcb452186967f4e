package solver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/asifr/shikkhok/internal/llm"
)

func TestSolve_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Step 1: add 2 and 2.\n\nAnswer: 4")},
	)
	g := New(mock, DefaultConfig(), nil)

	res := g.Solve(context.Background(), Input{
		Text:       "2+2=?",
		Subject:    "Math",
		ClassLevel: "Class 5",
		Language:   "english",
	})

	if res.Failed() {
		t.Fatalf("unexpected failure: %s / %s", res.Error, res.Details)
	}
	if res.Question != "2+2=?" {
		t.Fatalf("expected question echoed, got %q", res.Question)
	}
	if res.Answer != "Step 1: add 2 and 2.\n\nAnswer: 4" {
		t.Fatalf("unexpected answer: %q", res.Answer)
	}
	if res.Subject != "Math" || res.ClassLevel != "Class 5" || res.Language != "english" {
		t.Fatalf("request fields not echoed: %+v", res)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly one completion call, got %d", mock.CallCount())
	}
}

func TestSolve_SendsUnmodifiedText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	g := New(mock, DefaultConfig(), nil)

	const text = "  Why is the sky   blue? "
	g.Solve(context.Background(), Input{Text: text, Language: "english"})

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Question: "+text) {
		t.Fatalf("prompt does not carry the text verbatim:\n%s", prompt)
	}
}

func TestSolve_GenerationParameters(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	g := New(mock, DefaultConfig(), nil)

	g.Solve(context.Background(), Input{Text: "q", Language: "english"})

	req := mock.Calls[0]
	if req.Temperature != 0.3 {
		t.Fatalf("expected temperature 0.3, got %v", req.Temperature)
	}
	if req.MaxTokens != 1000 {
		t.Fatalf("expected max tokens 1000, got %d", req.MaxTokens)
	}
	if req.System != systemPrompt {
		t.Fatalf("unexpected system prompt: %q", req.System)
	}
	if req.Schema != nil {
		t.Fatal("solution generation must not request structured output")
	}
}

func TestSolve_LanguageInstruction(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"bangla", "The solution must be in Bangla."},
		{"english", "The solution must be in simple English."},
		{"", "The solution must be in simple English."},
		{"klingon", "The solution must be in simple English."},
	}

	for _, tt := range tests {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
		g := New(mock, DefaultConfig(), nil)
		g.Solve(context.Background(), Input{Text: "q", Language: tt.language})

		prompt := mock.Calls[0].Messages[0].Content
		if !strings.Contains(prompt, tt.want) {
			t.Errorf("language %q: prompt missing %q:\n%s", tt.language, tt.want, prompt)
		}
	}
}

func TestSolve_DownstreamFailureIsFailSoft(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(mock, DefaultConfig(), nil)

	res := g.Solve(context.Background(), Input{Text: "q", Language: "english"})

	if !res.Failed() {
		t.Fatal("expected an error-shaped result")
	}
	if res.Error != ErrAnswerFailed {
		t.Fatalf("unexpected error message: %q", res.Error)
	}
	if res.Details == "" {
		t.Fatal("expected failure details")
	}
	if res.Answer != "" {
		t.Fatal("answer and error are mutually exclusive")
	}
}

func TestSolve_Idempotent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Step 1... Answer: 4")},
		llm.MockResponse{Content: json.RawMessage("Step 1... Answer: 4")},
	)
	g := New(mock, DefaultConfig(), nil)

	in := Input{Text: "2+2=?", Subject: "Math", ClassLevel: "Class 5", Language: "english"}
	first := g.Solve(context.Background(), in)
	second := g.Solve(context.Background(), in)

	if first != second {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestResult_JSONShapes(t *testing.T) {
	success := Result{
		Question:   "2+2=?",
		Answer:     "4",
		Subject:    "Math",
		ClassLevel: "Class 5",
		Language:   "english",
	}
	data, err := json.Marshal(success)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"question", "answer", "subject", "class_level", "language"} {
		if _, ok := m[key]; !ok {
			t.Errorf("success shape missing %q: %s", key, data)
		}
	}
	if _, ok := m["error"]; ok {
		t.Errorf("success shape must not carry error: %s", data)
	}

	failure := Result{Error: ErrAnswerFailed, Details: "boom", ExtractedText: "2+2"}
	data, err = json.Marshal(failure)
	if err != nil {
		t.Fatal(err)
	}
	m = nil
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if len(m) != 3 {
		t.Fatalf("failure shape should have error, details and provenance only: %s", data)
	}
	if m["error"] != ErrAnswerFailed || m["details"] != "boom" || m["extracted_text"] != "2+2" {
		t.Fatalf("unexpected failure shape: %s", data)
	}
}
