package llm

import (
	"testing"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
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
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	spans := schema.Properties["spans"]
	if spans == nil || spans.Type != "ARRAY" {
		t.Fatalf("expected ARRAY spans property, got %+v", spans)
	}
	item := spans.Items
	if item == nil || item.Type != "OBJECT" {
		t.Fatalf("expected OBJECT items, got %+v", item)
	}
	if item.Properties["confidence"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER confidence, got %s", item.Properties["confidence"].Type)
	}
	if len(item.Required) != 2 {
		t.Fatalf("expected 2 required item fields, got %d", len(item.Required))
	}
}

func TestBuildGeminiContents_ImageAttachment(t *testing.T) {
	msgs := []Message{{
		Role:    RoleUser,
		Content: "Read all text on this page.",
		Images:  []Image{{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}},
	}}

	contents := buildGeminiContents(msgs)
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	if len(contents[0].Parts) != 2 {
		t.Fatalf("expected text + image parts, got %d", len(contents[0].Parts))
	}
	blob := contents[0].Parts[1].InlineData
	if blob == nil || blob.MIMEType != "image/jpeg" {
		t.Fatalf("expected inline jpeg blob, got %+v", blob)
	}
}
