package grader

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-verdict",
		Description: "A test verdict object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":       map[string]any{"type": "string"},
				"totalScore": map[string]any{"type": "integer", "minimum": 0},
				"grade":      map[string]any{"type": "string", "enum": []any{"Fail", "Good", "Excellent"}},
			},
			"required": []any{"type", "totalScore"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"type":"html_css","totalScore":85,"grade":"Good"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"type":"html","totalScore":40}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"type":"html"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"type":"html","totalScore":"eighty"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`not json at all`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_FencedValidJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"type\":\"html\",\"totalScore\":88,\"grade\":\"Good\"}\n```"},
		{"bare fence", "```\n{\"type\":\"html\",\"totalScore\":88,\"grade\":\"Good\"}\n```"},
		{"leading whitespace", "  \n```json\n{\"type\":\"html\",\"totalScore\":88}\n```  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateResponse(testSchema(), json.RawMessage(tt.raw)); err != nil {
				t.Fatalf("fenced valid verdict rejected: %v", err)
			}
		})
	}
}

func TestValidateResponse_FencedInvalidStillFails(t *testing.T) {
	raw := json.RawMessage("```json\n{\"type\":\"html\"}\n```")
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for fenced verdict missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestUnwrapFenced_NoFence(t *testing.T) {
	raw := json.RawMessage(`{"type":"html","totalScore":88}`)
	if got := unwrapFenced(raw); string(got) != string(raw) {
		t.Errorf("unfenced content changed: %q", got)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`anything goes`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}
