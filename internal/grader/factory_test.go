package grader

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestNewProviderOpenRouter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or-test"

	p, err := NewProvider(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ModelID() != "openai/gpt-4o-mini" {
		t.Errorf("ModelID = %q, want the default openrouter model", p.ModelID())
	}
}

func TestNewProviderOpenRouterRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"

	if _, err := NewProvider(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("expected error for missing openrouter API key")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"

	if _, err := NewProvider(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfigOpenRouter(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openrouter" {
		t.Errorf("Provider = %q, want openrouter", cfg.Provider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
