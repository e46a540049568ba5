package ai

import (
	"context"
	"fmt"

	"virtualgrow-server/pkg/gemini"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewPlanner creates a Planner based on the config. "auto" prefers Gemini
// when an API key is available and falls back to Ollama otherwise.
func NewPlanner(cfg Config) (Planner, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return &geminiPlanner{svc: gemini.NewGeminiService(cfg.GeminiAPIKey)}, nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		if cfg.GeminiAPIKey != "" {
			return &geminiPlanner{svc: gemini.NewGeminiService(cfg.GeminiAPIKey)}, nil
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}

// geminiPlanner adapts the generic Gemini client to the Planner interface.
type geminiPlanner struct {
	svc *gemini.GeminiService
}

func (p *geminiPlanner) GenerateGardenPlan(ctx context.Context, description string) (*GardenLayout, error) {
	text, err := p.svc.GenerateContent(ctx, LayoutPrompt(description))
	if err != nil {
		return nil, err
	}
	return ParseLayout(text)
}
