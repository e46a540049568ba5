package ai

import "context"

// GardenLayout is the structured plan a provider must return: named zones,
// plant placement per zone, and a per-season activity plan.
type GardenLayout struct {
	GardenZones    map[string]string   `json:"gardenZones"`
	PlantPlacement map[string][]string `json:"plantPlacement"`
	SeasonalPlan   map[string][]string `json:"seasonalPlan"`
}

// Planner is the interface for AI garden-plan generation.
// Implement this interface to add new providers (Gemini, Ollama, OpenAI, etc.)
type Planner interface {
	GenerateGardenPlan(ctx context.Context, description string) (*GardenLayout, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
