package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LayoutPrompt builds the provider-independent prompt. Providers differ only
// in transport; the contract with the model is the same strict-JSON layout.
func LayoutPrompt(description string) string {
	return fmt.Sprintf(`You are a garden planning assistant. Design a garden layout for the following request and answer with JSON only, no prose, no markdown fences.

The JSON must have exactly this shape:
{
  "gardenZones": {"<zone name>": "<dimensions and position>"},
  "plantPlacement": {"<zone name>": ["<plant>", ...]},
  "seasonalPlan": {"Spring": ["<activity>", ...], "Summer": [...], "Fall": [...], "Winter": [...]}
}

REQUEST:
%s`, description)
}

// ParseLayout extracts a GardenLayout from raw model output. Models wrap
// JSON in markdown fences or prose despite instructions, so the first
// balanced JSON object is located before decoding.
func ParseLayout(raw string) (*GardenLayout, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var layout GardenLayout
	if err := json.Unmarshal([]byte(raw[start:end+1]), &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if len(layout.GardenZones) == 0 {
		return nil, fmt.Errorf("layout has no garden zones")
	}
	return &layout, nil
}
