package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layoutJSON = `{
	"gardenZones": {"North Bed": "2m x 3m, back fence"},
	"plantPlacement": {"North Bed": ["tomato", "basil"]},
	"seasonalPlan": {"Spring": ["sow seeds"], "Summer": ["water daily"], "Fall": ["harvest"], "Winter": ["mulch"]}
}`

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"bare JSON", layoutJSON, false},
		{"markdown fenced", "```json\n" + layoutJSON + "\n```", false},
		{"prose around JSON", "Here is your layout:\n" + layoutJSON + "\nHappy gardening!", false},
		{"no JSON at all", "I cannot help with that.", true},
		{"broken JSON", `{"gardenZones": {"North Bed"`, true},
		{"empty zones", `{"gardenZones": {}, "plantPlacement": {}, "seasonalPlan": {}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := ParseLayout(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2m x 3m, back fence", layout.GardenZones["North Bed"])
			assert.Equal(t, []string{"tomato", "basil"}, layout.PlantPlacement["North Bed"])
			assert.Len(t, layout.SeasonalPlan, 4)
		})
	}
}

func TestLayoutPrompt_IncludesRequest(t *testing.T) {
	prompt := LayoutPrompt("a balcony herb garden in Hanoi")
	assert.Contains(t, prompt, "a balcony herb garden in Hanoi")
	assert.Contains(t, prompt, "gardenZones")
}

func TestOllamaService_GenerateGardenPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req["model"])
		assert.Contains(t, req["prompt"], "raised beds")

		json.NewEncoder(w).Encode(map[string]interface{}{"response": layoutJSON})
	}))
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "llama3")
	layout, err := svc.GenerateGardenPlan(context.Background(), "raised beds for vegetables")
	require.NoError(t, err)
	assert.Contains(t, layout.PlantPlacement["North Bed"], "tomato")
}

func TestOllamaService_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "llama3")
	_, err := svc.GenerateGardenPlan(context.Background(), "anything")
	assert.Error(t, err)
}
