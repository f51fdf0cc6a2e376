package analyzer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryancraven/rock-photo/internal/schema"
)

func TestPromptContainsFullVocabulary(t *testing.T) {
	for _, v := range []*schema.Variant{schema.Quick, schema.Geological} {
		t.Run(v.Name, func(t *testing.T) {
			prompt := buildAnalysisPrompt(v, "", false)
			for _, f := range v.CategoricalFields() {
				for _, tok := range f.Enum {
					assert.Contains(t, prompt, `"`+tok+`"`, "field %s token %s", f.Name, tok)
				}
				assert.Contains(t, prompt, f.Name)
			}
		})
	}
}

func TestPromptLocationPolicy(t *testing.T) {
	const loc = "Isle of Skye, Scotland"

	with := buildAnalysisPrompt(schema.Quick, loc, true)
	assert.Equal(t, 1, strings.Count(with, loc), "location must appear exactly once")
	assert.Contains(t, with, "Visual evidence is primary")

	without := buildAnalysisPrompt(schema.Quick, loc, false)
	assert.NotContains(t, without, loc, "unused location must not leak into the prompt")
	assert.Contains(t, without, "unreliable without location")

	noLoc := buildAnalysisPrompt(schema.Quick, "", true)
	assert.Contains(t, noLoc, "VISUAL ANALYSIS ONLY", "use_location without a location falls back to visual-only")
}

func TestPromptDeterministic(t *testing.T) {
	a := buildAnalysisPrompt(schema.Geological, "Death Valley", true)
	b := buildAnalysisPrompt(schema.Geological, "Death Valley", true)
	assert.Equal(t, a, b)
}

func TestComparisonPromptEmbedsBothAnalyses(t *testing.T) {
	withLoc, err := json.MarshalIndent(map[string]any{
		"summary": map[string]any{"total_rocks": 2, "location_context": "Death Valley"},
	}, "", "  ")
	require.NoError(t, err)
	withoutLoc, err := json.MarshalIndent(map[string]any{
		"summary": map[string]any{"total_rocks": 3, "location_context": "No location context"},
	}, "", "  ")
	require.NoError(t, err)

	prompt := buildComparisonPrompt(withLoc, withoutLoc, "Death Valley")

	assert.Contains(t, prompt, string(withLoc))
	assert.Contains(t, prompt, string(withoutLoc))
	for _, f := range schema.Comparison {
		assert.Contains(t, prompt, f.Name)
	}
}
