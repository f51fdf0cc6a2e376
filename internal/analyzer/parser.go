package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bryancraven/rock-photo/internal/result"
)

// ParseDocument attempts to parse the model response text as a JSON object.
// Tries multiple strategies: direct parse, brace extraction, code block
// extraction. The document is parsed, not validated; shape conformance is
// checked separately and tolerated.
func ParseDocument(text string) (result.Document, error) {
	text = strings.TrimSpace(text)

	// Strategy 1: direct parse
	var doc result.Document
	if err := json.Unmarshal([]byte(text), &doc); err == nil {
		return doc, nil
	}

	// Strategy 2: extract from first { to last }
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			jsonStr := text[start : end+1]
			if err := json.Unmarshal([]byte(jsonStr), &doc); err == nil {
				return doc, nil
			}
		}
	}

	// Strategy 3: extract from code blocks
	if idx := strings.Index(text, "```json"); idx >= 0 {
		after := text[idx+7:]
		if end := strings.Index(after, "```"); end >= 0 {
			jsonStr := strings.TrimSpace(after[:end])
			if err := json.Unmarshal([]byte(jsonStr), &doc); err == nil {
				return doc, nil
			}
		}
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		after := text[idx+3:]
		if end := strings.Index(after, "```"); end >= 0 {
			jsonStr := strings.TrimSpace(after[:end])
			if err := json.Unmarshal([]byte(jsonStr), &doc); err == nil {
				return doc, nil
			}
		}
	}

	return nil, fmt.Errorf("failed to parse model response as JSON: %.200s...", text)
}
