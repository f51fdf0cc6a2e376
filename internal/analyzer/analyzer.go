// Package analyzer builds prompts for the hosted multimodal model, issues
// generate calls, and parses the structured JSON results.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bryancraven/rock-photo/internal/imagefile"
	"github.com/bryancraven/rock-photo/internal/result"
	"github.com/bryancraven/rock-photo/internal/schema"
)

// NoLocationContext is recorded in the summary when a call ran without
// location conditioning.
const NoLocationContext = "No location context"

// Request describes one analysis invocation.
type Request struct {
	Image       *imagefile.Image
	Location    string // free-text location hint, may be empty
	UseLocation bool   // condition on Location even if present?
}

// Outcome is the product of one successful model call.
type Outcome struct {
	Doc        result.Document
	Usage      Usage
	Violations []string // non-fatal vocabulary/range violations, for logging
}

// Analyzer runs one variant's pipeline against the external model.
type Analyzer struct {
	gen            Generator
	variant        *schema.Variant
	thinkingBudget int
}

// New creates an Analyzer for the given variant.
func New(gen Generator, variant *schema.Variant, thinkingBudget int) *Analyzer {
	return &Analyzer{gen: gen, variant: variant, thinkingBudget: thinkingBudget}
}

// Variant returns the schema variant this analyzer runs.
func (a *Analyzer) Variant() *schema.Variant { return a.variant }

// LocationMode names the location policy actually applied to a request,
// purely for telling parallel analyses apart later.
func (a *Analyzer) LocationMode(req Request) string {
	if req.UseLocation && req.Location != "" {
		return req.Location
	}
	return NoLocationContext
}

// Analyze performs exactly one model call and parses the response. Any
// transport failure or unparseable response is a single terminal error for
// this call: no retry, no partial salvage. On success the variant's
// location-mode summary field is set to reflect whether location was
// actually used for this call.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Outcome, error) {
	prompt := buildAnalysisPrompt(a.variant, req.Location, req.UseLocation)

	raw, usage, err := a.gen.Generate(ctx, req.Image, prompt, a.variant.ResponseSchema(), a.thinkingBudget)
	if err != nil {
		return nil, fmt.Errorf("analysis call: %w", err)
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	if summary, ok := doc["summary"].(map[string]any); ok {
		summary[a.variant.LocationField] = a.LocationMode(req)
	}

	return &Outcome{
		Doc:        doc,
		Usage:      usage,
		Violations: schema.Validate(a.variant, doc),
	}, nil
}

// Compare asks the model for a structured diff of two completed analyses of
// the same image, one produced with location conditioning and one without.
// Callers must only invoke it when both analyses exist.
func (a *Analyzer) Compare(ctx context.Context, withLoc, withoutLoc result.Document, location string) (*Outcome, error) {
	withJSON, err := json.MarshalIndent(withLoc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing with-location analysis: %w", err)
	}
	withoutJSON, err := json.MarshalIndent(withoutLoc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing without-location analysis: %w", err)
	}

	prompt := buildComparisonPrompt(withJSON, withoutJSON, location)

	raw, usage, err := a.gen.Generate(ctx, nil, prompt, schema.ComparisonSchema(), a.thinkingBudget)
	if err != nil {
		return nil, fmt.Errorf("comparison call: %w", err)
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	return &Outcome{Doc: doc, Usage: usage}, nil
}
