package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bryancraven/rock-photo/internal/result"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(os.TempDir(), "rock-photo-store-test-"+t.Name())
	os.RemoveAll(dir)
	t.Cleanup(func() { os.RemoveAll(dir) })

	s, err := New(dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDoc() result.Document {
	return result.Document{
		"summary": map[string]any{
			"total_rocks":      float64(1),
			"location_context": "Death Valley",
		},
		"rocks": []any{
			map[string]any{"primary_type": "sedimentary", "confidence_value": 0.6},
		},
	}
}

func TestRunRoundTrip(t *testing.T) {
	s := testStore(t)

	id, err := s.WriteRun(&Run{
		CreatedAt:    "2025-01-01T00:00:00Z",
		ImagePath:    "photos/canyon.jpg",
		Variant:      "quick",
		Kind:         KindAnalysis,
		LocationMode: "Death Valley",
		Model:        "gemini-2.5-pro",
		Result:       sampleDoc(),
	})
	if err != nil {
		t.Fatalf("writing run: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero run id")
	}

	got, err := s.ReadRun(id)
	if err != nil {
		t.Fatalf("reading run: %v", err)
	}
	if got.Variant != "quick" || got.Kind != KindAnalysis {
		t.Errorf("run metadata mismatch: %+v", got)
	}
	if got.LocationMode != "Death Valley" {
		t.Errorf("expected location mode preserved, got %q", got.LocationMode)
	}
	if !reflect.DeepEqual(got.Result, sampleDoc()) {
		t.Errorf("result document mismatch:\n got %#v\nwant %#v", got.Result, sampleDoc())
	}
}

func TestReadRunMissing(t *testing.T) {
	s := testStore(t)
	if _, err := s.ReadRun(999); err == nil {
		t.Fatal("expected error for unknown run id")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := testStore(t)

	for _, variant := range []string{"quick", "quick", "survey"} {
		_, err := s.WriteRun(&Run{
			CreatedAt:    "2025-01-01T00:00:00Z",
			ImagePath:    "photos/canyon.jpg",
			Variant:      variant,
			Kind:         KindAnalysis,
			LocationMode: "No location context",
			Model:        "gemini-2.5-pro",
			Result:       sampleDoc(),
		})
		if err != nil {
			t.Fatalf("writing run: %v", err)
		}
	}

	runs, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("listing runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID <= runs[1].ID {
		t.Errorf("expected newest first, got ids %d, %d", runs[0].ID, runs[1].ID)
	}

	if s.RunCount() != 3 {
		t.Errorf("expected 3 runs total, got %d", s.RunCount())
	}

	byVariant := s.CountByVariant()
	if byVariant["quick"] != 2 || byVariant["survey"] != 1 {
		t.Errorf("unexpected per-variant counts: %v", byVariant)
	}
}

func TestWriteResultFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rock_analysis_canyon.json")

	doc := sampleDoc()
	if err := WriteResultFile(path, doc); err != nil {
		t.Fatalf("writing result file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}

	// Pretty-printed with 2-space indentation.
	if want := "{\n  \"rocks\""; string(data[:len(want)]) != want {
		t.Errorf("expected 2-space indented JSON, got %.40q", data)
	}

	var reparsed result.Document
	if err := json.Unmarshal(data, &reparsed); err != nil {
		t.Fatalf("reparsing: %v", err)
	}
	if !reflect.DeepEqual(reparsed, doc) {
		t.Errorf("round-trip mismatch:\n got %#v\nwant %#v", reparsed, doc)
	}
}
