package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bryancraven/rock-photo/internal/analyzer"
	"github.com/bryancraven/rock-photo/internal/config"
	"github.com/bryancraven/rock-photo/internal/imagefile"
	"github.com/bryancraven/rock-photo/internal/schema"
	"github.com/bryancraven/rock-photo/internal/store"
)

// compareGen scripts the three compare-mode calls. The two primaries carry
// the image; the comparator call does not, and the without-location primary
// is recognizable by its prompt.
type compareGen struct {
	mu             sync.Mutex
	failWithout    bool
	failBoth       bool
	failComparator bool
	calls          int
}

func (g *compareGen) Generate(ctx context.Context, img *imagefile.Image, prompt string, responseSchema map[string]any, thinkingBudget int) (string, analyzer.Usage, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if img == nil {
		if g.failComparator {
			return "", analyzer.Usage{}, errors.New("comparator overloaded")
		}
		return `{"key_differences": ["refined rock class"], "confidence_change": 0.1}`, analyzer.Usage{}, nil
	}
	withoutLocation := strings.Contains(prompt, "NO LOCATION CONTEXT")
	if g.failBoth || (g.failWithout && withoutLocation) {
		return "", analyzer.Usage{}, errors.New("model unavailable")
	}
	return `{"summary": {"total_rocks": 1}, "rocks": [{"primary_type": "sedimentary"}]}`, analyzer.Usage{}, nil
}

func compareFixture(t *testing.T, gen *compareGen) (*analyzer.Analyzer, *store.Store, *imagefile.Image) {
	t.Helper()
	cfg = &config.Config{}
	s, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a := analyzer.New(gen, schema.Quick, 0)
	img := &imagefile.Image{Path: "photos/canyon.jpg", Data: []byte("fake"), MIMEType: "image/jpeg"}
	return a, s, img
}

func savedFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading save dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCompareComparatorFailureSavesTwoFiles(t *testing.T) {
	gen := &compareGen{failComparator: true}
	a, s, img := compareFixture(t, gen)
	saveDir := t.TempDir()
	var out bytes.Buffer

	err := runCompare(context.Background(), a, s, img, "Death Valley", true, &out, saveDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 3 {
		t.Errorf("expected 2 primary calls and 1 comparator call, got %d", gen.calls)
	}
	if !strings.Contains(out.String(), "Comparison unavailable.") {
		t.Error("expected the report to mark the comparison unavailable")
	}

	names := savedFiles(t, saveDir)
	if len(names) != 2 {
		t.Fatalf("expected exactly 2 saved files, got %v", names)
	}
	for _, want := range []string{
		"rock_analysis_with_location_canyon.json",
		"rock_analysis_without_location_canyon.json",
	} {
		if _, err := os.Stat(filepath.Join(saveDir, want)); err != nil {
			t.Errorf("expected %s to be saved: %v", want, err)
		}
	}
	if !strings.Contains(out.String(), "Saved 2 result file(s)") {
		t.Errorf("expected save count of 2 in output:\n%s", out.String())
	}
}

func TestComparePartialFailureReportsSurvivor(t *testing.T) {
	gen := &compareGen{failWithout: true}
	a, s, img := compareFixture(t, gen)
	saveDir := t.TempDir()
	var out bytes.Buffer

	err := runCompare(context.Background(), a, s, img, "Death Valley", true, &out, saveDir)
	if err != nil {
		t.Fatalf("expected partial success, got error: %v", err)
	}
	// The comparator must not run when a primary failed.
	if gen.calls != 2 {
		t.Errorf("expected only the 2 primary calls, got %d", gen.calls)
	}
	if !strings.Contains(out.String(), "[WITH LOCATION CONTEXT]") {
		t.Error("expected the surviving analysis to be reported")
	}
	if strings.Contains(out.String(), "[WITHOUT LOCATION CONTEXT]") {
		t.Error("did not expect a report for the failed analysis")
	}
	if !strings.Contains(out.String(), "Comparison unavailable.") {
		t.Error("expected the report to mark the comparison unavailable")
	}

	names := savedFiles(t, saveDir)
	if len(names) != 1 || names[0] != "rock_analysis_with_location_canyon.json" {
		t.Errorf("expected only the surviving result file, got %v", names)
	}
}

func TestCompareBothFailuresIsError(t *testing.T) {
	gen := &compareGen{failBoth: true}
	a, s, img := compareFixture(t, gen)
	saveDir := t.TempDir()
	var out bytes.Buffer

	err := runCompare(context.Background(), a, s, img, "Death Valley", true, &out, saveDir)
	if err == nil {
		t.Fatal("expected an error when both analyses fail")
	}
	if !strings.Contains(err.Error(), "both analyses failed") {
		t.Errorf("unexpected error: %v", err)
	}
	if names := savedFiles(t, saveDir); len(names) != 0 {
		t.Errorf("expected no saved files, got %v", names)
	}
}

func TestCompareSuccessSavesThreeFiles(t *testing.T) {
	gen := &compareGen{}
	a, s, img := compareFixture(t, gen)
	saveDir := t.TempDir()
	var out bytes.Buffer

	err := runCompare(context.Background(), a, s, img, "Death Valley", true, &out, saveDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := savedFiles(t, saveDir); len(names) != 3 {
		t.Errorf("expected 3 saved files, got %v", names)
	}
	if !strings.Contains(out.String(), "Confidence Change: +0.10") {
		t.Errorf("expected the comparison to be rendered:\n%s", out.String())
	}
	if s.RunCount() != 3 {
		t.Errorf("expected 3 recorded runs, got %d", s.RunCount())
	}
}
