package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/bryancraven/rock-photo/internal/analyzer"
	"github.com/bryancraven/rock-photo/internal/imagefile"
	"github.com/bryancraven/rock-photo/internal/report"
	"github.com/bryancraven/rock-photo/internal/schema"
	"github.com/bryancraven/rock-photo/internal/store"
)

// newAnalysisCmd builds the subcommand for one analyzer variant. Both
// variants run the same pipeline; only the schema differs.
func newAnalysisCmd(v *schema.Variant, short string, withNoLocation bool) *cobra.Command {
	var (
		location   string
		compare    bool
		save       bool
		noLocation bool
	)

	cmd := &cobra.Command{
		Use:   v.Name + " <image>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if compare && location == "" {
				return fmt.Errorf("--compare requires --location")
			}
			if compare && noLocation {
				return fmt.Errorf("--compare and --no-location are mutually exclusive")
			}
			return runAnalysis(v, args[0], location, !noLocation, compare, save)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Location hint (coordinates, place name, geological region)")
	cmd.Flags().BoolVarP(&compare, "compare", "c", false, "Run with and without location context and compare (requires --location)")
	cmd.Flags().BoolVarP(&save, "save", "s", false, "Save result objects to JSON files")
	if withNoLocation {
		cmd.Flags().BoolVar(&noLocation, "no-location", false, "Analyze without location context even if --location is set")
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newAnalysisCmd(schema.Quick, "Rapid rock assessment with a compact vocabulary", false))
	rootCmd.AddCommand(newAnalysisCmd(schema.Geological, "Professional geological survey with standardized classifications", true))
}

func runAnalysis(v *schema.Variant, imagePath, location string, useLocation, compare, save bool) error {
	// Credential check comes first so a missing key aborts before any file
	// or network activity.
	client, err := analyzer.NewClient(cfg.Model.Name, cfg.Model.MaxOutputTokens, cfg.Model.RateLimit)
	if err != nil {
		return err
	}

	img, err := imagefile.Load(imagePath)
	if err != nil {
		return err
	}
	logVerbose("loaded %s: %s, %dx%d, %d bytes", img.Path, img.MIMEType, img.Width, img.Height, len(img.Data))

	s, err := store.New(dataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	a := analyzer.New(client, v, cfg.Model.ThinkingBudget)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if compare {
		return runCompare(ctx, a, s, img, location, save, os.Stdout, "")
	}
	return runSingle(ctx, a, s, img, location, useLocation, save)
}

func runSingle(ctx context.Context, a *analyzer.Analyzer, s *store.Store, img *imagefile.Image, location string, useLocation, save bool) error {
	req := analyzer.Request{Image: img, Location: location, UseLocation: useLocation}

	mode := "without"
	if useLocation && location != "" {
		mode = "with"
	}
	fmt.Printf("Analyzing %s %s location context...\n", img.Path, mode)

	start := time.Now()
	out, err := a.Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	fmt.Printf("Analysis completed in %.2f seconds (%d+%d tokens)\n",
		time.Since(start).Seconds(), out.Usage.InputTokens, out.Usage.OutputTokens)
	warnViolations(out.Violations)

	report.Analysis(os.Stdout, a.Variant(), out.Doc)

	recordRun(s, a, img, store.KindAnalysis, a.LocationMode(req), out)

	if save {
		path := fmt.Sprintf("%s_%s.json", a.Variant().FilePrefix, img.BaseName())
		if err := store.WriteResultFile(path, out.Doc); err != nil {
			return err
		}
		fmt.Printf("\nResults saved to: %s\n", path)
	}

	return nil
}

// runCompare drives the paired with/without-location analyses and the
// comparator. Output goes to out; saved files land in saveDir ("" means the
// working directory).
func runCompare(ctx context.Context, a *analyzer.Analyzer, s *store.Store, img *imagefile.Image, location string, save bool, out io.Writer, saveDir string) error {
	fmt.Fprintf(out, "Running comparison analysis of %s (location: %s)...\n", img.Path, location)

	withReq := analyzer.Request{Image: img, Location: location, UseLocation: true}
	withoutReq := analyzer.Request{Image: img, Location: location, UseLocation: false}

	// The two primary calls share nothing, so run them concurrently. Both
	// must settle before the comparator may run, and a failure on one branch
	// never cancels the other's in-flight call.
	var (
		wg                  sync.WaitGroup
		withOut, withoutOut *analyzer.Outcome
		withErr, withoutErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		withOut, withErr = a.Analyze(ctx, withReq)
	}()
	go func() {
		defer wg.Done()
		withoutOut, withoutErr = a.Analyze(ctx, withoutReq)
	}()
	wg.Wait()

	if withErr != nil {
		fmt.Fprintf(os.Stderr, "WARNING: with-location analysis failed: %v\n", withErr)
	}
	if withoutErr != nil {
		fmt.Fprintf(os.Stderr, "WARNING: without-location analysis failed: %v\n", withoutErr)
	}
	if withOut == nil && withoutOut == nil {
		return fmt.Errorf("both analyses failed")
	}

	if withOut != nil {
		warnViolations(withOut.Violations)
		fmt.Fprintln(out, "\n[WITH LOCATION CONTEXT]")
		report.Analysis(out, a.Variant(), withOut.Doc)
		recordRun(s, a, img, store.KindAnalysis, location, withOut)
	}
	if withoutOut != nil {
		warnViolations(withoutOut.Violations)
		fmt.Fprintln(out, "\n[WITHOUT LOCATION CONTEXT]")
		report.Analysis(out, a.Variant(), withoutOut.Doc)
		recordRun(s, a, img, store.KindAnalysis, analyzer.NoLocationContext, withoutOut)
	}

	// The comparator runs only when both primaries succeeded.
	var comparison *analyzer.Outcome
	if withOut != nil && withoutOut != nil {
		fmt.Fprintln(out, "\nGenerating comparison analysis...")
		var err error
		comparison, err = a.Compare(ctx, withOut.Doc, withoutOut.Doc, location)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: comparison failed: %v\n", err)
		}
	}

	fmt.Fprintln(out)
	if comparison != nil {
		report.Comparison(out, comparison.Doc)
		recordRun(s, a, img, store.KindComparison, location, comparison)
	} else {
		report.Unavailable(out)
	}

	if save {
		prefix := a.Variant().FilePrefix
		base := img.BaseName()
		saved := 0
		if withOut != nil {
			path := filepath.Join(saveDir, fmt.Sprintf("%s_with_location_%s.json", prefix, base))
			if err := store.WriteResultFile(path, withOut.Doc); err != nil {
				return err
			}
			saved++
		}
		if withoutOut != nil {
			path := filepath.Join(saveDir, fmt.Sprintf("%s_without_location_%s.json", prefix, base))
			if err := store.WriteResultFile(path, withoutOut.Doc); err != nil {
				return err
			}
			saved++
		}
		if comparison != nil {
			path := filepath.Join(saveDir, fmt.Sprintf("%s_comparison_%s.json", prefix, base))
			if err := store.WriteResultFile(path, comparison.Doc); err != nil {
				return err
			}
			saved++
		}
		fmt.Fprintf(out, "\nSaved %d result file(s)\n", saved)
	}

	return nil
}

func recordRun(s *store.Store, a *analyzer.Analyzer, img *imagefile.Image, kind, locationMode string, out *analyzer.Outcome) {
	id, err := s.WriteRun(&store.Run{
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		ImagePath:    img.Path,
		Variant:      a.Variant().Name,
		Kind:         kind,
		LocationMode: locationMode,
		Model:        cfg.Model.Name,
		Result:       out.Doc,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: recording run history: %v\n", err)
		return
	}
	logVerbose("recorded run %d", id)
}

func warnViolations(violations []string) {
	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "WARNING: schema nonconformance: %s\n", v)
	}
}
