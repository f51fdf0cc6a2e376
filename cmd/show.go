package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bryancraven/rock-photo/internal/report"
	"github.com/bryancraven/rock-photo/internal/schema"
	"github.com/bryancraven/rock-photo/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Re-render the report for a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		run, err := s.ReadRun(id)
		if err != nil {
			return fmt.Errorf("reading run %d: %w", id, err)
		}

		fmt.Printf("Run #%d  %s  %s  %s\n\n", run.ID, run.CreatedAt, run.ImagePath, run.LocationMode)

		if run.Kind == store.KindComparison {
			report.Comparison(os.Stdout, run.Result)
			return nil
		}

		v, err := schema.ByName(run.Variant)
		if err != nil {
			return err
		}
		report.Analysis(os.Stdout, v, run.Result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
