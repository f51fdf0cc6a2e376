package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bryancraven/rock-photo/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.ListRuns(historyLimit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Printf("Recent runs (%d of %d)\n", len(runs), s.RunCount())
		fmt.Println("----------------------")
		for _, r := range runs {
			fmt.Printf("  #%-4d %s  %-7s %-10s %-20s %s\n",
				r.ID, r.CreatedAt, r.Variant, r.Kind, truncate(r.LocationMode, 20), r.ImagePath)
		}

		byVariant := s.CountByVariant()
		var variants []string
		for v := range byVariant {
			variants = append(variants, v)
		}
		sort.Strings(variants)

		fmt.Println("\nRuns per variant")
		fmt.Println("----------------")
		for _, v := range variants {
			fmt.Printf("  %-8s %d\n", v, byVariant[v])
		}

		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
