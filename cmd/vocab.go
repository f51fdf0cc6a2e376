package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bryancraven/rock-photo/internal/schema"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab <variant>",
	Short: "Print the categorical vocabularies of an analyzer variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := schema.ByName(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Categorical fields for %s\n", v.Name)
		fmt.Println(strings.Repeat("-", 24+len(v.Name)))
		for _, f := range v.CategoricalFields() {
			fmt.Printf("\n%s (%d tokens)\n", f.Name, len(f.Enum))
			for _, tok := range f.Enum {
				fmt.Printf("  %s\n", tok)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}
