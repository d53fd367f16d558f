package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halewijn/edo31/generate"
)

var (
	generateOut      string
	generateMinStep  int
	generateMaxStep  int
	generateFamilies []string
	generateNoBreak  bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "./out", "output directory for the generated catalog")
	generateCmd.Flags().IntVar(&generateMinStep, "min-step", 2, "smallest step size most generators accept")
	generateCmd.Flags().IntVar(&generateMaxStep, "max-step", 7, "largest step size most generators accept")
	generateCmd.Flags().StringSliceVar(&generateFamilies, "families", nil,
		"generator families to run, in order (default: all)")
	generateCmd.Flags().BoolVar(&generateNoBreak, "no-break-on-duplicate", false,
		"keep exploring a flattening direction past duplicates instead of pruning")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Runs the full generation batch and writes the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := generate.DefaultParams()
		params.MinStep = generateMinStep
		params.MaxStep = generateMaxStep
		params.BreakOnDuplicate = !generateNoBreak
		if len(generateFamilies) > 0 {
			for _, f := range generateFamilies {
				if !validFamily(f) {
					return fmt.Errorf("unknown family %q (valid: %s)",
						f, strings.Join(generate.AllFamilies, ", "))
				}
			}
			params.Families = generateFamilies
		}

		cat, err := generate.NewEngine(params).Run()
		if err != nil {
			return err
		}
		return cat.Write(generateOut)
	},
}

func validFamily(name string) bool {
	for _, f := range generate.AllFamilies {
		if f == name {
			return true
		}
	}
	return false
}
