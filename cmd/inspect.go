package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halewijn/edo31/catalog"
	"github.com/halewijn/edo31/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <family.json>",
	Short: "Prints a summary of a generated family file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		// Family files are either a flat entry array or grouped by
		// sub-family; try flat first.
		if entries, err := catalog.LoadFamilyFlat(path); err == nil {
			printEntries("", entries)
			fmt.Printf("%d scales\n", len(entries))
			return nil
		}

		groups, err := catalog.LoadFamilyGrouped(path)
		if err != nil {
			return err
		}
		total := 0
		for _, group := range util.SortedKeys(groups) {
			printEntries(group, groups[group])
			total += len(groups[group])
		}
		fmt.Printf("%d scales in %d groups\n", total, len(groups))
		return nil
	},
}

func printEntries(group string, entries []catalog.Entry) {
	for _, e := range entries {
		prefix := ""
		if group != "" {
			prefix = group + " / "
		}
		fmt.Printf("%s%-40s %-24s consonance=%.2f triads=%d\n",
			prefix, e.Name, e.IntervalKey(), e.Properties["consonance"], len(e.Chords.Triads))
	}
}
