package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abelbrown/newsai/internal/selection"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the selectable categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := cfg.BuildCatalog()
		if err != nil {
			return err
		}
		seeded := make(map[string]bool, len(cfg.Selection.Seed))
		for _, id := range cfg.Selection.Seed {
			seeded[id] = true
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tACCENT\tSELECTED")
		for _, c := range cat.All() {
			mark := ""
			if seeded[c.ID] {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Accent, mark)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d categories, up to %d may be selected\n", cat.Len(), selection.MaxSelected)
		return nil
	},
}
