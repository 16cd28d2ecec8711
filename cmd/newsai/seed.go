package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/store"
)

var flagSeedPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the bundled content into the sqlite cache",
	Long:  "seed inserts or replaces the bundled articles and headlines in the content cache, so the sqlite backend has something to serve.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := flagSeedPath
		if path == "" {
			path = cfg.ContentPath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create cache directory: %w", err)
		}

		st, err := store.Open(path)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.Seed(content.Mock())
		if err != nil {
			return fmt.Errorf("seeding %s: %w", path, err)
		}
		articles, headlines, err := st.Counts()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s (%d articles, %d headlines)\n", n, path, articles, headlines)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&flagSeedPath, "path", "", "database path (default content.path or the XDG cache)")
}
