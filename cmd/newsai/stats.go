package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/abelbrown/newsai/internal/config"
	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/filter"
	"github.com/abelbrown/newsai/internal/session"
	"github.com/abelbrown/newsai/internal/store"
)

var (
	flagStatsDB  bool
	flagPerCat   int
	flagMaxAgeHr int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Content and event journal statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsDB, "db", false, "include content cache health (sqlite backend)")
	statsCmd.Flags().IntVar(&flagPerCat, "per-category", 3, "limit applied in the pipeline preview")
	statsCmd.Flags().IntVar(&flagMaxAgeHr, "max-age", 6, "age cutoff in hours for the pipeline preview")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	src, closeSrc, err := openSource(cfg, nil)
	if err != nil {
		return err
	}
	defer closeSrc()

	cat, err := cfg.BuildCatalog()
	if err != nil {
		return err
	}
	svc := content.NewService(src, 0, nil)
	snap, err := svc.Load(context.Background(), cat.IDs(), session.GlobalTabs)
	if err != nil {
		return err
	}
	writeContentStats(out, snap, cat.IDs())

	if flagStatsDB {
		if err := writeStoreStats(out, cfg); err != nil {
			return err
		}
	}

	return writeJournalStats(out, cfg.EventLogPath())
}

func writeContentStats(out io.Writer, snap content.Snapshot, categories []string) {
	fmt.Fprintf(out, "Backend snapshot at %s\n\n", snap.LoadedAt.Format(time.RFC3339))

	var all []content.Article
	for _, id := range categories {
		arts := snap.Articles[id]
		if len(arts) == 0 {
			continue
		}
		fmt.Fprintf(out, "  %-15s feed %d  cards %d\n", id,
			len(filter.ByKind(arts, content.KindFeed)), len(filter.ByKind(arts, content.KindCard)))
		all = append(all, arts...)
	}
	for _, tab := range session.GlobalTabs {
		hs := snap.Headlines[tab]
		fmt.Fprintf(out, "  %-15s headlines %d  trending %d\n", "global/"+tab, len(hs), len(filter.Trending(hs)))
	}

	// Preview the list pipeline on everything loaded.
	fmt.Fprintf(out, "\nArticles:                  %d\n", len(all))
	items := filter.ByAge(all, time.Duration(flagMaxAgeHr)*time.Hour)
	fmt.Fprintf(out, "After ByAge(%dh):           %d\n", flagMaxAgeHr, len(items))
	items = filter.Dedup(items)
	fmt.Fprintf(out, "After Dedup:               %d\n", len(items))
	items = filter.LimitPerCategory(items, flagPerCat)
	fmt.Fprintf(out, "After LimitPerCategory(%d): %d\n", flagPerCat, len(items))

	sources := map[string]int{}
	for _, a := range items {
		sources[a.Source]++
	}
	fmt.Fprintf(out, "\nSources (%d):\n", len(sources))
	for _, name := range slices.Sorted(maps.Keys(sources)) {
		fmt.Fprintf(out, "  %-25s %d\n", name, sources[name])
	}
}

func writeStoreStats(out io.Writer, cfg config.Config) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Content Cache ===")
	if cfg.Content.Backend != config.BackendSQLite {
		fmt.Fprintln(out, "backend is memory; nothing cached")
		return nil
	}

	st, err := store.Open(cfg.ContentPath())
	if err != nil {
		return err
	}
	defer st.Close()

	version, err := st.SchemaVersion()
	if err != nil {
		return err
	}
	articles, headlines, err := st.Counts()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Path:            %s\n", cfg.ContentPath())
	fmt.Fprintf(out, "Schema version:  %d\n", version)
	fmt.Fprintf(out, "Articles:        %d\n", articles)
	fmt.Fprintf(out, "Headlines:       %d\n", headlines)
	return nil
}

func writeJournalStats(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	lines, err := readTailLines(f, 1<<20, func(eventRecord) bool { return true })
	if err != nil {
		return err
	}

	kinds := map[string]int{}
	sessions := map[string]bool{}
	commands := map[string]int{}
	for _, l := range lines {
		kinds[l.ev.Kind]++
		sessions[l.ev.SessionID] = true
		if l.ev.Command != "" {
			commands[l.ev.Command]++
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Event Journal ===")
	fmt.Fprintf(out, "Events:    %d across %d sessions\n", len(lines), len(sessions))
	for _, k := range slices.Sorted(maps.Keys(kinds)) {
		fmt.Fprintf(out, "  %-24s %d\n", k, kinds[k])
	}
	if len(commands) > 0 {
		fmt.Fprintln(out, "Commands:")
		for _, c := range slices.Sorted(maps.Keys(commands)) {
			fmt.Fprintf(out, "  %-24s %d\n", c, commands[c])
		}
	}
	return nil
}
