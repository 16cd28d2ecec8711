package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/abelbrown/newsai/internal/config"
	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/eventlog"
	"github.com/abelbrown/newsai/internal/logging"
	"github.com/abelbrown/newsai/internal/session"
	"github.com/abelbrown/newsai/internal/store"
	"github.com/abelbrown/newsai/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagBackend string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:           "newsai",
	Short:         "Personalized terminal news dashboard",
	Long:          "newsai shows a personalized news dashboard: pick up to four categories, browse the feed and global headlines, and save stories for later.",
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "content backend: memory or sqlite (overrides config)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "open with the debug overlay")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(eventsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "newsai %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// loadConfig applies command-line overrides on top of the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if flagBackend != "" {
		cfg.Content.Backend = flagBackend
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	if flagDebug {
		cfg.UI.Debug = true
	}
	return cfg, nil
}

// openEvents opens the event journal, or a discarding one when disabled.
func openEvents(cfg config.Config) (*eventlog.Log, error) {
	if !cfg.EventLog.Enabled {
		return eventlog.Discard(), nil
	}
	return eventlog.Open(cfg.EventLogPath())
}

// openSource returns the configured content source and its closer. An empty
// sqlite cache is seeded with the bundled content.
func openSource(cfg config.Config, events *eventlog.Log) (content.Source, func() error, error) {
	if cfg.Content.Backend != config.BackendSQLite {
		return content.NewStatic(content.Mock()), func() error { return nil }, nil
	}

	path := cfg.ContentPath()
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create cache directory: %w", err)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		events.Error(eventlog.KindStoreError, "store", err)
		return nil, nil, fmt.Errorf("opening content cache: %w", err)
	}

	empty, err := st.Empty()
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	if empty {
		n, err := st.Seed(content.Mock())
		if err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("seeding content cache: %w", err)
		}
		logging.Info("seeded content cache", "path", path, "records", n)
		events.Emit(eventlog.Event{Level: eventlog.LevelInfo, Kind: eventlog.KindSeed, Comp: "store", Count: n})
	}
	return st, st.Close, nil
}

// newController builds the session over the configured catalog.
func newController(cfg config.Config, events *eventlog.Log) (*session.Controller, error) {
	cat, err := cfg.BuildCatalog()
	if err != nil {
		return nil, err
	}
	st, err := session.New(cat, cfg.SessionOptions())
	if err != nil {
		return nil, err
	}
	return session.NewController(st, events), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return err
	}
	defer logging.Close()

	events, err := openEvents(cfg)
	if err != nil {
		return fmt.Errorf("opening event journal: %w", err)
	}
	defer events.Close()
	ring := eventlog.NewRing(eventlog.DefaultRingSize)
	events.Attach(ring)

	events.Info(eventlog.KindStartup, "main", version)
	logging.Info("newsai starting", "version", version, "backend", cfg.Content.Backend, "session", events.SessionID())

	src, closeSrc, err := openSource(cfg, events)
	if err != nil {
		return err
	}
	defer closeSrc()

	ctrl, err := newController(cfg, events)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := content.NewService(src, cfg.Content.RefreshInterval, events)
	load, refresh := ui.ServiceLoaders(ctx, svc)

	app := ui.NewApp(ui.AppConfig{
		Controller:   ctrl,
		Load:         load,
		Refresh:      refresh,
		Ring:         ring,
		UserName:     cfg.User.Name,
		Theme:        cfg.UI.Theme,
		ShowSidebar:  cfg.UI.Sidebar,
		Debug:        cfg.UI.Debug,
		RefreshEvery: cfg.Content.RefreshInterval,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()

	events.Info(eventlog.KindShutdown, "main", "")
	logging.Info("newsai stopped", "bookmarks", len(ctrl.State().Bookmarked()))
	if err != nil {
		events.Error(eventlog.KindError, "main", err)
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
