// Package config loads newsai settings from the embedded defaults, the
// user's config file and NEWSAI_* environment variables, in that order.
package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/abelbrown/newsai/internal/catalog"
	"github.com/abelbrown/newsai/internal/scroll"
	"github.com/abelbrown/newsai/internal/session"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const envPrefix = "NEWSAI"

type Config struct {
	User      UserConfig         `mapstructure:"user" yaml:"user"`
	UI        UIConfig           `mapstructure:"ui" yaml:"ui"`
	Selection SelectionConfig    `mapstructure:"selection" yaml:"selection"`
	Sections  map[string]string  `mapstructure:"sections" yaml:"sections"`
	Scroll    ScrollConfig       `mapstructure:"scroll" yaml:"scroll"`
	Content   ContentConfig      `mapstructure:"content" yaml:"content"`
	Log       LogConfig          `mapstructure:"log" yaml:"log"`
	EventLog  EventLogConfig     `mapstructure:"eventlog" yaml:"eventlog"`
	Catalog   []catalog.Category `mapstructure:"catalog" yaml:"catalog"`
}

type UserConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
}

type UIConfig struct {
	Theme   string `mapstructure:"theme" yaml:"theme"` // "dark" or "light"
	Sidebar bool   `mapstructure:"sidebar" yaml:"sidebar"`
	Debug   bool   `mapstructure:"debug" yaml:"debug"`
}

type SelectionConfig struct {
	Seed []string `mapstructure:"seed" yaml:"seed"`
}

// ScrollConfig is in terminal cells.
type ScrollConfig struct {
	Step  int `mapstructure:"step" yaml:"step"`
	Slack int `mapstructure:"slack" yaml:"slack"`
}

type ContentConfig struct {
	Backend         string        `mapstructure:"backend" yaml:"backend"` // "memory" or "sqlite"
	Path            string        `mapstructure:"path" yaml:"path"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval" yaml:"refresh_interval"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	Dir   string `mapstructure:"dir" yaml:"dir"`
}

type EventLogConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "newsai", "config.yaml")
}

// Load reads configuration. An empty path means DefaultPath, which may be
// absent; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return Config{}, fmt.Errorf("reading embedded config: %w", err)
	}
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, fmt.Errorf("parsing embedded config: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the embedded defaults.
func Default() (Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing embedded config: %w", err)
	}
	return c, nil
}

// WriteDefaults copies the embedded defaults to path unless a file is
// already there.
func WriteDefaults(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first setting the dashboard could not start with.
func (c Config) Validate() error {
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q (valid: dark, light)", c.UI.Theme)
	}
	switch c.Content.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("content.backend: unknown backend %q (valid: memory, sqlite)", c.Content.Backend)
	}
	if c.Content.RefreshInterval < 0 {
		return fmt.Errorf("content.refresh_interval: must not be negative")
	}
	if c.Scroll.Step <= 0 {
		return fmt.Errorf("scroll.step: must be positive, got %d", c.Scroll.Step)
	}
	if c.Scroll.Slack < 0 {
		return fmt.Errorf("scroll.slack: must not be negative, got %d", c.Scroll.Slack)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	cat, err := c.BuildCatalog()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if _, err := session.New(cat, c.SessionOptions()); err != nil {
		return fmt.Errorf("selection/sections: %w", err)
	}
	return nil
}

// BuildCatalog returns the configured catalog, or the built-in one when
// none is configured.
func (c Config) BuildCatalog() (*catalog.Catalog, error) {
	if len(c.Catalog) == 0 {
		return catalog.Default(), nil
	}
	return catalog.New(c.Catalog)
}

func (c Config) SessionOptions() session.Options {
	return session.Options{
		Seed:     c.Selection.Seed,
		Sections: c.Sections,
		Scroll:   scroll.Computer{Slack: c.Scroll.Slack, Step: c.Scroll.Step},
	}
}

// ContentPath is content.path or the XDG cache default.
func (c Config) ContentPath() string {
	if c.Content.Path != "" {
		return c.Content.Path
	}
	return filepath.Join(xdg.CacheHome, "newsai", "content.db")
}

// EventLogPath is eventlog.path or the XDG state default.
func (c Config) EventLogPath() string {
	if c.EventLog.Path != "" {
		return c.EventLog.Path
	}
	return filepath.Join(xdg.StateHome, "newsai", "events.jsonl")
}

// Marshal renders the effective configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
