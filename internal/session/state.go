// Package session holds the dashboard's client-side state: the category
// selection, article interactions, per-section filter tabs and the geometry
// of scrollable strips. State is a value; Reduce derives the next one.
package session

import (
	"errors"
	"fmt"
	"maps"

	"github.com/abelbrown/newsai/internal/catalog"
	"github.com/abelbrown/newsai/internal/inspect"
	"github.com/abelbrown/newsai/internal/scroll"
	"github.com/abelbrown/newsai/internal/section"
	"github.com/abelbrown/newsai/internal/selection"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownStrip   = errors.New("unknown scroll strip")
	ErrUnknownCommand = errors.New("unknown command")
)

// Section ids.
const (
	SectionCarousel = "carousel"
	SectionFeed     = "feed"
	SectionGlobal   = "global"
	SectionSidebar  = "sidebar"
)

// StripCarousel is the horizontally scrollable category strip.
const StripCarousel = "carousel"

var (
	FeedTabs    = []string{"technology", "business", "science", "health"}
	GlobalTabs  = []string{"trending", "editors"}
	SidebarMenu = []string{"dashboard", "trending", "favorites", "bookmarks", "categories"}
)

// Options seeds a new State. Zero values fall back to the dashboard defaults.
type Options struct {
	Seed     []string
	Sections map[string]string
	Scroll   scroll.Computer
}

// State is immutable from the outside; every change goes through Reduce.
type State struct {
	selection    selection.Selection
	interactions inspect.Interactions
	sections     map[string]section.Filter[string]
	strips       map[string]scroll.Geometry
	scroll       scroll.Computer
}

// New builds the initial state over cat.
func New(cat *catalog.Catalog, opts Options) (State, error) {
	if cat == nil || cat.Len() == 0 {
		return State{}, catalog.ErrEmptyCatalog
	}
	sel, err := selection.New(cat, opts.Seed...)
	if err != nil {
		return State{}, fmt.Errorf("seed selection: %w", err)
	}

	keySets := map[string][]string{
		SectionCarousel: cat.IDs(),
		SectionFeed:     FeedTabs,
		SectionGlobal:   GlobalTabs,
		SectionSidebar:  SidebarMenu,
	}
	for name := range opts.Sections {
		if _, ok := keySets[name]; !ok {
			return State{}, fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
	}

	sections := make(map[string]section.Filter[string], len(keySets))
	for name, keys := range keySets {
		initial := keys[0]
		if k, ok := opts.Sections[name]; ok && k != "" {
			initial = k
		}
		f, err := section.New(name, keys, initial)
		if err != nil {
			return State{}, err
		}
		sections[name] = f
	}

	comp := opts.Scroll
	if comp == (scroll.Computer{}) {
		comp = scroll.Default
	}

	return State{
		selection: sel,
		sections:  sections,
		strips:    map[string]scroll.Geometry{StripCarousel: {}},
		scroll:    comp,
	}, nil
}

func (s State) Catalog() *catalog.Catalog { return s.selection.Catalog() }

func (s State) Selection() selection.Selection { return s.selection }

// SelectedCategories returns the selected ids in display order.
func (s State) SelectedCategories() []string { return s.selection.List() }

func (s State) IsBookmarked(id inspect.ArticleID) bool { return s.interactions.IsBookmarked(id) }

func (s State) Bookmarked() []inspect.ArticleID { return s.interactions.Bookmarked() }

func (s State) Inspection() (inspect.Inspection, bool) { return s.interactions.Inspection() }

// ActiveFilter returns the active key of the named section.
func (s State) ActiveFilter(name string) (string, error) {
	f, ok := s.sections[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	return f.Active(), nil
}

// Section returns the named filter for rendering its tab bar.
func (s State) Section(name string) (section.Filter[string], bool) {
	f, ok := s.sections[name]
	return f, ok
}

// ScrollAffordance is recomputed from the strip's last measured geometry.
func (s State) ScrollAffordance(strip string) (scroll.Affordance, error) {
	g, ok := s.strips[strip]
	if !ok {
		return scroll.Affordance{}, fmt.Errorf("%w: %q", ErrUnknownStrip, strip)
	}
	return s.scroll.Compute(g), nil
}

func (s State) StripOffset(strip string) int { return s.strips[strip].Offset }

func (s State) withSection(f section.Filter[string]) State {
	next := maps.Clone(s.sections)
	next[f.Name()] = f
	s.sections = next
	return s
}

func (s State) withStrip(name string, g scroll.Geometry) State {
	next := maps.Clone(s.strips)
	next[name] = g
	s.strips = next
	return s
}
