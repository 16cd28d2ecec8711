// Package catalog is the fixed registry of selectable news categories.
//
// A Catalog is built once at startup (from defaults or configuration) and is
// read-only afterwards. Every other package treats category ids as valid only
// if the catalog contains them.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrEmptyCatalog      = errors.New("catalog: no categories")
	ErrInvalidCategory   = errors.New("catalog: category id is empty")
	ErrDuplicateCategory = errors.New("catalog: duplicate category id")
)

// Category is one selectable content category.
// Accent is a display token ("blue", "green"); the UI maps it to a colour.
type Category struct {
	ID     string `mapstructure:"id" yaml:"id"`
	Name   string `mapstructure:"name" yaml:"name"`
	Accent string `mapstructure:"accent" yaml:"accent"`
}

// Catalog is an immutable, ordered set of categories keyed by id.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New builds a catalog from categories, preserving their order.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		id := strings.TrimSpace(cat.ID)
		if id == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrInvalidCategory, i)
		}
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, id)
		}
		cat.ID = id
		if cat.Name == "" {
			cat.Name = id
		}
		c.index[id] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// MustNew is New for package-level defaults; it panics on invalid input.
func MustNew(categories []Category) *Catalog {
	c, err := New(categories)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the stock twelve-category catalog.
func Default() *Catalog {
	return MustNew(DefaultCategories())
}

// DefaultCategories returns a fresh copy of the stock category list.
func DefaultCategories() []Category {
	return []Category{
		{ID: "technology", Name: "Technology", Accent: "blue"},
		{ID: "business", Name: "Business", Accent: "green"},
		{ID: "science", Name: "Science", Accent: "purple"},
		{ID: "health", Name: "Health", Accent: "red"},
		{ID: "entertainment", Name: "Entertainment", Accent: "pink"},
		{ID: "sports", Name: "Sports", Accent: "orange"},
		{ID: "politics", Name: "Politics", Accent: "indigo"},
		{ID: "environment", Name: "Environment", Accent: "emerald"},
		{ID: "education", Name: "Education", Accent: "cyan"},
		{ID: "travel", Name: "Travel", Accent: "amber"},
		{ID: "food", Name: "Food", Accent: "lime"},
		{ID: "fashion", Name: "Fashion", Accent: "rose"},
	}
}

// All returns a copy of every category in catalog order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// IDs returns every category id in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.categories))
	for i, cat := range c.categories {
		ids[i] = cat.ID
	}
	return ids
}

// Lookup returns the category with the given id.
func (c *Catalog) Lookup(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Contains reports whether id names a catalog category.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Suggest returns the category whose id or name is closest to query.
// An exact (case-insensitive) match always wins. Otherwise the best candidate
// is offered only if it is within a third of the query length, minimum 2 edits.
func (c *Catalog) Suggest(query string) (Category, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Category{}, false
	}

	best := -1
	bestDist := 0
	for i, cat := range c.categories {
		for _, candidate := range []string{cat.ID, strings.ToLower(cat.Name)} {
			d := levenshtein.ComputeDistance(q, candidate)
			if d == 0 {
				return cat, true
			}
			if best < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
	}

	limit := len(q) / 3
	if limit < 2 {
		limit = 2
	}
	if best < 0 || bestDist > limit {
		return Category{}, false
	}
	return c.categories[best], true
}
