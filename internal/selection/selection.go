// Package selection holds the user's ordered, bounded set of chosen categories.
//
// Selection is a value type: every mutating operation returns a new Selection
// and leaves the receiver untouched, so a failed operation can never leave a
// partially applied change behind.
package selection

import (
	"errors"
	"fmt"

	"github.com/abelbrown/newsai/internal/catalog"
)

// MaxSelected is the most categories a user may pick.
const MaxSelected = 4

var (
	ErrDuplicateSelection = errors.New("category already selected")
	ErrCapacityExceeded   = fmt.Errorf("at most %d categories can be selected", MaxSelected)
	ErrUnknownCategory    = errors.New("unknown category")
	ErrInvalidPermutation = errors.New("reorder must be a permutation of the current selection")
)

// Selection is an ordered sequence of distinct catalog category ids.
type Selection struct {
	catalog *catalog.Catalog
	ids     []string
}

// New returns a selection seeded with ids, added in order.
// A seed that breaks the capacity or uniqueness rules is rejected.
func New(cat *catalog.Catalog, seed ...string) (Selection, error) {
	s := Selection{catalog: cat}
	for _, id := range seed {
		next, err := s.Add(id)
		if err != nil {
			return Selection{}, fmt.Errorf("seed %q: %w", id, err)
		}
		s = next
	}
	return s, nil
}

// Add appends id to the end of the selection.
func (s Selection) Add(id string) (Selection, error) {
	if s.Contains(id) {
		return s, fmt.Errorf("%w: %s", ErrDuplicateSelection, id)
	}
	if len(s.ids) >= MaxSelected {
		return s, ErrCapacityExceeded
	}
	if s.catalog == nil || !s.catalog.Contains(id) {
		return s, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}

	ids := make([]string, len(s.ids), len(s.ids)+1)
	copy(ids, s.ids)
	s.ids = append(ids, id)
	return s, nil
}

// Remove drops id, keeping the relative order of the rest. Absent ids are a no-op.
func (s Selection) Remove(id string) Selection {
	i := s.indexOf(id)
	if i < 0 {
		return s
	}

	ids := make([]string, 0, len(s.ids)-1)
	ids = append(ids, s.ids[:i]...)
	ids = append(ids, s.ids[i+1:]...)
	s.ids = ids
	return s
}

// Reorder replaces the order with seq, which must contain exactly the
// currently selected ids.
func (s Selection) Reorder(seq []string) (Selection, error) {
	if len(seq) != len(s.ids) {
		return s, ErrInvalidPermutation
	}

	seen := make(map[string]bool, len(seq))
	for _, id := range seq {
		if seen[id] || !s.Contains(id) {
			return s, ErrInvalidPermutation
		}
		seen[id] = true
	}

	ids := make([]string, len(seq))
	copy(ids, seq)
	s.ids = ids
	return s, nil
}

// Move shifts id by delta positions (negative is towards the front), clamped
// to the ends of the sequence. It is the keyboard form of drag-and-drop and
// goes through Reorder.
func (s Selection) Move(id string, delta int) (Selection, error) {
	from := s.indexOf(id)
	if from < 0 {
		return s, fmt.Errorf("%w: %q is not selected", ErrInvalidPermutation, id)
	}

	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(s.ids)-1 {
		to = len(s.ids) - 1
	}
	if to == from {
		return s, nil
	}

	seq := make([]string, 0, len(s.ids))
	for i, cur := range s.ids {
		if i == from {
			continue
		}
		seq = append(seq, cur)
	}
	seq = append(seq[:to], append([]string{id}, seq[to:]...)...)
	return s.Reorder(seq)
}

// List returns a copy of the selected ids in display order.
func (s Selection) List() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Categories resolves the selection against the catalog, in display order.
func (s Selection) Categories() []catalog.Category {
	out := make([]catalog.Category, 0, len(s.ids))
	for _, id := range s.ids {
		if cat, ok := s.catalog.Lookup(id); ok {
			out = append(out, cat)
		}
	}
	return out
}

// Available lists catalog categories that are not selected yet.
func (s Selection) Available() []catalog.Category {
	if s.catalog == nil {
		return nil
	}
	var out []catalog.Category
	for _, cat := range s.catalog.All() {
		if !s.Contains(cat.ID) {
			out = append(out, cat)
		}
	}
	return out
}

// Catalog returns the registry this selection validates against.
func (s Selection) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s Selection) Contains(id string) bool { return s.indexOf(id) >= 0 }
func (s Selection) Len() int                { return len(s.ids) }
func (s Selection) Full() bool              { return len(s.ids) >= MaxSelected }

func (s Selection) indexOf(id string) int {
	for i, cur := range s.ids {
		if cur == id {
			return i
		}
	}
	return -1
}
