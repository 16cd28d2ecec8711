// Package inspect tracks per-article interaction state: bookmark flags and the
// single article currently opened for detailed viewing.
package inspect

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoArticleOpen  = errors.New("no article is open")
	ErrInvalidArticle = errors.New("article id is empty")
	ErrInvalidMode    = errors.New("invalid inspection mode")
)

// ArticleID identifies a mock article. Opaque to this package.
type ArticleID string

// Mode is how an opened article is presented.
type Mode int

const (
	ModeSummary Mode = iota + 1
	ModePoints
)

func (m Mode) Valid() bool {
	return m == ModeSummary || m == ModePoints
}

func (m Mode) String() string {
	switch m {
	case ModeSummary:
		return "summary"
	case ModePoints:
		return "points"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts "summary" or "points" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "summary":
		return ModeSummary, nil
	case "points":
		return ModePoints, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Inspection is the article being viewed and how.
type Inspection struct {
	Article ArticleID
	Mode    Mode
}

// Interactions is a value type; mutators return a new value and never alter
// the receiver. The bookmark map is copied on write.
type Interactions struct {
	bookmarks map[ArticleID]bool
	current   *Inspection
}

// ToggleBookmark flips the bookmark flag for id. An untouched article counts
// as not bookmarked. Entries are kept once written, even when false.
func (in Interactions) ToggleBookmark(id ArticleID) Interactions {
	next := make(map[ArticleID]bool, len(in.bookmarks)+1)
	for k, v := range in.bookmarks {
		next[k] = v
	}
	next[id] = !in.bookmarks[id]
	in.bookmarks = next
	return in
}

// IsBookmarked reports the stored flag for id, false if never toggled.
func (in Interactions) IsBookmarked(id ArticleID) bool {
	return in.bookmarks[id]
}

// Bookmarked returns the ids currently bookmarked, sorted.
func (in Interactions) Bookmarked() []ArticleID {
	var ids []ArticleID
	for id, on := range in.bookmarks {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Open makes id the inspected article in the given mode, replacing whatever
// was open before.
func (in Interactions) Open(id ArticleID, mode Mode) (Interactions, error) {
	if id == "" {
		return in, ErrInvalidArticle
	}
	if !mode.Valid() {
		return in, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	in.current = &Inspection{Article: id, Mode: mode}
	return in, nil
}

// SetMode changes the mode of the open article.
func (in Interactions) SetMode(mode Mode) (Interactions, error) {
	if in.current == nil {
		return in, ErrNoArticleOpen
	}
	if !mode.Valid() {
		return in, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	in.current = &Inspection{Article: in.current.Article, Mode: mode}
	return in, nil
}

// ToggleMode flips the open article between summary and key points.
func (in Interactions) ToggleMode() (Interactions, error) {
	if in.current == nil {
		return in, ErrNoArticleOpen
	}
	if in.current.Mode == ModeSummary {
		return in.SetMode(ModePoints)
	}
	return in.SetMode(ModeSummary)
}

// Close clears the inspection. Closing with nothing open is fine.
func (in Interactions) Close() Interactions {
	in.current = nil
	return in
}

// Inspection returns the open article, if any.
func (in Interactions) Inspection() (Inspection, bool) {
	if in.current == nil {
		return Inspection{}, false
	}
	return *in.current, true
}
