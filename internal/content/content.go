// Package content provides the articles and headlines the dashboard shows.
// Mock is the built-in data set; Source abstracts where it comes from so the
// sqlite cache can stand in for it.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abelbrown/newsai/internal/inspect"
)

var ErrNotFound = errors.New("article not found")

// Kind says which dashboard block an article belongs to.
type Kind string

const (
	KindFeed Kind = "feed"
	KindCard Kind = "card"
)

// Article is a news item with an optional digest of key points.
type Article struct {
	ID       inspect.ArticleID
	Kind     Kind
	Category string
	Title    string
	Summary  string
	Source   string
	Age      time.Duration
	Points   []string
}

// Headline is a global-news item listed under a tab.
type Headline struct {
	ID       inspect.ArticleID
	Tab      string
	Title    string
	Source   string
	Age      time.Duration
	Trending bool
	Region   string
}

// AsArticle lets a headline open in the article modal.
func (h Headline) AsArticle() Article {
	return Article{ID: h.ID, Category: h.Tab, Title: h.Title, Source: h.Source, Age: h.Age}
}

// Source serves content by category and tab.
type Source interface {
	Articles(ctx context.Context, category string) ([]Article, error)
	Article(ctx context.Context, id inspect.ArticleID) (Article, error)
	Headlines(ctx context.Context, tab string) ([]Headline, error)
}

// Ago renders d the way the dashboard labels article age.
func Ago(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
