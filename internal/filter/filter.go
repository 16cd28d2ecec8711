// Package filter provides pure filters over dashboard content.
// Slices in, new slices out; inputs are never modified.
package filter

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/inspect"
)

// Prefixes ignored when comparing titles for deduplication.
var commonPrefixes = []string{
	"breaking:",
	"update:",
	"updated:",
	"exclusive:",
	"just in:",
	"developing:",
	"opinion:",
	"analysis:",
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// ByCategory keeps articles in any of the given categories.
func ByCategory(articles []content.Article, categories ...string) []content.Article {
	return keep(articles, func(a content.Article) bool {
		return slices.Contains(categories, a.Category)
	})
}

// ByKind keeps articles of kind k.
func ByKind(articles []content.Article, k content.Kind) []content.Article {
	return keep(articles, func(a content.Article) bool { return a.Kind == k })
}

// ByAge drops articles older than maxAge.
func ByAge(articles []content.Article, maxAge time.Duration) []content.Article {
	return keep(articles, func(a content.Article) bool { return a.Age <= maxAge })
}

// BySource keeps articles from the named sources.
func BySource(articles []content.Article, sources ...string) []content.Article {
	return keep(articles, func(a content.Article) bool {
		return slices.Contains(sources, a.Source)
	})
}

// Bookmarked keeps articles for which isBookmarked reports true.
func Bookmarked(articles []content.Article, isBookmarked func(inspect.ArticleID) bool) []content.Article {
	return keep(articles, func(a content.Article) bool { return isBookmarked(a.ID) })
}

// Trending keeps trending headlines.
func Trending(headlines []content.Headline) []content.Headline {
	return keep(headlines, func(h content.Headline) bool { return h.Trending })
}

// ByRegion keeps headlines whose region matches, ignoring case.
func ByRegion(headlines []content.Headline, region string) []content.Headline {
	return keep(headlines, func(h content.Headline) bool { return strings.EqualFold(h.Region, region) })
}

func normalizeTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	for _, prefix := range commonPrefixes {
		if strings.HasPrefix(t, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(t, prefix))
		}
	}
	return t
}

// Dedup drops repeated ids and near-identical titles. First occurrence wins.
func Dedup(articles []content.Article) []content.Article {
	seenIDs := make(map[inspect.ArticleID]bool)
	seenTitles := make(map[string]bool)
	return keep(articles, func(a content.Article) bool {
		title := normalizeTitle(a.Title)
		if seenIDs[a.ID] || (title != "" && seenTitles[title]) {
			return false
		}
		seenIDs[a.ID] = true
		if title != "" {
			seenTitles[title] = true
		}
		return true
	})
}

// LimitPerCategory keeps the newest n articles of each category, preserving
// the input order of those kept.
func LimitPerCategory(articles []content.Article, n int) []content.Article {
	if n <= 0 {
		return []content.Article{}
	}

	byCat := make(map[string][]content.Article)
	for _, a := range articles {
		byCat[a.Category] = append(byCat[a.Category], a)
	}

	allowed := make(map[inspect.ArticleID]bool, len(articles))
	for _, group := range byCat {
		slices.SortStableFunc(group, func(x, y content.Article) int {
			return cmp.Compare(x.Age, y.Age)
		})
		for _, a := range group[:min(n, len(group))] {
			allowed[a.ID] = true
		}
	}

	return keep(articles, func(a content.Article) bool { return allowed[a.ID] })
}
