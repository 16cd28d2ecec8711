package content

import (
	"context"
	"fmt"
	"slices"

	"github.com/abelbrown/newsai/internal/inspect"
)

// Static serves a fixed Set from memory.
type Static struct {
	set Set
}

func NewStatic(set Set) *Static {
	return &Static{set: set}
}

func (s *Static) Articles(ctx context.Context, category string) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Article
	for _, a := range s.set.Articles {
		if a.Category == category {
			a.Points = slices.Clone(a.Points)
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Static) Article(ctx context.Context, id inspect.ArticleID) (Article, error) {
	if err := ctx.Err(); err != nil {
		return Article{}, err
	}
	for _, a := range s.set.Articles {
		if a.ID == id {
			a.Points = slices.Clone(a.Points)
			return a, nil
		}
	}
	for _, h := range s.set.Headlines {
		if h.ID == id {
			return h.AsArticle(), nil
		}
	}
	return Article{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *Static) Headlines(ctx context.Context, tab string) ([]Headline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Headline
	for _, h := range s.set.Headlines {
		if h.Tab == tab {
			out = append(out, h)
		}
	}
	return out, nil
}
