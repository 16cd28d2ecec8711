package content

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/abelbrown/newsai/internal/eventlog"
	"github.com/abelbrown/newsai/internal/inspect"
)

const (
	maxConcurrentLoads = 4
	loadTimeout        = 10 * time.Second
)

// Snapshot is everything the dashboard renders for one load.
type Snapshot struct {
	Articles  map[string][]Article
	Headlines map[string][]Headline
	LoadedAt  time.Time
}

// ByKind returns the category's articles of kind k in source order.
func (s Snapshot) ByKind(category string, k Kind) []Article {
	var out []Article
	for _, a := range s.Articles[category] {
		if a.Kind == k {
			out = append(out, a)
		}
	}
	return out
}

// Find looks id up among articles, then headlines.
func (s Snapshot) Find(id inspect.ArticleID) (Article, bool) {
	for _, list := range s.Articles {
		if i := slices.IndexFunc(list, func(a Article) bool { return a.ID == id }); i >= 0 {
			return list[i], true
		}
	}
	for _, list := range s.Headlines {
		if i := slices.IndexFunc(list, func(h Headline) bool { return h.ID == id }); i >= 0 {
			return list[i].AsArticle(), true
		}
	}
	return Article{}, false
}

// Service loads snapshots from a Source.
type Service struct {
	src     Source
	limiter *rate.Limiter
	events  *eventlog.Log
}

// NewService wraps src. Refresh runs at most once per interval; a
// non-positive interval disables the limit. events may be nil.
func NewService(src Source, interval time.Duration, events *eventlog.Log) *Service {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Service{
		src:     src,
		limiter: rate.NewLimiter(limit, 1),
		events:  events,
	}
}

// Load fetches every category and tab concurrently. The first failure
// cancels the rest.
func (s *Service) Load(ctx context.Context, categories, tabs []string) (Snapshot, error) {
	start := time.Now()
	s.events.Emit(eventlog.Event{Level: eventlog.LevelDebug, Kind: eventlog.KindLoadStart, Comp: "content",
		Count: len(categories) + len(tabs)})

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	snap := Snapshot{
		Articles:  make(map[string][]Article, len(categories)),
		Headlines: make(map[string][]Headline, len(tabs)),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for _, cat := range categories {
		g.Go(func() error {
			list, err := s.src.Articles(ctx, cat)
			if err != nil {
				return fmt.Errorf("articles %s: %w", cat, err)
			}
			mu.Lock()
			snap.Articles[cat] = list
			mu.Unlock()
			return nil
		})
	}
	for _, tab := range tabs {
		g.Go(func() error {
			list, err := s.src.Headlines(ctx, tab)
			if err != nil {
				return fmt.Errorf("headlines %s: %w", tab, err)
			}
			mu.Lock()
			snap.Headlines[tab] = list
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.events.Error(eventlog.KindLoadError, "content", err)
		return Snapshot{}, err
	}

	snap.LoadedAt = time.Now()
	n := 0
	for _, list := range snap.Articles {
		n += len(list)
	}
	for _, list := range snap.Headlines {
		n += len(list)
	}
	s.events.Emit(eventlog.Event{Level: eventlog.LevelInfo, Kind: eventlog.KindLoadComplete, Comp: "content",
		Count: n, Dur: time.Since(start)})
	return snap, nil
}

// Refresh is Load behind the refresh limiter. It blocks until a token is
// available or ctx ends.
func (s *Service) Refresh(ctx context.Context, categories, tabs []string) (Snapshot, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("refresh limiter: %w", err)
	}
	return s.Load(ctx, categories, tabs)
}

// Article fetches a single article from the source.
func (s *Service) Article(ctx context.Context, id inspect.ArticleID) (Article, error) {
	return s.src.Article(ctx, id)
}
