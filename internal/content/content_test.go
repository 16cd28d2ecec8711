package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abelbrown/newsai/internal/eventlog"
	"github.com/abelbrown/newsai/internal/inspect"
)

func TestMockIDsUniqueAndNamespaced(t *testing.T) {
	set := Mock()
	seen := map[inspect.ArticleID]bool{}

	for _, a := range set.Articles {
		require.False(t, seen[a.ID], "duplicate %s", a.ID)
		seen[a.ID] = true
		require.True(t, strings.HasPrefix(string(a.ID), string(a.Kind)+"-"), a.ID)
		require.NotEmpty(t, a.Title)
	}
	for _, h := range set.Headlines {
		require.False(t, seen[h.ID], "duplicate %s", h.ID)
		seen[h.ID] = true
		require.True(t, strings.HasPrefix(string(h.ID), "global-"), h.ID)
	}
	require.Len(t, seen, 22)
}

func TestFeedArticlesHavePoints(t *testing.T) {
	for _, a := range Mock().Articles {
		if a.Kind == KindFeed {
			require.NotEmpty(t, a.Summary, a.ID)
			require.Len(t, a.Points, 5, a.ID)
		}
	}
}

func TestStatic(t *testing.T) {
	ctx := context.Background()
	src := NewStatic(Mock())

	tech, err := src.Articles(ctx, "technology")
	require.NoError(t, err)
	require.Len(t, tech, 5)

	none, err := src.Articles(ctx, "fashion")
	require.NoError(t, err)
	require.Empty(t, none)

	a, err := src.Article(ctx, "feed-5")
	require.NoError(t, err)
	require.Equal(t, "science", a.Category)

	a.Points[0] = "mutated"
	again, _ := src.Article(ctx, "feed-5")
	require.NotEqual(t, "mutated", again.Points[0])

	g, err := src.Article(ctx, "global-3")
	require.NoError(t, err)
	require.Equal(t, "CNN", g.Source)

	_, err = src.Article(ctx, "feed-99")
	require.ErrorIs(t, err, ErrNotFound)

	editors, err := src.Headlines(ctx, "editors")
	require.NoError(t, err)
	require.Len(t, editors, 4)
}

func TestStaticHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStatic(Mock()).Articles(ctx, "technology")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAgo(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{45 * time.Minute, "45 minutes ago"},
		{time.Hour, "1 hour ago"},
		{8 * time.Hour, "8 hours ago"},
		{50 * time.Hour, "2 days ago"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Ago(tt.d))
	}
}

func TestServiceLoad(t *testing.T) {
	ring := eventlog.NewRing(8)
	events := eventlog.Discard()
	events.Attach(ring)

	svc := NewService(NewStatic(Mock()), 0, events)
	snap, err := svc.Load(context.Background(), []string{"technology", "health"}, []string{"trending", "editors"})
	require.NoError(t, err)
	events.Close()

	require.Len(t, snap.ByKind("technology", KindFeed), 3)
	require.Len(t, snap.ByKind("technology", KindCard), 2)
	require.Len(t, snap.Headlines["trending"], 4)
	require.False(t, snap.LoadedAt.IsZero())

	a, ok := snap.Find("global-6")
	require.True(t, ok)
	require.Equal(t, "editors", a.Category)
	_, ok = snap.Find("feed-4")
	require.False(t, ok, "business was not loaded")

	counts := ring.Counts()
	require.Equal(t, 1, counts[eventlog.KindLoadStart])
	require.Equal(t, 1, counts[eventlog.KindLoadComplete])
}

type failing struct{ *Static }

func (failing) Headlines(context.Context, string) ([]Headline, error) {
	return nil, errors.New("upstream down")
}

func TestServiceLoadError(t *testing.T) {
	svc := NewService(failing{NewStatic(Mock())}, 0, nil)
	_, err := svc.Load(context.Background(), []string{"technology"}, []string{"trending"})
	require.ErrorContains(t, err, "upstream down")
}

func TestRefreshRateLimited(t *testing.T) {
	svc := NewService(NewStatic(Mock()), time.Hour, nil)

	_, err := svc.Refresh(context.Background(), []string{"science"}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = svc.Refresh(ctx, []string{"science"}, nil)
	require.Error(t, err)
}
