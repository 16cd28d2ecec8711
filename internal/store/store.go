// Package store is the SQLite content cache. It implements content.Source
// so the dashboard can render from disk instead of the built-in mock set.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"github.com/abelbrown/newsai/internal/content"
	"github.com/abelbrown/newsai/internal/inspect"
)

// Store handles SQLite persistence. Safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ content.Source = (*Store)(nil)

var memSeq atomic.Uint64

// Open opens or creates the database at dbPath and applies migrations.
// ":memory:" gets a private in-memory database on a single connection;
// file databases use WAL.
func Open(dbPath string) (*Store, error) {
	inMemory := dbPath == ":memory:"
	connStr := dbPath
	if inMemory {
		// Each Open gets its own named shared-cache database so the pool's
		// connections agree on one database and separate Opens don't collide.
		connStr = fmt.Sprintf("file:newsai-%d?mode=memory&cache=shared", memSeq.Add(1))
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if inMemory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	pragmas := []string{"PRAGMA foreign_keys=ON"}
	if !inMemory {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL")
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close waits for in-flight operations, then closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveArticles inserts or replaces articles together with their key
// points, returning how many articles were written.
func (s *Store) SaveArticles(articles []content.Article) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	upsert, err := tx.Prepare(`
		INSERT OR REPLACE INTO articles (id, kind, category, title, summary, source, age_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer upsert.Close()

	wipe, err := tx.Prepare("DELETE FROM article_points WHERE article_id = ?")
	if err != nil {
		return 0, err
	}
	defer wipe.Close()

	point, err := tx.Prepare("INSERT INTO article_points (article_id, position, text) VALUES (?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer point.Close()

	written := 0
	for _, a := range articles {
		if a.ID == "" {
			return 0, fmt.Errorf("save article: %w", inspect.ErrInvalidArticle)
		}
		if _, err := wipe.Exec(string(a.ID)); err != nil {
			return 0, fmt.Errorf("clear points %s: %w", a.ID, err)
		}
		res, err := upsert.Exec(string(a.ID), string(a.Kind), a.Category, a.Title, a.Summary, a.Source, int64(a.Age/time.Second))
		if err != nil {
			return 0, fmt.Errorf("save article %s: %w", a.ID, err)
		}
		for i, text := range a.Points {
			if _, err := point.Exec(string(a.ID), i, text); err != nil {
				return 0, fmt.Errorf("save points %s: %w", a.ID, err)
			}
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			written++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

// SaveHeadlines inserts or replaces headlines, returning how many were written.
func (s *Store) SaveHeadlines(headlines []content.Headline) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(headlines) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO headlines (id, tab, title, source, age_seconds, trending, region)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	written := 0
	for _, h := range headlines {
		if h.ID == "" {
			return 0, fmt.Errorf("save headline: %w", inspect.ErrInvalidArticle)
		}
		res, err := stmt.Exec(string(h.ID), h.Tab, h.Title, h.Source, int64(h.Age/time.Second), boolToInt(h.Trending), h.Region)
		if err != nil {
			return 0, fmt.Errorf("save headline %s: %w", h.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			written++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

// Seed writes a whole content set.
func (s *Store) Seed(set content.Set) (int, error) {
	a, err := s.SaveArticles(set.Articles)
	if err != nil {
		return a, err
	}
	h, err := s.SaveHeadlines(set.Headlines)
	return a + h, err
}

// Articles returns a category's articles in the order they were saved.
func (s *Store) Articles(ctx context.Context, category string) ([]content.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles, err := s.queryArticles(ctx, `
		SELECT id, kind, category, title, summary, source, age_seconds
		FROM articles
		WHERE category = ?
		ORDER BY rowid
	`, category)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].Points, err = s.points(ctx, articles[i].ID); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

// Article looks id up among articles, then headlines.
func (s *Store) Article(ctx context.Context, id inspect.ArticleID) (content.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles, err := s.queryArticles(ctx, `
		SELECT id, kind, category, title, summary, source, age_seconds
		FROM articles
		WHERE id = ?
	`, string(id))
	if err != nil {
		return content.Article{}, err
	}
	if len(articles) == 1 {
		a := articles[0]
		a.Points, err = s.points(ctx, a.ID)
		return a, err
	}

	headlines, err := s.queryHeadlines(ctx, `
		SELECT id, tab, title, source, age_seconds, trending, region
		FROM headlines
		WHERE id = ?
	`, string(id))
	if err != nil {
		return content.Article{}, err
	}
	if len(headlines) == 1 {
		return headlines[0].AsArticle(), nil
	}
	return content.Article{}, fmt.Errorf("%w: %s", content.ErrNotFound, id)
}

// Headlines returns a tab's headlines in the order they were saved.
func (s *Store) Headlines(ctx context.Context, tab string) ([]content.Headline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryHeadlines(ctx, `
		SELECT id, tab, title, source, age_seconds, trending, region
		FROM headlines
		WHERE tab = ?
		ORDER BY rowid
	`, tab)
}

// Counts reports how many articles and headlines are cached.
func (s *Store) Counts() (articles, headlines int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	err = s.db.QueryRow(`
		SELECT (SELECT COUNT(*) FROM articles), (SELECT COUNT(*) FROM headlines)
	`).Scan(&articles, &headlines)
	return articles, headlines, err
}

// Empty reports whether the cache has no content yet.
func (s *Store) Empty() (bool, error) {
	a, h, err := s.Counts()
	return a+h == 0, err
}

// Caller must hold s.mu.
func (s *Store) queryArticles(ctx context.Context, query string, args ...any) ([]content.Article, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Article
	for rows.Next() {
		var a content.Article
		var id, kind string
		var age int64
		if err := rows.Scan(&id, &kind, &a.Category, &a.Title, &a.Summary, &a.Source, &age); err != nil {
			return nil, err
		}
		a.ID = inspect.ArticleID(id)
		a.Kind = content.Kind(kind)
		a.Age = time.Duration(age) * time.Second
		out = append(out, a)
	}
	return out, rows.Err()
}

// Caller must hold s.mu.
func (s *Store) queryHeadlines(ctx context.Context, query string, args ...any) ([]content.Headline, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Headline
	for rows.Next() {
		var h content.Headline
		var id string
		var age int64
		var trending int
		if err := rows.Scan(&id, &h.Tab, &h.Title, &h.Source, &age, &trending, &h.Region); err != nil {
			return nil, err
		}
		h.ID = inspect.ArticleID(id)
		h.Age = time.Duration(age) * time.Second
		h.Trending = trending != 0
		out = append(out, h)
	}
	return out, rows.Err()
}

// Caller must hold s.mu.
func (s *Store) points(ctx context.Context, id inspect.ArticleID) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT text FROM article_points WHERE article_id = ? ORDER BY position", string(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
