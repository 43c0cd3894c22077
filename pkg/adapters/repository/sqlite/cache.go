package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Local SQLite driver

	"github.com/shortling/shortling/pkg/core/domain"
)

// LinkCache snapshots the most recent successful myurls fetch per owner, so
// the link list stays viewable when the backend is unreachable. It is a
// read-through convenience, never a source of truth: every successful fetch
// replaces the owner's snapshot wholesale.
type LinkCache struct {
	db *sql.DB
}

func NewLinkCache(dbPath string) (*LinkCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &LinkCache{db: db}, nil
}

func migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS cached_links (
		owner TEXT NOT NULL,
		id INTEGER NOT NULL,
		original_url TEXT NOT NULL,
		short_url TEXT NOT NULL,
		click_count INTEGER NOT NULL DEFAULT 0,
		created_date TEXT,
		position INTEGER NOT NULL,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (owner, id)
	);
	CREATE INDEX IF NOT EXISTS idx_cached_links_owner ON cached_links(owner, position);
	`
	_, err := db.Exec(query)
	return err
}

// Replace swaps the owner's snapshot for links, preserving server order via
// the position column.
func (c *LinkCache) Replace(ctx context.Context, owner string, links []domain.Link) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cached_links WHERE owner = ?`, owner); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cached_links (owner, id, original_url, short_url, click_count, created_date, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, link := range links {
		_, err := stmt.ExecContext(ctx, owner, link.ID, link.OriginalURL, link.ShortURL,
			link.ClickCount, link.CreatedDate.Format("2006-01-02T15:04:05"), i)
		if err != nil {
			return fmt.Errorf("cache link %d: %w", link.ID, err)
		}
	}

	return tx.Commit()
}

// List returns the owner's snapshot in the order it was fetched.
func (c *LinkCache) List(ctx context.Context, owner string) ([]domain.Link, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, original_url, short_url, click_count, created_date
		FROM cached_links WHERE owner = ? ORDER BY position`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var link domain.Link
		var created string
		if err := rows.Scan(&link.ID, &link.OriginalURL, &link.ShortURL, &link.ClickCount, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse("2006-01-02T15:04:05", created); err == nil {
			link.CreatedDate = domain.DateTime{Time: t}
		}
		link.UserName = owner
		links = append(links, link)
	}
	return links, rows.Err()
}

// Purge drops the owner's snapshot, used on logout.
func (c *LinkCache) Purge(ctx context.Context, owner string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM cached_links WHERE owner = ?`, owner)
	return err
}

func (c *LinkCache) Close() error {
	return c.db.Close()
}
