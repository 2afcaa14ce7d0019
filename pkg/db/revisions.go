package db

import (
	"database/sql"
	"fmt"
	"time"
)

// PutRevision stores or replaces the cached wikitext for (lang, title).
func (db *DB) PutRevision(lang, title, wikitext string) error {
	return db.putRevision(lang, title, wikitext, time.Now())
}

func (db *DB) putRevision(lang, title, wikitext string, fetchedAt time.Time) error {
	_, err := db.Exec(
		`INSERT INTO revisions (lang, title, wikitext, fetched_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(lang, title) DO UPDATE SET wikitext = excluded.wikitext, fetched_at = excluded.fetched_at`,
		lang, title, wikitext, fetchedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store revision: %w", err)
	}
	return nil
}

// GetRevision returns the cached wikitext for (lang, title) when present
// and fetched no longer than maxAge ago. A maxAge of zero never matches.
func (db *DB) GetRevision(lang, title string, maxAge time.Duration) (string, bool, error) {
	var wikitext string
	var fetchedAt int64
	err := db.QueryRow(
		"SELECT wikitext, fetched_at FROM revisions WHERE lang = ? AND title = ?",
		lang, title,
	).Scan(&wikitext, &fetchedAt)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read revision: %w", err)
	}

	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return "", false, nil
	}
	return wikitext, true, nil
}

// PruneExpired deletes every cached revision older than maxAge and
// returns how many were removed.
func (db *DB) PruneExpired(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	res, err := db.Exec("DELETE FROM revisions WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune revisions: %w", err)
	}
	return res.RowsAffected()
}

// Cache adapts a DB plus a TTL to the wikiapi.RevisionCache interface.
type Cache struct {
	db  *DB
	ttl time.Duration
}

func NewCache(db *DB, ttl time.Duration) *Cache {
	return &Cache{db: db, ttl: ttl}
}

func (c *Cache) Get(lang, title string) (string, bool) {
	text, ok, err := c.db.GetRevision(lang, title, c.ttl)
	if err != nil {
		return "", false
	}
	return text, ok
}

func (c *Cache) Put(lang, title, wikitext string) error {
	return c.db.PutRevision(lang, title, wikitext)
}
