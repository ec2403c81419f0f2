package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ferndev/fern/internal/viewer"
)

// Bookmark is a saved location.
type Bookmark struct {
	ID        int64
	Location  viewer.Location
	Title     string
	CreatedAt time.Time
}

// BookmarkStore manages bookmarks persisted in SQLite.
type BookmarkStore struct {
	db *sql.DB
}

// NewBookmarkStore creates a bookmark store using the given database.
func NewBookmarkStore(db *DB) *BookmarkStore {
	return &BookmarkStore{db: db.Conn()}
}

// Add saves a bookmark. Adding an already bookmarked location is a no-op.
func (bs *BookmarkStore) Add(loc viewer.Location, title string) bool {
	_, err := bs.db.Exec(
		`INSERT OR IGNORE INTO bookmarks (location, title) VALUES (?, ?)`,
		loc.String(), title,
	)
	return err == nil
}

// Remove deletes a bookmark. Returns false if it was not present.
func (bs *BookmarkStore) Remove(loc viewer.Location) bool {
	res, err := bs.db.Exec(`DELETE FROM bookmarks WHERE location = ?`, loc.String())
	if err != nil {
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// Has reports whether a location is bookmarked.
func (bs *BookmarkStore) Has(loc viewer.Location) bool {
	var count int
	err := bs.db.QueryRow(`SELECT COUNT(*) FROM bookmarks WHERE location = ?`, loc.String()).Scan(&count)
	return err == nil && count > 0
}

// List returns all bookmarks, newest first.
func (bs *BookmarkStore) List() []Bookmark {
	rows, err := bs.db.Query(
		`SELECT id, location, title, created_at FROM bookmarks ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var b Bookmark
		var loc, createdAt string
		if err := rows.Scan(&b.ID, &loc, &b.Title, &createdAt); err != nil {
			continue
		}
		b.Location = viewer.ParseLocation(loc)
		b.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		bookmarks = append(bookmarks, b)
	}
	return bookmarks
}

// Count returns the number of bookmarks.
func (bs *BookmarkStore) Count() int {
	var count int
	bs.db.QueryRow(`SELECT COUNT(*) FROM bookmarks`).Scan(&count)
	return count
}

// RenderBookmarks formats the bookmark list for the viewer.
func RenderBookmarks(bookmarks []Bookmark) string {
	var sb strings.Builder

	sb.WriteString("  Bookmarks\n")
	sb.WriteString("  ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	if len(bookmarks) == 0 {
		sb.WriteString("  No bookmarks yet. Press 'B' to bookmark the current document.\n")
		return sb.String()
	}

	for i, b := range bookmarks {
		title := b.Title
		if title == "" {
			title = b.Location.String()
		}
		fmt.Fprintf(&sb, "  [%d] %s\n       %s\n\n", i+1, title, b.Location.String())
	}
	return sb.String()
}
