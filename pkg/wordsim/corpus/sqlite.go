package corpus

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/kevinliao2003/wordsim/pkg/wordsim/internalerr"
)

// Doc is a stored corpus document.
type Doc struct {
	ID        string // ULID; assigned on Put when empty
	URL       string
	Title     string
	Text      string
	FetchedAt time.Time
}

// DocStore is a SQLite-backed corpus of documents. It implements Source,
// yielding document texts in ID order (ULIDs sort by fetch time), so the
// same store always produces the same token sequence.
type DocStore struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
	closed  bool
}

// OpenDocStore opens a SQLite corpus database with WAL mode enabled,
// creating the schema if needed.
func OpenDocStore(ctx context.Context, path string) (*DocStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	const schema = `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	url TEXT UNIQUE,
	title TEXT,
	text TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}

	return &DocStore{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection. Further operations on the
// store fail with ErrStoreClosed.
func (s *DocStore) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *DocStore) checkOpen() error {
	if s.closed {
		return fmt.Errorf("corpus store: %w", internalerr.ErrStoreClosed)
	}
	return nil
}

// PutDoc inserts or updates a document, keyed by URL when present.
// A missing ID is assigned a fresh ULID. Returns the stored document ID.
func (s *DocStore) PutDoc(ctx context.Context, d Doc) (string, error) {
	if err := s.checkOpen(); err != nil {
		return "", err
	}
	if d.ID == "" {
		d.ID = ulid.MustNew(ulid.Now(), s.entropy).String()
	}
	if d.FetchedAt.IsZero() {
		d.FetchedAt = time.Now()
	}

	const stmt = `
INSERT INTO docs (id, url, title, text, fetched_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
	title=excluded.title,
	text=excluded.text,
	fetched_at=excluded.fetched_at
RETURNING id;
`
	var url any
	if d.URL != "" {
		url = d.URL
	}
	var id string
	err := s.db.QueryRowContext(ctx, stmt, d.ID, url, d.Title, d.Text, d.FetchedAt.UTC().Format(time.RFC3339)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetDoc returns a document by ID.
func (s *DocStore) GetDoc(ctx context.Context, id string) (Doc, bool, error) {
	if err := s.checkOpen(); err != nil {
		return Doc{}, false, err
	}
	const stmt = `SELECT id, COALESCE(url, ''), COALESCE(title, ''), text, fetched_at FROM docs WHERE id=?`

	var d Doc
	var fetched string
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(&d.ID, &d.URL, &d.Title, &d.Text, &fetched)
	if err == sql.ErrNoRows {
		return Doc{}, false, nil
	}
	if err != nil {
		return Doc{}, false, err
	}
	d.FetchedAt, _ = time.Parse(time.RFC3339, fetched)
	return d, true, nil
}

// CountDocs returns the number of stored documents.
func (s *DocStore) CountDocs(ctx context.Context) (int64, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM docs`).Scan(&n)
	return n, err
}

// Segments implements Source: all document texts in ID order.
func (s *DocStore) Segments(ctx context.Context) ([]string, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT text FROM docs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, rows.Err()
}
