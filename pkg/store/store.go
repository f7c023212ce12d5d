// Package store persists processed documents in a SQLite database.
// Persistence is the caller's concern, not the pipeline's; the processor
// never touches this package.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dtnitsch/search-ingest/models"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- Documents table: scalar columns for querying, full record as JSON
CREATE TABLE IF NOT EXISTS documents (
    doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL UNIQUE,
    title TEXT,
    language TEXT,
    content_type TEXT,
    word_count INTEGER DEFAULT 0,
    quality_score REAL DEFAULT 0,
    domain_score REAL DEFAULT 0,
    is_technical BOOLEAN DEFAULT 0,
    published_date TEXT,
    payload TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_language ON documents(language);
CREATE INDEX IF NOT EXISTS idx_documents_content_type ON documents(content_type);
CREATE INDEX IF NOT EXISTS idx_documents_quality ON documents(quality_score);
`

// Store wraps the SQLite handle for document persistence.
type Store struct {
	*sql.DB
	path string
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{DB: sqlDB, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save inserts the document for url, replacing any previous record.
func (s *Store) Save(url string, doc *models.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.Exec(`
		INSERT INTO documents (url, title, language, content_type, word_count,
			quality_score, domain_score, is_technical, published_date, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			language = excluded.language,
			content_type = excluded.content_type,
			word_count = excluded.word_count,
			quality_score = excluded.quality_score,
			domain_score = excluded.domain_score,
			is_technical = excluded.is_technical,
			published_date = excluded.published_date,
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP
	`, url, doc.Title, doc.Language, doc.ContentType, doc.WordCount,
		doc.ContentQualityScore, doc.DomainScore, doc.IsTechnicalContent,
		doc.PublishedDate, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Get returns the stored document for url, or (nil, nil) when absent.
func (s *Store) Get(url string) (*models.Document, error) {
	var payload string
	err := s.QueryRow("SELECT payload FROM documents WHERE url = ?", url).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// ListURLs returns up to limit stored URLs ordered by quality score.
func (s *Store) ListURLs(limit int) ([]string, error) {
	rows, err := s.Query("SELECT url FROM documents ORDER BY quality_score DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}
