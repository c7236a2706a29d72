package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/RMahshie/freqplan/internal/repository"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS translations (
		id          TEXT PRIMARY KEY,
		source_hash TEXT NOT NULL,
		source      TEXT NOT NULL,
		language    TEXT NOT NULL,
		text        TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL,
		UNIQUE (source_hash, language)
	)`

// SQLiteTranslationRepository keeps the translation cache in a local file
type SQLiteTranslationRepository struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path. Use ":memory:" for a
// throwaway cache.
func Open(ctx context.Context, path string) (*SQLiteTranslationRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteTranslationRepository{db: db}, nil
}

// GetTranslation retrieves a cached translation
func (r *SQLiteTranslationRepository) GetTranslation(ctx context.Context, sourceHash, language string) (*models.Translation, error) {
	query := `
		SELECT id, source_hash, source, language, text, created_at
		FROM translations
		WHERE source_hash = ? AND language = ?`

	var t models.Translation
	err := r.db.QueryRowContext(ctx, query, sourceHash, language).Scan(
		&t.ID,
		&t.SourceHash,
		&t.Source,
		&t.Language,
		&t.Text,
		&t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTranslation inserts or replaces a cached translation
func (r *SQLiteTranslationRepository) SaveTranslation(ctx context.Context, t *models.Translation) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO translations (id, source_hash, source, language, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (source_hash, language)
		DO UPDATE SET text = excluded.text, created_at = excluded.created_at`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.SourceHash,
		t.Source,
		t.Language,
		t.Text,
		t.CreatedAt)

	return err
}

// Close closes the database
func (r *SQLiteTranslationRepository) Close() error {
	return r.db.Close()
}

var _ repository.TranslationRepository = (*SQLiteTranslationRepository)(nil)
