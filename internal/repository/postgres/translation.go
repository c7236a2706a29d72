package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/RMahshie/freqplan/internal/repository"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS translations (
		id          UUID PRIMARY KEY,
		source_hash TEXT NOT NULL,
		source      TEXT NOT NULL,
		language    TEXT NOT NULL,
		text        TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (source_hash, language)
	)`

// PostgresTranslationRepository implements TranslationRepository for PostgreSQL
type PostgresTranslationRepository struct {
	db *sql.DB
}

// Open connects to PostgreSQL and makes sure the translations table exists
func Open(ctx context.Context, databaseURL string) (*PostgresTranslationRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	repo := NewPostgresTranslationRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// NewPostgresTranslationRepository wraps an open database
func NewPostgresTranslationRepository(db *sql.DB) *PostgresTranslationRepository {
	return &PostgresTranslationRepository{db: db}
}

// EnsureSchema creates the translations table when missing
func (r *PostgresTranslationRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// GetTranslation retrieves a cached translation
func (r *PostgresTranslationRepository) GetTranslation(ctx context.Context, sourceHash, language string) (*models.Translation, error) {
	query := `
		SELECT id, source_hash, source, language, text, created_at
		FROM translations
		WHERE source_hash = $1 AND language = $2`

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
func (r *PostgresTranslationRepository) SaveTranslation(ctx context.Context, t *models.Translation) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO translations (id, source_hash, source, language, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (source_hash, language)
		DO UPDATE SET text = EXCLUDED.text, created_at = EXCLUDED.created_at`

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
func (r *PostgresTranslationRepository) Close() error {
	return r.db.Close()
}

var _ repository.TranslationRepository = (*PostgresTranslationRepository)(nil)
