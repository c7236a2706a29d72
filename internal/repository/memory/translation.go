package memory

import (
	"context"
	"sync"
	"time"

	"github.com/RMahshie/freqplan/internal/repository"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/google/uuid"
)

type key struct {
	hash     string
	language string
}

// TranslationRepository is an in-process translation cache
type TranslationRepository struct {
	mu    sync.RWMutex
	items map[key]models.Translation
}

// NewTranslationRepository returns an empty cache
func NewTranslationRepository() *TranslationRepository {
	return &TranslationRepository{items: make(map[key]models.Translation)}
}

// GetTranslation retrieves a cached translation
func (r *TranslationRepository) GetTranslation(_ context.Context, sourceHash, language string) (*models.Translation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[key{sourceHash, language}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

// SaveTranslation inserts or replaces a cached translation
func (r *TranslationRepository) SaveTranslation(_ context.Context, t *models.Translation) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key{t.SourceHash, t.Language}] = *t
	return nil
}

// Close is a no-op
func (r *TranslationRepository) Close() error { return nil }

var _ repository.TranslationRepository = (*TranslationRepository)(nil)
