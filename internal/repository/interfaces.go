package repository

import (
	"context"
	"errors"

	"github.com/RMahshie/freqplan/pkg/models"
)

// ErrNotFound is returned when no cached translation exists
var ErrNotFound = errors.New("translation not found")

// TranslationRepository caches translated term labels
type TranslationRepository interface {
	GetTranslation(ctx context.Context, sourceHash, language string) (*models.Translation, error)
	SaveTranslation(ctx context.Context, t *models.Translation) error
	Close() error
}
