// Package repotest holds behaviour tests shared by every
// TranslationRepository implementation.
package repotest

import (
	"context"
	"testing"

	"github.com/RMahshie/freqplan/internal/repository"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTranslationRepository exercises get, save and overwrite on repo
func RunTranslationRepository(t *testing.T, repo repository.TranslationRepository) {
	t.Helper()
	ctx := context.Background()
	hash := models.HashSource("Broadcasting")

	_, err := repo.GetTranslation(ctx, hash, "sq")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	saved := &models.Translation{
		SourceHash: hash,
		Source:     "Broadcasting",
		Language:   "sq",
		Text:       "Transmetim",
	}
	require.NoError(t, repo.SaveTranslation(ctx, saved))
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := repo.GetTranslation(ctx, hash, "sq")
	require.NoError(t, err)
	assert.Equal(t, "Transmetim", got.Text)
	assert.Equal(t, "Broadcasting", got.Source)

	_, err = repo.GetTranslation(ctx, hash, "de")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.SaveTranslation(ctx, &models.Translation{
		SourceHash: hash,
		Source:     "Broadcasting",
		Language:   "sq",
		Text:       "Radiodifuzion",
	}))
	got, err = repo.GetTranslation(ctx, hash, "sq")
	require.NoError(t, err)
	assert.Equal(t, "Radiodifuzion", got.Text)
}
