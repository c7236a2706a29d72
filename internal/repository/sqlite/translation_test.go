package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/RMahshie/freqplan/internal/repository/repotest"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteTranslationRepository_InMemory(t *testing.T) {
	repo, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	repotest.RunTranslationRepository(t, repo)
}

func TestSQLiteTranslationRepository_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.SaveTranslation(ctx, &models.Translation{
		SourceHash: models.HashSource("Fixed"),
		Source:     "Fixed",
		Language:   "de",
		Text:       "Fester Funkdienst",
	}))
	require.NoError(t, repo.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetTranslation(ctx, models.HashSource("Fixed"), "de")
	require.NoError(t, err)
	assert.Equal(t, "Fester Funkdienst", got.Text)
}
