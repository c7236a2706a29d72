package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/RMahshie/freqplan/internal/repository/repotest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresTranslationRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := pgContainer.Run(ctx,
		"postgres:15-alpine",
		pgContainer.WithDatabase("freqplan_test"),
		pgContainer.WithUsername("testuser"),
		pgContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	defer func() { require.NoError(t, container.Terminate(ctx)) }()

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	repo, err := Open(ctx, dbURL)
	require.NoError(t, err)
	defer repo.Close()

	// Idempotent
	require.NoError(t, repo.EnsureSchema(ctx))

	repotest.RunTranslationRepository(t, repo)
}
