package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yigit/alumnet/internal/app/migrations"
	"github.com/yigit/alumnet/internal/app/models"
)

// newTestPool starts a throwaway PostgreSQL container with the schema applied
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("alumnet_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrator, err := migrations.NewMigrator(pool, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, migrator.Up())

	return pool
}

func createUser(t *testing.T, repo *UserRepository, name string, role models.Role, approved bool) *models.User {
	t.Helper()
	user := &models.User{
		Name:       name,
		Email:      name + "@example.edu",
		Password:   "hash",
		Role:       role,
		IsApproved: approved,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}
