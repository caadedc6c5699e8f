package storage_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/infrastructure/storage"
	"github.com/jhoicas/Activos-api/pkg/config"
)

func TestOpen_SQLiteEnMemoria(t *testing.T) {
	cfg, err := config.FromMap(map[string]string{"STORE_DRIVER": "sqlite", "SQLITE_PATH": ":memory:"})
	require.NoError(t, err)

	ctx := context.Background()
	b, err := storage.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(b.Close)

	assert.Equal(t, config.DriverSQLite, b.Driver)
	require.NoError(t, b.Ping(ctx))

	// El runner y los repos fuera de transacción ven la misma base.
	err = b.Tx.Run(ctx, func(repos repository.LedgerRepos) error {
		return repos.Categories.Create(ctx, &entity.Category{Name: "Cómputo"})
	})
	require.NoError(t, err)

	cats, err := b.Repos.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Cómputo", cats[0].Name)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "mongo"}}
	_, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
