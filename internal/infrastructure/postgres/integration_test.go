package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/ledger"
	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Activos-api/pkg/config"
)

// Requiere una base PostgreSQL desechable: TEST_DATABASE_URL=postgres://... go test ./...
func openPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	_, err := postgres.Migrate(url, postgres.MigrateUp, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE asset_history, asset_notifications, disposals, transfer_history,
		depreciation_entries, assets, asset_categories RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func TestPostgres_CicloDeVidaCompleto(t *testing.T) {
	pool := openPool(t)
	ctx := context.Background()
	repos := postgres.Repos(pool)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	category := &entity.Category{Name: "Cómputo", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Categories.Create(ctx, category))
	err := repos.Categories.Create(ctx, &entity.Category{Name: "Cómputo", CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrConflict)

	l := ledger.New(postgres.NewTxRunner(pool), repos.Assets, zerolog.Nop(),
		ledger.WithClock(func() time.Time { return now }))
	bought := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	asset, schedule, err := l.Create(ctx, ledger.CreateAssetInput{
		CategoryID: category.ID, Name: "Portátil", Code: "LAP-1", Cost: decimal.NewFromInt(12000),
		PurchaseDate: &bought,
		Depreciation: &entity.DepreciationPolicy{
			Rate: decimal.NewFromInt(10), PeriodType: entity.PeriodYear, PeriodLength: 1,
		},
	})
	require.NoError(t, err)
	require.Len(t, schedule, 10)

	stored, err := repos.Depreciation.ListByAsset(ctx, asset.ID)
	require.NoError(t, err)
	require.Len(t, stored, 10)
	assert.True(t, stored[0].RemainingValue.Equal(decimal.NewFromInt(10800)))
	assert.Positive(t, stored[9].ID)

	_, err = l.Transfer(ctx, ledger.TransferInput{AssetID: asset.ID, Custodian: "Ana", Location: "Bodega"})
	require.NoError(t, err)
	_, err = l.Transfer(ctx, ledger.TransferInput{AssetID: asset.ID, Custodian: "Ana", Location: "Bodega"})
	assert.ErrorIs(t, err, domain.ErrNoOp)

	record, err := l.Dispose(ctx, ledger.DisposeInput{
		AssetID: asset.ID, CategoryID: category.ID, Reason: "Dañado", DisposedValue: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.True(t, record.Loss.Equal(decimal.NewFromInt(11500)))
	_, err = l.Dispose(ctx, ledger.DisposeInput{AssetID: asset.ID, CategoryID: category.ID, Reason: "Dañado"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := repos.Assets.GetByID(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dañado", got.Status)
	assert.Equal(t, "Ana", got.Custodian)
	require.NotNil(t, got.PurchaseDate)
	assert.True(t, got.PurchaseDate.Equal(bought))

	unread, err := repos.Notifications.List(ctx, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	n, err := repos.Notifications.MarkRead(ctx, unread[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	cut := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	summary, err := reporting.NewValuationUseCase(postgres.NewReportRepository(pool)).CategorySummary(ctx, nil, &cut)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].AssetCount)
	assert.True(t, summary[0].TotalValue.Equal(decimal.NewFromInt(9600)))
}
