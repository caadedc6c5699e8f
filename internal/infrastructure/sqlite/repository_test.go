package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/infrastructure/sqlite"
)

var ts = time.Date(2024, 3, 15, 8, 0, 0, 123000000, time.UTC)

func openRepos(t *testing.T) (*sqlite.Store, repository.LedgerRepos) {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, sqlite.Repos(store.DB())
}

func newCategory(t *testing.T, repos repository.LedgerRepos, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, repos.Categories.Create(context.Background(), c))
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Store
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_ArchivoReabreSinReaplicarEsquema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activos.db")

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	repos := sqlite.Repos(store.DB())
	newCategory(t, repos, "Vehículos")
	require.NoError(t, store.Close())

	store, err = sqlite.Open(path)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Ping(context.Background()))

	list, err := sqlite.Repos(store.DB()).Categories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1, "los datos sobreviven a la reapertura")
	assert.Equal(t, "Vehículos", list[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRepo(t *testing.T) {
	ctx := context.Background()
	_, repos := openRepos(t)
	c := newCategory(t, repos, "Muebles")

	got, err := repos.Categories.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CreatedAt.Equal(ts), "el timestamp conserva la precisión")

	missing, err := repos.Categories.GetByID(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, missing, "inexistente devuelve (nil, nil)")

	err = repos.Categories.Create(ctx, &entity.Category{Name: "Muebles", CreatedAt: ts, UpdatedAt: ts})
	assert.ErrorIs(t, err, domain.ErrConflict, "nombre duplicado")

	n, err := repos.Categories.Rename(ctx, c.ID, "Mobiliario")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = repos.Categories.Rename(ctx, 404, "X")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	count, err := repos.Categories.CountAssets(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	n, err = repos.Categories.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCategoryRepo_DeleteConActivosViolaFK(t *testing.T) {
	ctx := context.Background()
	_, repos := openRepos(t)
	c := newCategory(t, repos, "Cómputo")
	require.NoError(t, repos.Assets.Create(ctx, &entity.Asset{
		CategoryID: c.ID, Name: "Monitor", Cost: decimal.NewFromInt(300), Status: entity.StatusActive,
		CreatedAt: ts, UpdatedAt: ts,
	}))

	_, err := repos.Categories.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Activos y cronograma
// ──────────────────────────────────────────────────────────────────────────────

func TestAssetRepo_RoundTripConPolitica(t *testing.T) {
	ctx := context.Background()
	_, repos := openRepos(t)
	c := newCategory(t, repos, "Cómputo")
	bought := time.Date(2023, 7, 31, 0, 0, 0, 0, time.UTC)

	asset := &entity.Asset{
		CategoryID: c.ID, Name: "Servidor", Code: "SRV-9", Cost: decimal.RequireFromString("15999.99"),
		PurchaseDate: &bought, Custodian: "TI", Location: "Datacenter", Status: entity.StatusActive,
		Depreciation: &entity.DepreciationPolicy{
			Rate: decimal.RequireFromString("12.5"), PeriodType: entity.PeriodMonth, PeriodLength: 3,
			Method: entity.MethodStraightLine,
		},
		CreatedAt: ts, UpdatedAt: ts,
	}
	require.NoError(t, repos.Assets.Create(ctx, asset))

	got, err := repos.Assets.GetByID(ctx, asset.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Cost.Equal(asset.Cost), "el monto no pierde precisión")
	require.NotNil(t, got.PurchaseDate)
	assert.True(t, got.PurchaseDate.Equal(bought))
	require.NotNil(t, got.Depreciation)
	assert.True(t, got.Depreciation.Rate.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, entity.PeriodMonth, got.Depreciation.PeriodType)
	assert.Equal(t, 3, got.Depreciation.PeriodLength)

	list, err := repos.Assets.ListByCategory(ctx, c.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, err = repos.Assets.ListByCategory(ctx, c.ID, 10, 1)
	require.NoError(t, err)
	assert.Empty(t, list, "offset más allá del total")

	n, err := repos.Assets.UpdateCustody(ctx, 404, "x", "y", time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestAssetRepo_SinPoliticaNiFecha(t *testing.T) {
	ctx := context.Background()
	_, repos := openRepos(t)
	c := newCategory(t, repos, "Herramientas")

	asset := &entity.Asset{CategoryID: c.ID, Name: "Taladro", Cost: decimal.NewFromInt(80),
		Status: entity.StatusActive, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, repos.Assets.Create(ctx, asset))

	got, err := repos.Assets.GetByID(ctx, asset.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PurchaseDate)
	assert.Nil(t, got.Depreciation)
	assert.False(t, got.HasSchedule())
}

func TestDepreciationRepo_PeriodoDuplicado(t *testing.T) {
	ctx := context.Background()
	_, repos := openRepos(t)
	c := newCategory(t, repos, "Cómputo")
	asset := &entity.Asset{CategoryID: c.ID, Name: "Router", Cost: decimal.NewFromInt(100),
		Status: entity.StatusActive, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, repos.Assets.Create(ctx, asset))

	entry := entity.DepreciationEntry{
		AssetID: asset.ID, Period: 1, PeriodDate: ts, Amount: decimal.NewFromInt(25),
		RemainingValue: decimal.NewFromInt(75), Rate: decimal.NewFromInt(25),
		PeriodType: entity.PeriodYear, PeriodLength: 1, Method: entity.MethodStraightLine,
	}
	require.NoError(t, repos.Depreciation.CreateBatch(ctx, []entity.DepreciationEntry{entry}))
	err := repos.Depreciation.CreateBatch(ctx, []entity.DepreciationEntry{entry})
	assert.ErrorIs(t, err, domain.ErrConflict, "UNIQUE (asset_id, period)")

	list, err := repos.Depreciation.ListByAsset(ctx, asset.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].RemainingValue.Equal(decimal.NewFromInt(75)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestNotificationRepo_MarkRead(t *testing.T) {
	ctx := context.Background()
	_, repos := openRepos(t)

	for _, code := range []string{"A-1", "A-2"} {
		require.NoError(t, repos.Notifications.Create(ctx, &entity.Notification{
			Type: entity.NotificationDisposal, AssetCode: code, Message: "baja " + code,
			CreatedAt: ts, Priority: entity.PriorityHigh,
		}))
	}

	unread, err := repos.Notifications.List(ctx, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "A-2", unread[0].AssetCode, "más reciente primero")

	n, err := repos.Notifications.MarkRead(ctx, unread[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	unread, err = repos.Notifications.List(ctx, true, 10, 0)
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	all, err := repos.Notifications.List(ctx, false, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.True(t, all[0].Read)
}
