package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/ledger"
	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/sqlite"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// setup: "Cómputo" con un portátil (12000 al 10% anual desde 2020-01-01) y una silla sin
// política (500); "Muebles" sin activos.
func setup(t *testing.T) *reporting.ValuationUseCase {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	repos := sqlite.Repos(store.DB())
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	computo := &entity.Category{Name: "Cómputo", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Categories.Create(ctx, computo))
	require.NoError(t, repos.Categories.Create(ctx, &entity.Category{Name: "Muebles", CreatedAt: now, UpdatedAt: now}))

	l := ledger.New(sqlite.NewTxRunner(store), repos.Assets, zerolog.Nop())
	_, _, err = l.Create(ctx, ledger.CreateAssetInput{
		CategoryID: computo.ID, Name: "Portátil", Code: "LAP-1",
		Cost: decimal.NewFromInt(12000), PurchaseDate: date(2020, 1, 1),
		Depreciation: &entity.DepreciationPolicy{
			Rate: decimal.NewFromInt(10), PeriodType: entity.PeriodYear, PeriodLength: 1,
		},
	})
	require.NoError(t, err)
	_, _, err = l.Create(ctx, ledger.CreateAssetInput{
		CategoryID: computo.ID, Name: "Silla", Code: "SIL-1", Cost: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	return reporting.NewValuationUseCase(sqlite.NewReportRepository(store.DB()))
}

func TestCategorySummary_SinVentana(t *testing.T) {
	uc := setup(t)

	summary, err := uc.CategorySummary(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, summary, 2, "las categorías sin activos también aparecen")

	assert.Equal(t, "Cómputo", summary[0].CategoryName)
	assert.Equal(t, 2, summary[0].AssetCount)
	assert.True(t, summary[0].TotalValue.Equal(decimal.NewFromInt(501)),
		"portátil al piso (1) + silla sin cronograma (500), got %s", summary[0].TotalValue)

	assert.Equal(t, "Muebles", summary[1].CategoryName)
	assert.Equal(t, 0, summary[1].AssetCount)
	assert.True(t, summary[1].TotalValue.IsZero())
}

func TestCategoryDetailed_ConFechaDeCorte(t *testing.T) {
	uc := setup(t)

	detail, err := uc.CategoryDetailed(context.Background(), nil, date(2022, 6, 30))
	require.NoError(t, err)
	require.NotEmpty(t, detail)

	assets := detail[0].Assets
	require.Len(t, assets, 2)
	assert.Equal(t, "Portátil", assets[0].Name)
	assert.Equal(t, "2022-01-01", assets[0].LatestEntryDate)
	assert.True(t, assets[0].CurrentValue.Equal(decimal.NewFromInt(9600)))
	assert.Equal(t, "Silla", assets[1].Name)
	assert.Empty(t, assets[1].LatestEntryDate)
	assert.True(t, assets[1].CurrentValue.Equal(decimal.NewFromInt(500)))
	assert.True(t, detail[0].TotalValue.Equal(decimal.NewFromInt(10100)))
}

// Si la última entrada hasta end es anterior a start, el activo vale su costo.
func TestCategoryDetailed_EntradaFueraDeVentana(t *testing.T) {
	uc := setup(t)

	detail, err := uc.CategoryDetailed(context.Background(), date(2022, 2, 1), date(2022, 6, 30))
	require.NoError(t, err)
	laptop := detail[0].Assets[0]
	assert.Empty(t, laptop.LatestEntryDate)
	assert.True(t, laptop.CurrentValue.Equal(decimal.NewFromInt(12000)))
}

func TestCategorySummary_VentanaInvertida(t *testing.T) {
	uc := setup(t)

	_, err := uc.CategorySummary(context.Background(), date(2023, 1, 1), date(2022, 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
