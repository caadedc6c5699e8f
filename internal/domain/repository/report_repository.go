package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ValuationRow una fila por (categoría, activo) con la última entrada de depreciación
// dentro de la ventana. AssetID es 0 para categorías sin activos; LatestDate/Remaining
// son nil cuando no hay entrada en la ventana.
type ValuationRow struct {
	CategoryID   int64
	CategoryName string
	AssetID      int64
	AssetName    string
	AssetCode    string
	PurchaseDate *time.Time
	Cost         decimal.Decimal
	LatestDate   *time.Time
	Remaining    decimal.NullDecimal
}

// ReportRepository consultas de solo lectura para proyecciones de valoración.
type ReportRepository interface {
	// CategoryValuation toma, por activo, la entrada más reciente con fecha <= to y la
	// descarta si es anterior a from. Ambos límites son opcionales.
	CategoryValuation(ctx context.Context, from, to *time.Time) ([]ValuationRow, error)
}
