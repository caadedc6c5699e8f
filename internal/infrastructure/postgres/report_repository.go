package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/infrastructure/reportsql"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de valoración sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CategoryValuation ejecuta la consulta compartida con el dialecto postgres.
func (r *ReportRepo) CategoryValuation(ctx context.Context, from, to *time.Time) ([]repository.ValuationRow, error) {
	query, args, err := reportsql.ValuationQuery(reportsql.Postgres, dateArg(from), dateArg(to))
	if err != nil {
		return nil, wrap("build valuation query", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("category valuation", err)
	}
	defer rows.Close()

	var out []repository.ValuationRow
	for rows.Next() {
		var (
			v          repository.ValuationRow
			assetID    *int64
			name, code *string
			cost       decimal.NullDecimal
		)
		if err := rows.Scan(&v.CategoryID, &v.CategoryName, &assetID, &name, &code, &v.PurchaseDate, &cost,
			&v.LatestDate, &v.Remaining); err != nil {
			return nil, wrap("scan valuation", err)
		}
		if assetID != nil {
			v.AssetID = *assetID
		}
		if name != nil {
			v.AssetName = *name
		}
		if code != nil {
			v.AssetCode = *code
		}
		v.Cost = cost.Decimal
		out = append(out, v)
	}
	return out, rows.Err()
}
