package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/infrastructure/reportsql"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de valoración sobre SQLite.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CategoryValuation ejecuta la consulta compartida con el dialecto sqlite3.
func (r *ReportRepo) CategoryValuation(ctx context.Context, from, to *time.Time) ([]repository.ValuationRow, error) {
	query, args, err := reportsql.ValuationQuery(reportsql.SQLite, dateArg(from), dateArg(to))
	if err != nil {
		return nil, wrap("build valuation query", err)
	}
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("category valuation", err)
	}
	defer rows.Close()

	var out []repository.ValuationRow
	for rows.Next() {
		var (
			v                            repository.ValuationRow
			assetID                      sql.NullInt64
			name, code, purchase, latest sql.NullString
			cost                         decimal.NullDecimal
		)
		if err := rows.Scan(&v.CategoryID, &v.CategoryName, &assetID, &name, &code, &purchase, &cost,
			&latest, &v.Remaining); err != nil {
			return nil, wrap("scan valuation", err)
		}
		v.AssetID = assetID.Int64
		v.AssetName = name.String
		v.AssetCode = code.String
		v.Cost = cost.Decimal
		if v.PurchaseDate, err = parseDate(purchase); err != nil {
			return nil, wrap("parse purchase_date", err)
		}
		if v.LatestDate, err = parseDate(latest); err != nil {
			return nil, wrap("parse period_date", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// dateArg evita pasar un string vacío tipado como valor no nulo.
func dateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}
