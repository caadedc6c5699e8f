package sqlite

import (
	"context"
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.DepreciationRepository = (*DepreciationRepo)(nil)

// DepreciationRepo cronogramas de depreciación sobre SQLite.
type DepreciationRepo struct {
	q Querier
}

// NewDepreciationRepository construye el adaptador.
func NewDepreciationRepository(q Querier) *DepreciationRepo {
	return &DepreciationRepo{q: q}
}

// CreateBatch inserta las filas en orden de periodo y asigna sus IDs.
// Debe llamarse dentro de una transacción para que el cronograma quede completo o no quede.
func (r *DepreciationRepo) CreateBatch(ctx context.Context, entries []entity.DepreciationEntry) error {
	for i := range entries {
		e := &entries[i]
		res, err := r.q.ExecContext(ctx, `
			INSERT INTO depreciation_entries (asset_id, period, period_date, amount, remaining_value,
				rate, period_type, period_length, method)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.AssetID, e.Period, e.PeriodDate.Format(dateLayout), e.Amount.String(), e.RemainingValue.String(),
			e.Rate.String(), string(e.PeriodType), e.PeriodLength, string(e.Method),
		)
		if err != nil {
			return wrap("insert depreciation entry", err)
		}
		if e.ID, err = res.LastInsertId(); err != nil {
			return wrap("insert depreciation entry id", err)
		}
	}
	return nil
}

// ListByAsset cronograma del activo ordenado por periodo.
func (r *DepreciationRepo) ListByAsset(ctx context.Context, assetID int64) ([]entity.DepreciationEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, asset_id, period, period_date, amount, remaining_value, rate, period_type, period_length, method
		FROM depreciation_entries WHERE asset_id = ? ORDER BY period`, assetID)
	if err != nil {
		return nil, wrap("list depreciation", err)
	}
	defer rows.Close()
	var list []entity.DepreciationEntry
	for rows.Next() {
		var (
			e             entity.DepreciationEntry
			date          string
			ptype, method string
		)
		if err := rows.Scan(&e.ID, &e.AssetID, &e.Period, &date, &e.Amount, &e.RemainingValue,
			&e.Rate, &ptype, &e.PeriodLength, &method); err != nil {
			return nil, wrap("scan depreciation", err)
		}
		if e.PeriodDate, err = time.Parse(dateLayout, date); err != nil {
			return nil, wrap("parse period_date", err)
		}
		e.PeriodType = entity.PeriodType(ptype)
		e.Method = entity.DepreciationMethod(method)
		list = append(list, e)
	}
	return list, rows.Err()
}
