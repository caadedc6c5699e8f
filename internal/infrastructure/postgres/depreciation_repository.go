package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.DepreciationRepository = (*DepreciationRepo)(nil)

// DepreciationRepo filas del cronograma de depreciación.
type DepreciationRepo struct {
	q Querier
}

// NewDepreciationRepository construye el adaptador.
func NewDepreciationRepository(q Querier) *DepreciationRepo {
	return &DepreciationRepo{q: q}
}

// CreateBatch envía todas las filas en un solo pgx.Batch y asigna sus IDs.
// Debe llamarse dentro de una transacción para que el cronograma quede completo o no quede.
func (r *DepreciationRepo) CreateBatch(ctx context.Context, entries []entity.DepreciationEntry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i := range entries {
		e := &entries[i]
		batch.Queue(`
			INSERT INTO depreciation_entries (asset_id, period, period_date, amount, remaining_value,
				rate, period_type, period_length, method)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
			e.AssetID, e.Period, e.PeriodDate, e.Amount, e.RemainingValue,
			e.Rate, string(e.PeriodType), e.PeriodLength, string(e.Method),
		)
	}
	br := r.q.SendBatch(ctx, batch)
	for i := range entries {
		if err := br.QueryRow().Scan(&entries[i].ID); err != nil {
			_ = br.Close()
			return wrap("insert depreciation entry", err)
		}
	}
	if err := br.Close(); err != nil {
		return wrap("close depreciation batch", err)
	}
	return nil
}

// ListByAsset cronograma del activo ordenado por periodo.
func (r *DepreciationRepo) ListByAsset(ctx context.Context, assetID int64) ([]entity.DepreciationEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, asset_id, period, period_date, amount, remaining_value, rate, period_type, period_length, method
		FROM depreciation_entries WHERE asset_id = $1 ORDER BY period`, assetID)
	if err != nil {
		return nil, wrap("list depreciation", err)
	}
	defer rows.Close()
	var list []entity.DepreciationEntry
	for rows.Next() {
		var e entity.DepreciationEntry
		var ptype, method string
		if err := rows.Scan(&e.ID, &e.AssetID, &e.Period, &e.PeriodDate, &e.Amount, &e.RemainingValue,
			&e.Rate, &ptype, &e.PeriodLength, &method); err != nil {
			return nil, wrap("scan depreciation", err)
		}
		e.PeriodType = entity.PeriodType(ptype)
		e.Method = entity.DepreciationMethod(method)
		list = append(list, e)
	}
	return list, rows.Err()
}
