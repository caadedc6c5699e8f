package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.DisposalRepository = (*DisposalRepo)(nil)

// DisposalRepo registros de baja sobre PostgreSQL.
type DisposalRepo struct {
	q Querier
}

// NewDisposalRepository construye el adaptador.
func NewDisposalRepository(q Querier) *DisposalRepo {
	return &DisposalRepo{q: q}
}

const disposalColumns = `id, asset_id, category_id, asset_name, asset_code, disposed_at, reason,
	original_value, disposed_value, loss, operation_id`

func scanDisposal(row pgx.Row) (*entity.DisposalRecord, error) {
	var d entity.DisposalRecord
	if err := row.Scan(&d.ID, &d.AssetID, &d.CategoryID, &d.AssetName, &d.AssetCode, &d.DisposedAt, &d.Reason,
		&d.OriginalValue, &d.DisposedValue, &d.Loss, &d.OperationID); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserta la baja. disposals.asset_id es UNIQUE: una segunda baja -> domain.ErrConflict.
func (r *DisposalRepo) Create(ctx context.Context, d *entity.DisposalRecord) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO disposals (asset_id, category_id, asset_name, asset_code, disposed_at, reason,
			original_value, disposed_value, loss, operation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		d.AssetID, d.CategoryID, d.AssetName, d.AssetCode, d.DisposedAt, d.Reason,
		d.OriginalValue, d.DisposedValue, d.Loss, d.OperationID,
	).Scan(&d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("activo %d ya tiene baja registrada: %w", d.AssetID, domain.ErrConflict)
		}
		return wrap("insert disposal", err)
	}
	return nil
}

// GetByAsset baja del activo; (nil, nil) si no fue dado de baja.
func (r *DisposalRepo) GetByAsset(ctx context.Context, assetID int64) (*entity.DisposalRecord, error) {
	d, err := scanDisposal(r.q.QueryRow(ctx, `SELECT `+disposalColumns+` FROM disposals WHERE asset_id = $1`, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get disposal", err)
	}
	return d, nil
}

// List bajas de la más reciente a la más antigua.
func (r *DisposalRepo) List(ctx context.Context, limit, offset int) ([]*entity.DisposalRecord, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+disposalColumns+` FROM disposals ORDER BY disposed_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, wrap("list disposals", err)
	}
	defer rows.Close()
	var list []*entity.DisposalRecord
	for rows.Next() {
		d, err := scanDisposal(rows)
		if err != nil {
			return nil, wrap("scan disposal", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
