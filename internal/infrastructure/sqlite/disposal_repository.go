package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.DisposalRepository = (*DisposalRepo)(nil)

// DisposalRepo registros de baja sobre SQLite.
type DisposalRepo struct {
	q Querier
}

// NewDisposalRepository construye el adaptador.
func NewDisposalRepository(q Querier) *DisposalRepo {
	return &DisposalRepo{q: q}
}

const disposalColumns = `id, asset_id, category_id, asset_name, asset_code, disposed_at, reason,
	original_value, disposed_value, loss, operation_id`

func scanDisposal(s rowScanner) (*entity.DisposalRecord, error) {
	var d entity.DisposalRecord
	var ts string
	if err := s.Scan(&d.ID, &d.AssetID, &d.CategoryID, &d.AssetName, &d.AssetCode, &ts, &d.Reason,
		&d.OriginalValue, &d.DisposedValue, &d.Loss, &d.OperationID); err != nil {
		return nil, err
	}
	var err error
	if d.DisposedAt, err = parseTS(ts); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserta la baja. Un segundo registro para el mismo activo viola UNIQUE -> domain.ErrConflict.
func (r *DisposalRepo) Create(ctx context.Context, d *entity.DisposalRecord) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO disposals (asset_id, category_id, asset_name, asset_code, disposed_at, reason,
			original_value, disposed_value, loss, operation_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.AssetID, d.CategoryID, d.AssetName, d.AssetCode, formatTS(d.DisposedAt), d.Reason,
		d.OriginalValue.String(), d.DisposedValue.String(), d.Loss.String(), d.OperationID,
	)
	if err != nil {
		return wrap("insert disposal", err)
	}
	if d.ID, err = res.LastInsertId(); err != nil {
		return wrap("insert disposal id", err)
	}
	return nil
}

// GetByAsset baja del activo; (nil, nil) si no fue dado de baja.
func (r *DisposalRepo) GetByAsset(ctx context.Context, assetID int64) (*entity.DisposalRecord, error) {
	d, err := scanDisposal(r.q.QueryRowContext(ctx,
		`SELECT `+disposalColumns+` FROM disposals WHERE asset_id = ?`, assetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get disposal", err)
	}
	return d, nil
}

// List bajas de la más reciente a la más antigua.
func (r *DisposalRepo) List(ctx context.Context, limit, offset int) ([]*entity.DisposalRecord, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+disposalColumns+` FROM disposals ORDER BY disposed_at DESC, id DESC LIMIT ? OFFSET ?`,
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
