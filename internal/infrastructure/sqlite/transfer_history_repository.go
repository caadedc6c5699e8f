package sqlite

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.TransferHistoryRepository = (*TransferHistoryRepo)(nil)

// TransferHistoryRepo historial de traslados sobre SQLite.
type TransferHistoryRepo struct {
	q Querier
}

// NewTransferHistoryRepository construye el adaptador.
func NewTransferHistoryRepository(q Querier) *TransferHistoryRepo {
	return &TransferHistoryRepo{q: q}
}

// Create agrega una fila de traslado.
func (r *TransferHistoryRepo) Create(ctx context.Context, t *entity.TransferHistoryEntry) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO transfer_history (asset_id, previous_custodian, new_custodian, previous_location,
			new_location, transferred_at, remarks, operation_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.AssetID, t.PreviousCustodian, t.NewCustodian, t.PreviousLocation, t.NewLocation,
		formatTS(t.TransferredAt), t.Remarks, t.OperationID,
	)
	if err != nil {
		return wrap("insert transfer history", err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return wrap("insert transfer history id", err)
	}
	return nil
}

// ListByAsset traslados del activo en orden cronológico.
func (r *TransferHistoryRepo) ListByAsset(ctx context.Context, assetID int64) ([]*entity.TransferHistoryEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, asset_id, previous_custodian, new_custodian, previous_location, new_location,
			transferred_at, remarks, operation_id
		FROM transfer_history WHERE asset_id = ? ORDER BY id`, assetID)
	if err != nil {
		return nil, wrap("list transfer history", err)
	}
	defer rows.Close()
	var list []*entity.TransferHistoryEntry
	for rows.Next() {
		var t entity.TransferHistoryEntry
		var ts string
		if err := rows.Scan(&t.ID, &t.AssetID, &t.PreviousCustodian, &t.NewCustodian, &t.PreviousLocation,
			&t.NewLocation, &ts, &t.Remarks, &t.OperationID); err != nil {
			return nil, wrap("scan transfer history", err)
		}
		if t.TransferredAt, err = parseTS(ts); err != nil {
			return nil, wrap("parse transferred_at", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
