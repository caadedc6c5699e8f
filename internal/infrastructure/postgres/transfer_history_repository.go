package postgres

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.TransferHistoryRepository = (*TransferHistoryRepo)(nil)

// TransferHistoryRepo historial de traslados (solo inserción).
type TransferHistoryRepo struct {
	q Querier
}

// NewTransferHistoryRepository construye el adaptador.
func NewTransferHistoryRepository(q Querier) *TransferHistoryRepo {
	return &TransferHistoryRepo{q: q}
}

// Create agrega una fila de traslado.
func (r *TransferHistoryRepo) Create(ctx context.Context, t *entity.TransferHistoryEntry) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO transfer_history (asset_id, previous_custodian, new_custodian, previous_location,
			new_location, transferred_at, remarks, operation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		t.AssetID, t.PreviousCustodian, t.NewCustodian, t.PreviousLocation, t.NewLocation,
		t.TransferredAt, t.Remarks, t.OperationID,
	).Scan(&t.ID)
	if err != nil {
		return wrap("insert transfer history", err)
	}
	return nil
}

// ListByAsset traslados del activo en orden cronológico.
func (r *TransferHistoryRepo) ListByAsset(ctx context.Context, assetID int64) ([]*entity.TransferHistoryEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, asset_id, previous_custodian, new_custodian, previous_location, new_location,
			transferred_at, remarks, operation_id
		FROM transfer_history WHERE asset_id = $1 ORDER BY id`, assetID)
	if err != nil {
		return nil, wrap("list transfer history", err)
	}
	defer rows.Close()
	var list []*entity.TransferHistoryEntry
	for rows.Next() {
		var t entity.TransferHistoryEntry
		if err := rows.Scan(&t.ID, &t.AssetID, &t.PreviousCustodian, &t.NewCustodian, &t.PreviousLocation,
			&t.NewLocation, &t.TransferredAt, &t.Remarks, &t.OperationID); err != nil {
			return nil, wrap("scan transfer history", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
