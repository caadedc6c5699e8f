package sqlite

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetHistoryRepository = (*AssetHistoryRepo)(nil)

// AssetHistoryRepo bitácora de acciones sobre SQLite.
type AssetHistoryRepo struct {
	q Querier
}

// NewAssetHistoryRepository construye el adaptador.
func NewAssetHistoryRepository(q Querier) *AssetHistoryRepo {
	return &AssetHistoryRepo{q: q}
}

// Create agrega una acción a la bitácora.
func (r *AssetHistoryRepo) Create(ctx context.Context, h *entity.AssetHistoryEntry) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO asset_history (asset_id, action_type, action_date, performed_by, remarks, operation_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		h.AssetID, h.ActionType, formatTS(h.ActionDate), h.PerformedBy, h.Remarks, h.OperationID,
	)
	if err != nil {
		return wrap("insert asset history", err)
	}
	if h.ID, err = res.LastInsertId(); err != nil {
		return wrap("insert asset history id", err)
	}
	return nil
}

// ListByAsset acciones del activo en orden cronológico.
func (r *AssetHistoryRepo) ListByAsset(ctx context.Context, assetID int64) ([]*entity.AssetHistoryEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, asset_id, action_type, action_date, performed_by, remarks, operation_id
		FROM asset_history WHERE asset_id = ? ORDER BY id`, assetID)
	if err != nil {
		return nil, wrap("list asset history", err)
	}
	defer rows.Close()
	var list []*entity.AssetHistoryEntry
	for rows.Next() {
		var h entity.AssetHistoryEntry
		var ts string
		if err := rows.Scan(&h.ID, &h.AssetID, &h.ActionType, &ts, &h.PerformedBy, &h.Remarks, &h.OperationID); err != nil {
			return nil, wrap("scan asset history", err)
		}
		if h.ActionDate, err = parseTS(ts); err != nil {
			return nil, wrap("parse action_date", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
