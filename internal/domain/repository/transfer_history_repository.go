package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// TransferHistoryRepository historial append-only de traslados.
type TransferHistoryRepository interface {
	Create(ctx context.Context, entry *entity.TransferHistoryEntry) error
	ListByAsset(ctx context.Context, assetID int64) ([]*entity.TransferHistoryEntry, error)
}
