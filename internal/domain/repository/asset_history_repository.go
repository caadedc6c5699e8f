package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssetHistoryRepository bitácora append-only de acciones sobre activos.
type AssetHistoryRepository interface {
	Create(ctx context.Context, entry *entity.AssetHistoryEntry) error
	ListByAsset(ctx context.Context, assetID int64) ([]*entity.AssetHistoryEntry, error)
}
