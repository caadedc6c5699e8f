package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// DepreciationRepository persiste el cronograma proyectado. Solo inserción y lectura.
type DepreciationRepository interface {
	// CreateBatch inserta las filas en orden de periodo, todas con el mismo AssetID.
	CreateBatch(ctx context.Context, entries []entity.DepreciationEntry) error
	ListByAsset(ctx context.Context, assetID int64) ([]entity.DepreciationEntry, error)
}
