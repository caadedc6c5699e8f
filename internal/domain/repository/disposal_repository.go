package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// DisposalRepository registros de baja. Un activo solo puede tener uno (ErrConflict si se repite).
type DisposalRepository interface {
	Create(ctx context.Context, record *entity.DisposalRecord) error
	GetByAsset(ctx context.Context, assetID int64) (*entity.DisposalRecord, error)
	// List ordena por fecha de baja descendente.
	List(ctx context.Context, limit, offset int) ([]*entity.DisposalRecord, error)
}
