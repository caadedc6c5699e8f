package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AssetRepository define el puerto de persistencia para Asset.
// GetByID y GetForUpdate devuelven (nil, nil) si el activo no existe.
type AssetRepository interface {
	// Create inserta el activo y asigna asset.ID.
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id int64) (*entity.Asset, error)
	// GetForUpdate bloquea la fila dentro de la transacción en curso (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Asset, error)
	ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Asset, error)
	// UpdateCustody y UpdateStatus fijan updated_at = at y devuelven las filas afectadas.
	UpdateCustody(ctx context.Context, id int64, custodian, location string, at time.Time) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string, at time.Time) (int64, error)
}
