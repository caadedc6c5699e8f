package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	// Rename devuelve las filas afectadas (0 = no existe).
	Rename(ctx context.Context, id int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	CountAssets(ctx context.Context, id int64) (int64, error)
}
