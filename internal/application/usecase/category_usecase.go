package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de activos.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func categoryName(s string) (string, error) {
	name := norm.NFC.String(strings.TrimSpace(s))
	if name == "" {
		return "", domain.Invalid("name", "es requerido")
	}
	return name, nil
}

// Create crea una categoría. Nombre duplicado -> domain.ErrConflict (desde el repositorio).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name, err := categoryName(in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Category{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCategoryResponse(c))
	}
	return out, nil
}

// Rename cambia el nombre de una categoría.
func (uc *CategoryUseCase) Rename(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name, err := categoryName(in.Name)
	if err != nil {
		return nil, err
	}
	n, err := uc.repo.Rename(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.NotFound("categoría", id)
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("categoría", id)
	}
	out := dto.NewCategoryResponse(c)
	return &out, nil
}

// Delete elimina una categoría sin activos. Con activos asociados devuelve domain.ErrConflict.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	count, err := uc.repo.CountAssets(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("categoría %d tiene %d activos: %w", id, count, domain.ErrConflict)
	}
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFound("categoría", id)
	}
	return nil
}
