package dto

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// CategoryRequest body para crear o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse respuesta de categoría.
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// NewCategoryResponse convierte la entidad.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt.Format(timestampLayout)}
}
