package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría; nombre repetido -> domain.ErrConflict.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO asset_categories (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("categoría %q ya existe: %w", c.Name, domain.ErrConflict)
		}
		return wrap("insert category", err)
	}
	return nil
}

// GetByID obtiene una categoría; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM asset_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get category", err)
	}
	return &c, nil
}

// List devuelve todas las categorías por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at, updated_at FROM asset_categories ORDER BY name`)
	if err != nil {
		return nil, wrap("list categories", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, wrap("scan category", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Rename cambia el nombre; devuelve filas afectadas.
func (r *CategoryRepo) Rename(ctx context.Context, id int64, name string) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE asset_categories SET name = $2, updated_at = $3 WHERE id = $1`, id, name, nowUTC())
	if err != nil {
		return 0, wrap("rename category", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina la categoría; devuelve filas afectadas.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM asset_categories WHERE id = $1`, id)
	if err != nil {
		return 0, wrap("delete category", err)
	}
	return cmd.RowsAffected(), nil
}

// CountAssets número de activos que referencian la categoría.
func (r *CategoryRepo) CountAssets(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM assets WHERE category_id = $1`, id).Scan(&n); err != nil {
		return 0, wrap("count category assets", err)
	}
	return n, nil
}
