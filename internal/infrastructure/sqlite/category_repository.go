package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(s rowScanner) (*entity.Category, error) {
	var c entity.Category
	var created, updated string
	if err := s.Scan(&c.ID, &c.Name, &created, &updated); err != nil {
		return nil, err
	}
	var err error
	if c.CreatedAt, err = parseTS(created); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTS(updated); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta la categoría; nombre repetido -> domain.ErrConflict.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO asset_categories (name, created_at, updated_at) VALUES (?, ?, ?)`,
		c.Name, formatTS(c.CreatedAt), formatTS(c.UpdatedAt))
	if err != nil {
		return wrap("insert category", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return wrap("insert category id", err)
	}
	return nil
}

// GetByID obtiene una categoría; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM asset_categories WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get category", err)
	}
	return c, nil
}

// List devuelve todas las categorías por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM asset_categories ORDER BY name`)
	if err != nil {
		return nil, wrap("list categories", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, wrap("scan category", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Rename cambia el nombre; devuelve filas afectadas.
func (r *CategoryRepo) Rename(ctx context.Context, id int64, name string) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE asset_categories SET name = ?, updated_at = ? WHERE id = ?`, name, formatTS(nowUTC()), id)
	if err != nil {
		return 0, wrap("rename category", err)
	}
	return res.RowsAffected()
}

// Delete elimina la categoría; devuelve filas afectadas.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM asset_categories WHERE id = ?`, id)
	if err != nil {
		return 0, wrap("delete category", err)
	}
	return res.RowsAffected()
}

// CountAssets número de activos que referencian la categoría.
func (r *CategoryRepo) CountAssets(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets WHERE category_id = ?`, id).Scan(&n); err != nil {
		return 0, wrap("count category assets", err)
	}
	return n, nil
}
