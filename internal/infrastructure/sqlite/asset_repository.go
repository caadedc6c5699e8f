package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre SQLite (usable con db o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos.
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, category_id, name, code, cost, purchase_date, custodian, location, status,
	depreciation_rate, period_type, period_length, depreciation_method, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(s rowScanner) (*entity.Asset, error) {
	var (
		a                       entity.Asset
		purchase, ptype, method sql.NullString
		rate                    decimal.NullDecimal
		plen                    sql.NullInt64
		created, updated        string
	)
	if err := s.Scan(&a.ID, &a.CategoryID, &a.Name, &a.Code, &a.Cost, &purchase, &a.Custodian, &a.Location, &a.Status,
		&rate, &ptype, &plen, &method, &created, &updated); err != nil {
		return nil, err
	}
	var err error
	if a.PurchaseDate, err = parseDate(purchase); err != nil {
		return nil, fmt.Errorf("purchase_date: %w", err)
	}
	if rate.Valid {
		a.Depreciation = &entity.DepreciationPolicy{
			Rate:         rate.Decimal,
			PeriodType:   entity.PeriodType(ptype.String),
			PeriodLength: int(plen.Int64),
			Method:       entity.DepreciationMethod(method.String),
		}
	}
	if a.CreatedAt, err = parseTS(created); err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	if a.UpdatedAt, err = parseTS(updated); err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}
	return &a, nil
}

// Create inserta el activo y asigna asset.ID.
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	var rate, ptype, plen, method any
	if p := asset.Depreciation; p != nil {
		rate, ptype, plen, method = p.Rate.String(), string(p.PeriodType), p.PeriodLength, string(p.Method)
	}
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO assets (category_id, name, code, cost, purchase_date, custodian, location, status,
			depreciation_rate, period_type, period_length, depreciation_method, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		asset.CategoryID, asset.Name, asset.Code, asset.Cost.String(), formatDate(asset.PurchaseDate),
		asset.Custodian, asset.Location, asset.Status, rate, ptype, plen, method,
		formatTS(asset.CreatedAt), formatTS(asset.UpdatedAt),
	)
	if err != nil {
		return wrap("insert asset", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return wrap("insert asset id", err)
	}
	asset.ID = id
	return nil
}

// GetByID obtiene un activo por ID; (nil, nil) si no existe.
func (r *AssetRepo) GetByID(ctx context.Context, id int64) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get asset", err)
	}
	return a, nil
}

// GetForUpdate en SQLite equivale a GetByID: la transacción ya tiene el bloqueo de escritura
// desde BEGIN IMMEDIATE.
func (r *AssetRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Asset, error) {
	return r.GetByID(ctx, id)
}

// ListByCategory lista activos de una categoría ordenados por ID.
func (r *AssetRepo) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Asset, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE category_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		categoryID, limit, offset)
	if err != nil {
		return nil, wrap("list assets", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, wrap("scan asset", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// UpdateCustody actualiza custodio y ubicación; devuelve filas afectadas.
func (r *AssetRepo) UpdateCustody(ctx context.Context, id int64, custodian, location string, at time.Time) (int64, error) {
	return r.exec(ctx, "update asset custody",
		`UPDATE assets SET custodian = ?, location = ?, updated_at = ? WHERE id = ?`,
		custodian, location, formatTS(at), id)
}

// UpdateStatus actualiza el estado; devuelve filas afectadas.
func (r *AssetRepo) UpdateStatus(ctx context.Context, id int64, status string, at time.Time) (int64, error) {
	return r.exec(ctx, "update asset status",
		`UPDATE assets SET status = ?, updated_at = ? WHERE id = ?`,
		status, formatTS(at), id)
}

func (r *AssetRepo) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrap(op, err)
	}
	return n, nil
}
