package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL. Pasar pool o tx (Querier).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos.
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, category_id, name, code, cost, purchase_date, custodian, location, status,
	depreciation_rate, period_type, period_length, depreciation_method, created_at, updated_at`

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var (
		a             entity.Asset
		rate          decimal.NullDecimal
		ptype, method *string
		plen          *int
	)
	if err := row.Scan(&a.ID, &a.CategoryID, &a.Name, &a.Code, &a.Cost, &a.PurchaseDate, &a.Custodian,
		&a.Location, &a.Status, &rate, &ptype, &plen, &method, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if rate.Valid && ptype != nil && plen != nil {
		a.Depreciation = &entity.DepreciationPolicy{
			Rate:         rate.Decimal,
			PeriodType:   entity.PeriodType(*ptype),
			PeriodLength: *plen,
		}
		if method != nil {
			a.Depreciation.Method = entity.DepreciationMethod(*method)
		}
	}
	return &a, nil
}

// Create inserta el activo y asigna asset.ID.
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	var (
		rate          decimal.NullDecimal
		ptype, method *string
		plen          *int
	)
	if p := asset.Depreciation; p != nil {
		pt, m, l := string(p.PeriodType), string(p.Method), p.PeriodLength
		rate = decimal.NewNullDecimal(p.Rate)
		ptype, method, plen = &pt, &m, &l
	}
	query := `
		INSERT INTO assets (category_id, name, code, cost, purchase_date, custodian, location, status,
			depreciation_rate, period_type, period_length, depreciation_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		asset.CategoryID, asset.Name, asset.Code, asset.Cost, dateArg(asset.PurchaseDate),
		asset.Custodian, asset.Location, asset.Status, rate, ptype, plen, method,
		asset.CreatedAt, asset.UpdatedAt,
	).Scan(&asset.ID)
	if err != nil {
		return wrap("insert asset", err)
	}
	return nil
}

// GetByID obtiene un activo por ID; (nil, nil) si no existe.
func (r *AssetRepo) GetByID(ctx context.Context, id int64) (*entity.Asset, error) {
	return r.get(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
}

// GetForUpdate como GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *AssetRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Asset, error) {
	return r.get(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1 FOR UPDATE`, id)
}

func (r *AssetRepo) get(ctx context.Context, query string, id int64) (*entity.Asset, error) {
	a, err := scanAsset(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap("get asset", err)
	}
	return a, nil
}

// ListByCategory lista activos de una categoría ordenados por ID.
func (r *AssetRepo) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Asset, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE category_id = $1 ORDER BY id LIMIT $2 OFFSET $3`,
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
	cmd, err := r.q.Exec(ctx,
		`UPDATE assets SET custodian = $2, location = $3, updated_at = $4 WHERE id = $1`,
		id, custodian, location, at.UTC())
	if err != nil {
		return 0, wrap("update asset custody", err)
	}
	return cmd.RowsAffected(), nil
}

// UpdateStatus actualiza el estado; devuelve filas afectadas.
func (r *AssetRepo) UpdateStatus(ctx context.Context, id int64, status string, at time.Time) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE assets SET status = $2, updated_at = $3 WHERE id = $1`, id, status, at.UTC())
	if err != nil {
		return 0, wrap("update asset status", err)
	}
	return cmd.RowsAffected(), nil
}
