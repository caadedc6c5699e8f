// Package reportsql construye las consultas de reportes con goqu para que PostgreSQL y
// SQLite compartan la misma definición y solo cambie el dialecto.
package reportsql

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registra el dialecto "postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // registra el dialecto "sqlite3"
)

// Dialectos soportados.
const (
	Postgres = "postgres"
	SQLite   = "sqlite3"
)

// ValuationQuery devuelve SQL preparado y argumentos para la valoración por categoría.
//
// Columnas: c.id, c.name, a.id, a.name, a.code, a.purchase_date, a.cost,
// r.period_date, r.remaining_value. Las columnas de activo y de entrada pueden ser NULL
// (LEFT JOIN). from/to nil desactivan el límite correspondiente; deben venir ya en el
// tipo que el driver compara contra period_date.
func ValuationQuery(dialect string, from, to any) (string, []any, error) {
	d := goqu.Dialect(dialect)

	latest := d.From("depreciation_entries").
		Select(goqu.C("asset_id"), goqu.MAX("period_date").As("max_date")).
		GroupBy(goqu.C("asset_id"))
	if to != nil {
		latest = latest.Where(goqu.C("period_date").Lte(to))
	}

	relevant := d.From(goqu.T("depreciation_entries").As("d")).
		Join(latest.As("l"), goqu.On(
			goqu.I("d.asset_id").Eq(goqu.I("l.asset_id")),
			goqu.I("d.period_date").Eq(goqu.I("l.max_date")),
		)).
		Select(goqu.I("d.asset_id"), goqu.I("d.period_date"), goqu.I("d.remaining_value"))
	if from != nil {
		relevant = relevant.Where(goqu.I("d.period_date").Gte(from))
	}

	return d.From(goqu.T("asset_categories").As("c")).
		LeftJoin(goqu.T("assets").As("a"), goqu.On(goqu.I("a.category_id").Eq(goqu.I("c.id")))).
		LeftJoin(relevant.As("r"), goqu.On(goqu.I("r.asset_id").Eq(goqu.I("a.id")))).
		Select(
			goqu.I("c.id"), goqu.I("c.name"),
			goqu.I("a.id"), goqu.I("a.name"), goqu.I("a.code"), goqu.I("a.purchase_date"), goqu.I("a.cost"),
			goqu.I("r.period_date"), goqu.I("r.remaining_value"),
		).
		Order(goqu.I("c.name").Asc(), goqu.I("a.name").Asc(), goqu.I("a.id").Asc()).
		Prepared(true).
		ToSQL()
}
