package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// Querier lo cumplen *sql.DB y *sql.Tx: los repositorios sirven dentro y fuera de una transacción.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Fechas y marcas de tiempo se guardan como TEXT: fechas YYYY-MM-DD (ordenan
// lexicográficamente) y marcas RFC3339 en UTC.
const (
	dateLayout = "2006-01-02"
	tsLayout   = time.RFC3339Nano
)

func formatTS(t time.Time) string { return t.UTC().Format(tsLayout) }

func parseTS(s string) (time.Time, error) { return time.Parse(tsLayout, s) }

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func parseDate(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var nowUTC = func() time.Time { return time.Now().UTC() }
