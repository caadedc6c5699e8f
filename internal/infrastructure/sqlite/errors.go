package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/jhoicas/Activos-api/internal/domain"
)

// mapError traduce errores del driver a la taxonomía del dominio conservando el original.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint, sqlite3.ErrBusy, sqlite3.ErrLocked:
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		case sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrCorrupt, sqlite3.ErrNotADB, sqlite3.ErrFull, sqlite3.ErrReadonly:
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
	}
	return err
}

// wrap añade contexto de la operación y mapea el error del driver.
func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, mapError(err))
}
