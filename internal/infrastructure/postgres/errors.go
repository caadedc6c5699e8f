package postgres

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Activos-api/internal/domain"
)

// mapError traduce errores de pgx a la taxonomía del dominio conservando el original.
//
//	23xxx (integridad), 40001 (serialización), 40P01 (deadlock), 55P03 (lock) -> ErrConflict
//	08xxx, 57P0x, 53300 y fallos de red                                       -> ErrStoreUnavailable
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"),
			pgErr.Code == "40001", pgErr.Code == "40P01", pgErr.Code == "55P03":
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"), pgErr.Code == "53300":
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		return err
	}
	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}

// wrap añade contexto de la operación y mapea el error del driver.
func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, mapError(err))
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
