package postgres

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registra el esquema pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Direcciones de migración aceptadas por Migrate.
const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// Migrate aplica (up) o revierte (down) las migraciones embebidas contra databaseURL.
// Sin cambios pendientes no es error. Devuelve la versión resultante.
func Migrate(databaseURL, direction string, log zerolog.Logger) (uint, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("leer migraciones: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, pgx5URL(databaseURL))
	if err != nil {
		return 0, fmt.Errorf("iniciar migrate: %w", mapError(err))
	}
	defer m.Close()
	m.Log = &migrateLogger{log: log}

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return 0, fmt.Errorf("dirección de migración inválida %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migración %s: %w", direction, err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("migración: sin cambios")
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("leer versión: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("esquema en estado dirty en la versión %d", version)
	}
	log.Info().Uint("version", version).Str("direction", direction).Msg("migración aplicada")
	return version, nil
}

// pgx5URL cambia el esquema postgres:// o postgresql:// por el del driver pgx/v5 de migrate.
func pgx5URL(databaseURL string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}

// migrateLogger adapta zerolog a migrate.Logger.
type migrateLogger struct {
	log zerolog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.log.Debug().Msgf("migrate: "+strings.TrimSuffix(format, "\n"), v...)
}

func (l *migrateLogger) Verbose() bool { return false }
