// Package storage elige el adaptador de persistencia según STORE_DRIVER y expone
// los puertos que consumen el ledger, las consultas y los reportes.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Activos-api/internal/application/ledger"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Activos-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Activos-api/pkg/config"
)

// Backend repositorios fuera de transacción, runner transaccional y ciclo de vida del almacén.
type Backend struct {
	Driver  string
	Repos   repository.LedgerRepos
	Reports repository.ReportRepository
	Tx      ledger.TxRunner

	ping  func(ctx context.Context) error
	close func()
}

// Ping verifica que el almacén responda.
func (b *Backend) Ping(ctx context.Context) error { return b.ping(ctx) }

// Close libera conexiones.
func (b *Backend) Close() { b.close() }

// Open abre el almacén configurado. En postgres aplica las migraciones si
// DB_MIGRATE_ON_START está activo; en sqlite el esquema se aplica al abrir.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Store.SQLitePath).Msg("almacén sqlite abierto")
		return &Backend{
			Driver:  config.DriverSQLite,
			Repos:   sqlite.Repos(store.DB()),
			Reports: sqlite.NewReportRepository(store.DB()),
			Tx:      sqlite.NewTxRunner(store),
			ping:    store.Ping,
			close:   func() { _ = store.Close() },
		}, nil

	case config.DriverPostgres:
		if cfg.DB.MigrateOnStart {
			if _, err := postgres.Migrate(cfg.DB.ConnectionString(), postgres.MigrateUp, log); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		log.Info().Str("host", cfg.DB.Host).Str("db", cfg.DB.DBName).Msg("pool postgres listo")
		return &Backend{
			Driver:  config.DriverPostgres,
			Repos:   postgres.Repos(pool),
			Reports: postgres.NewReportRepository(pool),
			Tx:      postgres.NewTxRunner(pool),
			ping:    func(ctx context.Context) error { return postgres.Ping(ctx, pool) },
			close:   pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Store.Driver)
	}
}
