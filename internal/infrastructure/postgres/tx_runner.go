package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Activos-api/internal/application/ledger"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Las operaciones del ledger bloquean la fila del activo con SELECT ... FOR UPDATE
// (AssetRepository.GetForUpdate), así que READ COMMITTED basta.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.LedgerRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapError(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(Repos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapError(err))
	}
	return nil
}

// Repos construye el conjunto de repositorios sobre q (pool o tx).
func Repos(q Querier) repository.LedgerRepos {
	return repository.LedgerRepos{
		Assets:        NewAssetRepository(q),
		Categories:    NewCategoryRepository(q),
		Depreciation:  NewDepreciationRepository(q),
		Transfers:     NewTransferHistoryRepository(q),
		Disposals:     NewDisposalRepository(q),
		Notifications: NewNotificationRepository(q),
		History:       NewAssetHistoryRepository(q),
	}
}
