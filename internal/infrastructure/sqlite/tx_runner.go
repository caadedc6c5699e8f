package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/application/ledger"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{db: s.db}
}

// Run inicia una transacción (BEGIN IMMEDIATE), ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.LedgerRepos) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapError(err))
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(Repos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", mapError(err))
	}
	return nil
}

// Repos construye el conjunto de repositorios sobre q (store o tx).
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
