package ledger

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit. Garantiza atomicidad de cada operación del ledger.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.LedgerRepos) error) error
}
