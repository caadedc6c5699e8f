package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// UpdateStatus sobrescribe el estado (texto libre, sin transiciones restringidas).
// Por defecto es una sola sentencia sin fila de auditoría; con WithStatusAudit(true)
// corre en transacción y registra la acción en asset_history.
func (l *Ledger) UpdateStatus(ctx context.Context, assetID int64, status, performedBy string) error {
	if assetID <= 0 {
		return domain.Invalid("asset_id", "debe ser mayor que 0")
	}
	status = clean(status)
	if status == "" {
		return domain.Invalid("status", "es requerido")
	}

	now := l.now()
	if !l.auditStatus {
		n, err := l.assetRepo.UpdateStatus(ctx, assetID, status, now)
		if err != nil {
			l.failed(err).Int64("asset_id", assetID).Msg("estado no actualizado")
			return err
		}
		if n == 0 {
			return domain.NotFound("activo", assetID)
		}
		l.log.Info().Int64("asset_id", assetID).Str("status", status).Msg("estado actualizado")
		return nil
	}

	opID := l.newOpID()
	err := l.txRunner.Run(ctx, func(repos repository.LedgerRepos) error {
		n, err := repos.Assets.UpdateStatus(ctx, assetID, status, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.NotFound("activo", assetID)
		}
		return repos.History.Create(ctx, &entity.AssetHistoryEntry{
			AssetID:     assetID,
			ActionType:  entity.ActionStatusChange,
			ActionDate:  now,
			PerformedBy: actorOrSystem(performedBy),
			Remarks:     fmt.Sprintf("Estado: %s", status),
			OperationID: opID,
		})
	})
	if err != nil {
		l.failed(err).Int64("asset_id", assetID).Str("operation_id", opID).Msg("estado no actualizado")
		return err
	}
	l.log.Info().Int64("asset_id", assetID).Str("status", status).Str("operation_id", opID).Msg("estado actualizado")
	return nil
}
