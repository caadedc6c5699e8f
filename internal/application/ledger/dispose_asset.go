package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// DisposeInput datos de baja. OriginalValue nil toma el costo registrado del activo.
type DisposeInput struct {
	AssetID       int64
	CategoryID    int64
	Reason        string
	OriginalValue *decimal.Decimal
	DisposedValue decimal.Decimal
	PerformedBy   string
}

// Dispose registra la baja: inserta el DisposalRecord, fija el estado del activo al motivo,
// genera la notificación de prioridad alta y la fila de historial, todo en una transacción.
func (l *Ledger) Dispose(ctx context.Context, in DisposeInput) (*entity.DisposalRecord, error) {
	if in.AssetID <= 0 {
		return nil, domain.Invalid("asset_id", "debe ser mayor que 0")
	}
	if in.CategoryID <= 0 {
		return nil, domain.Invalid("category_id", "debe ser mayor que 0")
	}
	reason := clean(in.Reason)
	if reason == "" {
		return nil, domain.Invalid("reason", "es requerido")
	}
	if err := checkMoney("disposed_value", in.DisposedValue); err != nil {
		return nil, err
	}
	if in.OriginalValue != nil {
		if err := checkMoney("original_value", *in.OriginalValue); err != nil {
			return nil, err
		}
	}

	now := l.now()
	opID := l.newOpID()
	var record *entity.DisposalRecord

	err := l.txRunner.Run(ctx, func(repos repository.LedgerRepos) error {
		asset, err := repos.Assets.GetForUpdate(ctx, in.AssetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.NotFound("activo", in.AssetID)
		}
		if asset.CategoryID != in.CategoryID {
			return domain.Invalid("category_id", fmt.Sprintf("el activo %d pertenece a la categoría %d", asset.ID, asset.CategoryID))
		}
		existing, err := repos.Disposals.GetByAsset(ctx, asset.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("activo %d ya fue dado de baja el %s: %w",
				asset.ID, existing.DisposedAt.Format("2006-01-02"), domain.ErrConflict)
		}

		original := asset.Cost
		if in.OriginalValue != nil {
			original = *in.OriginalValue
		}
		record = &entity.DisposalRecord{
			AssetID:       asset.ID,
			CategoryID:    asset.CategoryID,
			AssetName:     asset.Name,
			AssetCode:     asset.Code,
			DisposedAt:    now,
			Reason:        reason,
			OriginalValue: original,
			DisposedValue: in.DisposedValue,
			Loss:          original.Sub(in.DisposedValue),
			OperationID:   opID,
		}
		if err := repos.Disposals.Create(ctx, record); err != nil {
			return err
		}
		if _, err := repos.Assets.UpdateStatus(ctx, asset.ID, reason, now); err != nil {
			return err
		}
		if err := repos.Notifications.Create(ctx, &entity.Notification{
			Type:       entity.NotificationDisposal,
			AssetID:    asset.ID,
			AssetName:  asset.Name,
			AssetCode:  asset.Code,
			CategoryID: asset.CategoryID,
			Message:    fmt.Sprintf("El activo %s fue dado de baja por: %s.", asset.Code, reason),
			CreatedAt:  now,
			Priority:   entity.PriorityHigh,
		}); err != nil {
			return err
		}
		return repos.History.Create(ctx, &entity.AssetHistoryEntry{
			AssetID:     asset.ID,
			ActionType:  entity.ActionDisposal,
			ActionDate:  now,
			PerformedBy: actorOrSystem(in.PerformedBy),
			Remarks:     fmt.Sprintf("Baja: %s. Pérdida %s", reason, record.Loss.StringFixed(2)),
			OperationID: opID,
		})
	})
	if err != nil {
		l.failed(err).Int64("asset_id", in.AssetID).Str("operation_id", opID).Msg("baja no aplicada")
		return nil, err
	}

	l.log.Info().
		Int64("asset_id", in.AssetID).
		Str("operation_id", opID).
		Str("reason", reason).
		Str("loss", record.Loss.String()).
		Msg("activo dado de baja")
	return record, nil
}
