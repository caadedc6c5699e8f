package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TransferInput nuevo custodio y ubicación de un activo.
type TransferInput struct {
	AssetID     int64
	Custodian   string
	Location    string
	Remarks     string
	PerformedBy string
}

// Transfer reasigna custodio y ubicación. Con ambos valores iguales a los actuales
// devuelve domain.ErrNoOp sin escribir nada. Bloquea la fila del activo mientras
// compara y escribe, de modo que dos traslados concurrentes se serializan.
func (l *Ledger) Transfer(ctx context.Context, in TransferInput) (*entity.TransferHistoryEntry, error) {
	if in.AssetID <= 0 {
		return nil, domain.Invalid("asset_id", "debe ser mayor que 0")
	}
	custodian := clean(in.Custodian)
	location := clean(in.Location)
	if custodian == "" {
		return nil, domain.Invalid("custodian", "es requerido")
	}
	if location == "" {
		return nil, domain.Invalid("location", "es requerida")
	}

	now := l.now()
	opID := l.newOpID()
	var entry *entity.TransferHistoryEntry

	err := l.txRunner.Run(ctx, func(repos repository.LedgerRepos) error {
		asset, err := repos.Assets.GetForUpdate(ctx, in.AssetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.NotFound("activo", in.AssetID)
		}
		if asset.Custodian == custodian && asset.Location == location {
			return fmt.Errorf("activo %d ya está asignado a %s en %s: %w", asset.ID, custodian, location, domain.ErrNoOp)
		}

		n, err := repos.Assets.UpdateCustody(ctx, asset.ID, custodian, location, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.NotFound("activo", asset.ID)
		}

		entry = &entity.TransferHistoryEntry{
			AssetID:           asset.ID,
			PreviousCustodian: orUnknown(asset.Custodian),
			NewCustodian:      custodian,
			PreviousLocation:  orUnknown(asset.Location),
			NewLocation:       location,
			TransferredAt:     now,
			Remarks:           clean(in.Remarks),
			OperationID:       opID,
		}
		if err := repos.Transfers.Create(ctx, entry); err != nil {
			return err
		}

		remarks := entry.Remarks
		if remarks == "" {
			remarks = fmt.Sprintf("Traslado de %s (%s) a %s (%s)",
				entry.PreviousCustodian, entry.PreviousLocation, custodian, location)
		}
		return repos.History.Create(ctx, &entity.AssetHistoryEntry{
			AssetID:     asset.ID,
			ActionType:  entity.ActionTransfer,
			ActionDate:  now,
			PerformedBy: actorOrSystem(in.PerformedBy),
			Remarks:     remarks,
			OperationID: opID,
		})
	})
	if err != nil {
		l.failed(err).Int64("asset_id", in.AssetID).Str("operation_id", opID).Msg("traslado no aplicado")
		return nil, err
	}

	l.log.Info().
		Int64("asset_id", in.AssetID).
		Str("operation_id", opID).
		Str("custodian", custodian).
		Str("location", location).
		Msg("activo trasladado")
	return entry, nil
}
