package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/depreciation"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Adaptadores request HTTP -> operaciones del ledger. actor es el usuario autenticado ("" = system).

// CreateFromRequest adapta dto.CreateAssetRequest a Create.
func (l *Ledger) CreateFromRequest(ctx context.Context, actor string, in dto.CreateAssetRequest) (*dto.CreateAssetResponse, error) {
	purchase, err := ParseDate("purchase_date", in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	asset, schedule, err := l.Create(ctx, CreateAssetInput{
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Code:         in.Code,
		Cost:         in.Cost,
		PurchaseDate: purchase,
		Custodian:    in.Custodian,
		Location:     in.Location,
		Status:       in.Status,
		Depreciation: PolicyFromRequest(in.Depreciation),
		PerformedBy:  actor,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateAssetResponse{
		Asset:    dto.NewAssetResponse(asset),
		Schedule: dto.NewScheduleEntries(schedule),
	}, nil
}

// TransferFromRequest adapta dto.TransferAssetRequest a Transfer.
func (l *Ledger) TransferFromRequest(ctx context.Context, actor string, assetID int64, in dto.TransferAssetRequest) (*dto.TransferResponse, error) {
	entry, err := l.Transfer(ctx, TransferInput{
		AssetID:     assetID,
		Custodian:   in.Custodian,
		Location:    in.Location,
		Remarks:     in.Remarks,
		PerformedBy: actor,
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewTransferResponse(entry)
	return &out, nil
}

// DisposeFromRequest adapta dto.DisposeAssetRequest a Dispose.
func (l *Ledger) DisposeFromRequest(ctx context.Context, actor string, assetID int64, in dto.DisposeAssetRequest) (*dto.DisposalResponse, error) {
	record, err := l.Dispose(ctx, DisposeInput{
		AssetID:       assetID,
		CategoryID:    in.CategoryID,
		Reason:        in.Reason,
		OriginalValue: in.OriginalValue,
		DisposedValue: in.DisposedValue,
		PerformedBy:   actor,
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewDisposalResponse(record)
	return &out, nil
}

// Preview ejecuta el motor de depreciación sin persistir nada.
func (l *Ledger) Preview(in dto.SchedulePreviewRequest) (*dto.ScheduleResponse, error) {
	purchase, err := ParseDate("purchase_date", in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if err := checkMoney("cost", in.Cost); err != nil {
		return nil, err
	}
	policy, err := l.normalizePolicy(PolicyFromRequest(&in.Depreciation))
	if err != nil {
		return nil, err
	}
	// sin fecha de compra no hay ancla: cronograma vacío, igual que en Create
	var entries []entity.DepreciationEntry
	if purchase != nil {
		if entries, err = depreciation.GenerateSchedule(*purchase, in.Cost, policy); err != nil {
			return nil, err
		}
	}
	return &dto.ScheduleResponse{Entries: dto.NewScheduleEntries(entries)}, nil
}

// PolicyFromRequest convierte la política del request (nil si no viene).
func PolicyFromRequest(p *dto.DepreciationPolicyRequest) *entity.DepreciationPolicy {
	if p == nil {
		return nil
	}
	return &entity.DepreciationPolicy{
		Rate:         p.Rate,
		PeriodType:   entity.PeriodType(strings.ToLower(strings.TrimSpace(p.PeriodType))),
		PeriodLength: p.PeriodLength,
		Method:       entity.DepreciationMethod(strings.ToLower(strings.TrimSpace(p.Method))),
	}
}

// ParseDate interpreta YYYY-MM-DD; cadena vacía devuelve nil.
func ParseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil, domain.Invalid(field, "formato esperado YYYY-MM-DD")
	}
	return &t, nil
}
