package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/depreciation"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Escalas que admiten las columnas NUMERIC del store.
const (
	moneyScale = 2
	rateScale  = 4
)

// CreateAssetInput datos de alta de un activo.
// Depreciation es opcional. Sin PurchaseDate o con PeriodLength <= 0 la política se guarda
// pero el activo queda sin cronograma.
type CreateAssetInput struct {
	CategoryID   int64
	Name         string
	Code         string
	Cost         decimal.Decimal
	PurchaseDate *time.Time
	Custodian    string
	Location     string
	Status       string
	Depreciation *entity.DepreciationPolicy
	PerformedBy  string
}

// Create da de alta un activo y, si tiene política, inserta su cronograma de depreciación
// en la misma transacción. Devuelve el activo con ID asignado y las filas del cronograma.
func (l *Ledger) Create(ctx context.Context, in CreateAssetInput) (*entity.Asset, []entity.DepreciationEntry, error) {
	name := clean(in.Name)
	if name == "" {
		return nil, nil, domain.Invalid("name", "es requerido")
	}
	if in.CategoryID <= 0 {
		return nil, nil, domain.Invalid("category_id", "es requerido")
	}
	if err := checkMoney("cost", in.Cost); err != nil {
		return nil, nil, err
	}
	policy, err := l.normalizePolicy(in.Depreciation)
	if err != nil {
		return nil, nil, err
	}
	status := clean(in.Status)
	if status == "" {
		status = entity.StatusActive
	}

	now := l.now()
	asset := &entity.Asset{
		CategoryID:   in.CategoryID,
		Name:         name,
		Code:         clean(in.Code),
		Cost:         in.Cost,
		PurchaseDate: in.PurchaseDate,
		Custodian:    clean(in.Custodian),
		Location:     clean(in.Location),
		Status:       status,
		Depreciation: policy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// El motor es puro: el cronograma se calcula antes de abrir la transacción.
	var schedule []entity.DepreciationEntry
	if asset.HasSchedule() {
		schedule, err = depreciation.GenerateSchedule(*asset.PurchaseDate, asset.Cost, policy)
		if err != nil {
			return nil, nil, err
		}
	}

	opID := l.newOpID()
	err = l.txRunner.Run(ctx, func(repos repository.LedgerRepos) error {
		category, err := repos.Categories.GetByID(ctx, in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NotFound("categoría", in.CategoryID)
		}
		if err := repos.Assets.Create(ctx, asset); err != nil {
			return err
		}
		for i := range schedule {
			schedule[i].AssetID = asset.ID
		}
		if len(schedule) > 0 {
			if err := repos.Depreciation.CreateBatch(ctx, schedule); err != nil {
				return err
			}
		}
		return repos.History.Create(ctx, &entity.AssetHistoryEntry{
			AssetID:     asset.ID,
			ActionType:  entity.ActionCreate,
			ActionDate:  now,
			PerformedBy: actorOrSystem(in.PerformedBy),
			Remarks:     fmt.Sprintf("Alta en categoría %s", category.Name),
			OperationID: opID,
		})
	})
	if err != nil {
		l.failed(err).Str("operation_id", opID).Str("name", name).Msg("alta de activo fallida")
		return nil, nil, err
	}

	l.log.Info().
		Int64("asset_id", asset.ID).
		Str("operation_id", opID).
		Int("periods", len(schedule)).
		Msg("activo creado")
	return asset, schedule, nil
}

func (l *Ledger) normalizePolicy(p *entity.DepreciationPolicy) (*entity.DepreciationPolicy, error) {
	if p == nil {
		return nil, nil
	}
	out := *p
	if out.Rate.IsNegative() {
		return nil, domain.Invalid("depreciation.rate", "no puede ser negativa")
	}
	if !hasScale(out.Rate, rateScale) {
		return nil, domain.Invalid("depreciation.rate", fmt.Sprintf("admite hasta %d decimales", rateScale))
	}
	if !out.PeriodType.Valid() {
		return nil, domain.Invalid("depreciation.period_type", "debe ser year o month")
	}
	if out.Method == "" {
		out.Method = l.defaultMethod
	}
	if !out.Method.Valid() {
		return nil, domain.Invalid("depreciation.method", "debe ser straight_line o declining_balance")
	}
	return &out, nil
}

// checkMoney valida un importe: no negativo y con a lo sumo dos decimales.
func checkMoney(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return domain.Invalid(field, "no puede ser negativo")
	}
	if !hasScale(d, moneyScale) {
		return domain.Invalid(field, fmt.Sprintf("admite hasta %d decimales", moneyScale))
	}
	return nil
}

func hasScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
