// Package reporting agrupa las proyecciones de solo lectura sobre el libro de activos.
package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ValuationUseCase valoración de activos por categoría.
//
// Para cada activo toma la entrada de depreciación más reciente con fecha <= end y la
// descarta si es anterior a start; sin entrada, el valor actual es el costo de compra.
type ValuationUseCase struct {
	repo repository.ReportRepository
}

// NewValuationUseCase construye el caso de uso.
func NewValuationUseCase(repo repository.ReportRepository) *ValuationUseCase {
	return &ValuationUseCase{repo: repo}
}

// CategorySummary número de activos y valor total por categoría.
func (uc *ValuationUseCase) CategorySummary(ctx context.Context, start, end *time.Time) ([]dto.CategorySummaryResponse, error) {
	detailed, err := uc.CategoryDetailed(ctx, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategorySummaryResponse, 0, len(detailed))
	for _, d := range detailed {
		out = append(out, d.CategorySummaryResponse)
	}
	return out, nil
}

// CategoryDetailed igual que CategorySummary pero con el valor de cada activo.
func (uc *ValuationUseCase) CategoryDetailed(ctx context.Context, start, end *time.Time) ([]dto.CategoryDetailResponse, error) {
	if start != nil && end != nil && start.After(*end) {
		return nil, domain.Invalid("start_date", "no puede ser posterior a end_date")
	}
	rows, err := uc.repo.CategoryValuation(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryDetailResponse, 0)
	index := make(map[int64]int)
	for _, r := range rows {
		i, ok := index[r.CategoryID]
		if !ok {
			out = append(out, dto.CategoryDetailResponse{
				CategorySummaryResponse: dto.CategorySummaryResponse{
					CategoryID:   r.CategoryID,
					CategoryName: r.CategoryName,
					TotalValue:   decimal.Zero,
				},
				Assets: []dto.AssetValuationResponse{},
			})
			i = len(out) - 1
			index[r.CategoryID] = i
		}
		if r.AssetID == 0 {
			continue
		}
		current := r.Cost
		if r.Remaining.Valid {
			current = r.Remaining.Decimal
		}
		c := &out[i]
		c.Assets = append(c.Assets, dto.AssetValuationResponse{
			AssetID:         r.AssetID,
			Name:            r.AssetName,
			Code:            r.AssetCode,
			PurchaseDate:    dto.FormatDate(r.PurchaseDate),
			Cost:            r.Cost,
			LatestEntryDate: dto.FormatDate(r.LatestDate),
			CurrentValue:    current,
		})
		c.AssetCount++
		c.TotalValue = c.TotalValue.Add(current)
	}
	return out, nil
}
