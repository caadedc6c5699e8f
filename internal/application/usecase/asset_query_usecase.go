package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AssetQueryUseCase lecturas sobre activos: ficha, listado por categoría, cronograma e historiales.
type AssetQueryUseCase struct {
	assets    repository.AssetRepository
	schedule  repository.DepreciationRepository
	transfers repository.TransferHistoryRepository
	history   repository.AssetHistoryRepository
}

// NewAssetQueryUseCase construye el caso de uso.
func NewAssetQueryUseCase(
	assets repository.AssetRepository,
	schedule repository.DepreciationRepository,
	transfers repository.TransferHistoryRepository,
	history repository.AssetHistoryRepository,
) *AssetQueryUseCase {
	return &AssetQueryUseCase{assets: assets, schedule: schedule, transfers: transfers, history: history}
}

// GetByID obtiene un activo. domain.ErrNotFound si no existe.
func (uc *AssetQueryUseCase) GetByID(ctx context.Context, id int64) (*dto.AssetResponse, error) {
	asset, err := uc.assets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.NotFound("activo", id)
	}
	out := dto.NewAssetResponse(asset)
	return &out, nil
}

// ListByCategory lista activos de una categoría con paginación.
func (uc *AssetQueryUseCase) ListByCategory(ctx context.Context, categoryID int64, page dto.PageRequest) (*dto.AssetListResponse, error) {
	if categoryID <= 0 {
		return nil, domain.Invalid("category_id", "es requerido")
	}
	page.DefaultPage()
	list, err := uc.assets.ListByCategory(ctx, categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.NewAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Schedule devuelve el cronograma del activo ordenado por periodo.
// domain.ErrNotFound si el activo no existe o no tiene cronograma.
func (uc *AssetQueryUseCase) Schedule(ctx context.Context, assetID int64) (*dto.ScheduleResponse, error) {
	entries, err := uc.schedule.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("cronograma del activo %d: %w", assetID, domain.ErrNotFound)
	}
	return &dto.ScheduleResponse{AssetID: assetID, Entries: dto.NewScheduleEntries(entries)}, nil
}

// Transfers historial de traslados del activo, del más antiguo al más reciente.
func (uc *AssetQueryUseCase) Transfers(ctx context.Context, assetID int64) ([]dto.TransferResponse, error) {
	if err := uc.ensureExists(ctx, assetID); err != nil {
		return nil, err
	}
	list, err := uc.transfers.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.NewTransferResponse(t))
	}
	return out, nil
}

// History bitácora completa del activo.
func (uc *AssetQueryUseCase) History(ctx context.Context, assetID int64) ([]dto.AssetHistoryResponse, error) {
	if err := uc.ensureExists(ctx, assetID); err != nil {
		return nil, err
	}
	list, err := uc.history.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, dto.NewAssetHistoryResponse(h))
	}
	return out, nil
}

func (uc *AssetQueryUseCase) ensureExists(ctx context.Context, assetID int64) error {
	asset, err := uc.assets.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.NotFound("activo", assetID)
	}
	return nil
}
