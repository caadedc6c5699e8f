package reporting

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// SchedulePDFGenerator puerto de salida para la representación PDF del cronograma.
type SchedulePDFGenerator interface {
	GenerateSchedulePDF(ctx context.Context, asset *entity.Asset, category *entity.Category, entries []entity.DepreciationEntry) ([]byte, error)
}

// SchedulePDFUseCase genera el PDF del cronograma de depreciación de un activo.
type SchedulePDFUseCase struct {
	assets     repository.AssetRepository
	categories repository.CategoryRepository
	schedule   repository.DepreciationRepository
	generator  SchedulePDFGenerator
}

// NewSchedulePDFUseCase construye el caso de uso.
func NewSchedulePDFUseCase(
	assets repository.AssetRepository,
	categories repository.CategoryRepository,
	schedule repository.DepreciationRepository,
	generator SchedulePDFGenerator,
) *SchedulePDFUseCase {
	return &SchedulePDFUseCase{assets: assets, categories: categories, schedule: schedule, generator: generator}
}

// Download devuelve (pdfBytes, filename). domain.ErrNotFound si el activo no existe
// o no tiene cronograma.
func (uc *SchedulePDFUseCase) Download(ctx context.Context, assetID int64) ([]byte, string, error) {
	asset, err := uc.assets.GetByID(ctx, assetID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener activo: %w", err)
	}
	if asset == nil {
		return nil, "", domain.NotFound("activo", assetID)
	}
	entries, err := uc.schedule.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cronograma: %w", err)
	}
	if len(entries) == 0 {
		return nil, "", fmt.Errorf("cronograma del activo %d: %w", assetID, domain.ErrNotFound)
	}
	category, err := uc.categories.GetByID(ctx, asset.CategoryID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener categoría: %w", err)
	}
	if category == nil {
		category = &entity.Category{ID: asset.CategoryID}
	}

	pdf, err := uc.generator.GenerateSchedulePDF(ctx, asset, category, entries)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("depreciacion-%s.pdf", fileSafe(asset)), nil
}

// fileSafe deja solo letras, dígitos, '-' y '_' del código del activo.
func fileSafe(asset *entity.Asset) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, asset.Code)
	if safe == "" {
		return strconv.FormatInt(asset.ID, 10)
	}
	return safe
}
