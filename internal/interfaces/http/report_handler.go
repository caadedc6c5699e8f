package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/ledger"
)

// ValuationReports lo implementa *reporting.ValuationUseCase.
type ValuationReports interface {
	CategorySummary(ctx context.Context, start, end *time.Time) ([]dto.CategorySummaryResponse, error)
	CategoryDetailed(ctx context.Context, start, end *time.Time) ([]dto.CategoryDetailResponse, error)
}

// ReportHandler reportes de valoración por categoría.
type ReportHandler struct {
	reports ValuationReports
}

// NewReportHandler construye el handler.
func NewReportHandler(reports ValuationReports) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func dateWindow(c *fiber.Ctx) (start, end *time.Time, err error) {
	if start, err = ledger.ParseDate("start_date", c.Query("start_date")); err != nil {
		return nil, nil, err
	}
	if end, err = ledger.ParseDate("end_date", c.Query("end_date")); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

// CategorySummary godoc
// @Summary      Valoración por categoría
// @Description  Número de activos y valor actual total por categoría. El valor de cada activo es el remanente de su última entrada de depreciación con fecha <= end_date (descartada si es anterior a start_date); sin entrada, su costo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.CategorySummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/category-summary [get]
func (h *ReportHandler) CategorySummary(c *fiber.Ctx) error {
	start, end, err := dateWindow(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.reports.CategorySummary(c.UserContext(), start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CategoryDetailed godoc
// @Summary      Valoración por categoría con detalle por activo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.CategoryDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/category-summary/detailed [get]
func (h *ReportHandler) CategoryDetailed(c *fiber.Ctx) error {
	start, end, err := dateWindow(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.reports.CategoryDetailed(c.UserContext(), start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
