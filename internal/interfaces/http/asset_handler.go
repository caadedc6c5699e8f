package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
)

// AssetCommands operaciones de escritura del ledger (lo implementa *ledger.Ledger).
type AssetCommands interface {
	CreateFromRequest(ctx context.Context, actor string, in dto.CreateAssetRequest) (*dto.CreateAssetResponse, error)
	TransferFromRequest(ctx context.Context, actor string, assetID int64, in dto.TransferAssetRequest) (*dto.TransferResponse, error)
	DisposeFromRequest(ctx context.Context, actor string, assetID int64, in dto.DisposeAssetRequest) (*dto.DisposalResponse, error)
	UpdateStatus(ctx context.Context, assetID int64, status, performedBy string) error
	Preview(in dto.SchedulePreviewRequest) (*dto.ScheduleResponse, error)
}

// AssetQueries lecturas sobre activos (lo implementa *usecase.AssetQueryUseCase).
type AssetQueries interface {
	GetByID(ctx context.Context, id int64) (*dto.AssetResponse, error)
	ListByCategory(ctx context.Context, categoryID int64, page dto.PageRequest) (*dto.AssetListResponse, error)
	Schedule(ctx context.Context, assetID int64) (*dto.ScheduleResponse, error)
	Transfers(ctx context.Context, assetID int64) ([]dto.TransferResponse, error)
	History(ctx context.Context, assetID int64) ([]dto.AssetHistoryResponse, error)
}

// SchedulePDF descarga del cronograma en PDF (lo implementa *reporting.SchedulePDFUseCase).
type SchedulePDF interface {
	Download(ctx context.Context, assetID int64) ([]byte, string, error)
}

// AssetHandler maneja las peticiones HTTP de activos.
type AssetHandler struct {
	commands AssetCommands
	queries  AssetQueries
	pdf      SchedulePDF
}

// NewAssetHandler construye el handler.
func NewAssetHandler(commands AssetCommands, queries AssetQueries, pdf SchedulePDF) *AssetHandler {
	return &AssetHandler{commands: commands, queries: queries, pdf: pdf}
}

// Create godoc
// @Summary      Dar de alta un activo
// @Description  Registra el activo y, si trae política de depreciación, su cronograma completo en la misma transacción.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.CreateAssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.commands.CreateFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar activos de una categoría
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        category_id  query     int  true   "ID de la categoría"
// @Param        limit        query     int  false  "Límite"  default(20)
// @Param        offset       query     int  false  "Offset"  default(0)
// @Success      200          {object}  dto.AssetListResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	categoryID := int64(c.QueryInt("category_id", 0))
	if categoryID <= 0 {
		return writeError(c, domain.Invalid("category_id", "es requerido"))
	}
	out, err := h.queries.ListByCategory(c.UserContext(), categoryID, pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.queries.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Trasladar activo
// @Description  Cambia custodio y ubicación y deja constancia en el historial. Sin cambios responde 422.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "ID del activo"
// @Param        body  body      dto.TransferAssetRequest  true  "Nuevo custodio y ubicación"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/transfer [post]
func (h *AssetHandler) Transfer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.TransferAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.commands.TransferFromRequest(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dispose godoc
// @Summary      Dar de baja un activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "ID del activo"
// @Param        body  body      dto.DisposeAssetRequest  true  "Motivo y valores de la baja"
// @Success      201   {object}  dto.DisposalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/dispose [post]
func (h *AssetHandler) Dispose(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.DisposeAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.commands.DisposeFromRequest(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Param        id    path  int                      true  "ID del activo"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/status [put]
func (h *AssetHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.commands.UpdateStatus(c.UserContext(), id, in.Status, GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Schedule godoc
// @Summary      Cronograma de depreciación del activo
// @Tags         depreciation
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del activo"
// @Success      200  {object}  dto.ScheduleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/depreciation [get]
func (h *AssetHandler) Schedule(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.queries.Schedule(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SchedulePDF godoc
// @Summary      Cronograma de depreciación en PDF
// @Tags         depreciation
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del activo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/depreciation.pdf [get]
func (h *AssetHandler) SchedulePDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	doc, filename, err := h.pdf.Download(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(doc)
}

// Transfers godoc
// @Summary      Historial de traslados del activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del activo"
// @Success      200  {array}   dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/transfers [get]
func (h *AssetHandler) Transfers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.queries.Transfers(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Bitácora de acciones del activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del activo"
// @Success      200  {array}   dto.AssetHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/history [get]
func (h *AssetHandler) History(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.queries.History(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Simular cronograma de depreciación
// @Description  Ejecuta el motor sin persistir nada.
// @Tags         depreciation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SchedulePreviewRequest  true  "Costo, fecha de compra y política"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/depreciation/preview [post]
func (h *AssetHandler) Preview(c *fiber.Ctx) error {
	var in dto.SchedulePreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.commands.Preview(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
