package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// DepreciationPolicyRequest política de depreciación del activo.
type DepreciationPolicyRequest struct {
	Rate         decimal.Decimal `json:"rate"`          // porcentaje por periodo
	PeriodType   string          `json:"period_type"`   // year | month
	PeriodLength int             `json:"period_length"` // periodos de esa unidad
	Method       string          `json:"method,omitempty"`
}

// CreateAssetRequest body para dar de alta un activo.
type CreateAssetRequest struct {
	CategoryID   int64                      `json:"category_id"`
	Name         string                     `json:"name"`
	Code         string                     `json:"code"`
	Cost         decimal.Decimal            `json:"cost"`
	PurchaseDate string                     `json:"purchase_date"` // YYYY-MM-DD
	Custodian    string                     `json:"custodian"`
	Location     string                     `json:"location"`
	Status       string                     `json:"status"`
	Depreciation *DepreciationPolicyRequest `json:"depreciation,omitempty"`
}

// TransferAssetRequest body para trasladar un activo.
type TransferAssetRequest struct {
	Custodian string `json:"custodian"`
	Location  string `json:"location"`
	Remarks   string `json:"remarks"`
}

// DisposeAssetRequest body para dar de baja un activo. original_value omitido = costo del activo.
type DisposeAssetRequest struct {
	CategoryID    int64            `json:"category_id"`
	Reason        string           `json:"reason"`
	OriginalValue *decimal.Decimal `json:"original_value,omitempty"`
	DisposedValue decimal.Decimal  `json:"disposed_value"`
}

// UpdateStatusRequest body para cambiar el estado.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SchedulePreviewRequest entrada del simulador de depreciación.
type SchedulePreviewRequest struct {
	PurchaseDate string                    `json:"purchase_date"`
	Cost         decimal.Decimal           `json:"cost"`
	Depreciation DepreciationPolicyRequest `json:"depreciation"`
}

// DepreciationPolicyResponse política guardada en el activo.
type DepreciationPolicyResponse struct {
	Rate         decimal.Decimal `json:"rate"`
	PeriodType   string          `json:"period_type"`
	PeriodLength int             `json:"period_length"`
	Method       string          `json:"method"`
}

// AssetResponse respuesta de un activo.
type AssetResponse struct {
	ID           int64                       `json:"id"`
	CategoryID   int64                       `json:"category_id"`
	Name         string                      `json:"name"`
	Code         string                      `json:"code"`
	Cost         decimal.Decimal             `json:"cost"`
	PurchaseDate string                      `json:"purchase_date,omitempty"`
	Custodian    string                      `json:"custodian"`
	Location     string                      `json:"location"`
	Status       string                      `json:"status"`
	Depreciation *DepreciationPolicyResponse `json:"depreciation,omitempty"`
	CreatedAt    string                      `json:"created_at"`
	UpdatedAt    string                      `json:"updated_at"`
}

// AssetListResponse listado paginado.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// DepreciationEntryResponse fila del cronograma.
type DepreciationEntryResponse struct {
	Period         int             `json:"period"`
	Date           string          `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	RemainingValue decimal.Decimal `json:"remaining_value"`
}

// ScheduleResponse cronograma completo de un activo (o de una simulación, AssetID 0).
type ScheduleResponse struct {
	AssetID int64                       `json:"asset_id,omitempty"`
	Entries []DepreciationEntryResponse `json:"entries"`
}

// CreateAssetResponse activo creado más su cronograma.
type CreateAssetResponse struct {
	Asset    AssetResponse               `json:"asset"`
	Schedule []DepreciationEntryResponse `json:"schedule"`
}

// TransferResponse fila de historial de traslado.
type TransferResponse struct {
	ID                int64  `json:"id"`
	AssetID           int64  `json:"asset_id"`
	PreviousCustodian string `json:"previous_custodian"`
	NewCustodian      string `json:"new_custodian"`
	PreviousLocation  string `json:"previous_location"`
	NewLocation       string `json:"new_location"`
	TransferredAt     string `json:"transferred_at"`
	Remarks           string `json:"remarks,omitempty"`
	OperationID       string `json:"operation_id"`
}

// DisposalResponse registro de baja.
type DisposalResponse struct {
	ID            int64           `json:"id"`
	AssetID       int64           `json:"asset_id"`
	CategoryID    int64           `json:"category_id"`
	AssetName     string          `json:"asset_name"`
	AssetCode     string          `json:"asset_code"`
	DisposedAt    string          `json:"disposed_at"`
	Reason        string          `json:"reason"`
	OriginalValue decimal.Decimal `json:"original_value"`
	DisposedValue decimal.Decimal `json:"disposed_value"`
	Loss          decimal.Decimal `json:"loss"`
}

// AssetHistoryResponse fila de la bitácora del activo.
type AssetHistoryResponse struct {
	ID          int64  `json:"id"`
	ActionType  string `json:"action_type"`
	ActionDate  string `json:"action_date"`
	PerformedBy string `json:"performed_by"`
	Remarks     string `json:"remarks"`
	OperationID string `json:"operation_id"`
}

// NotificationResponse aviso del ledger.
type NotificationResponse struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	AssetID    int64  `json:"asset_id"`
	AssetName  string `json:"asset_name"`
	AssetCode  string `json:"asset_code"`
	CategoryID int64  `json:"category_id"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
	Priority   string `json:"priority"`
	Read       bool   `json:"read"`
}

const timestampLayout = "2006-01-02T15:04:05Z07:00"

// NewAssetResponse convierte la entidad en respuesta HTTP.
func NewAssetResponse(a *entity.Asset) AssetResponse {
	out := AssetResponse{
		ID:           a.ID,
		CategoryID:   a.CategoryID,
		Name:         a.Name,
		Code:         a.Code,
		Cost:         a.Cost,
		PurchaseDate: FormatDate(a.PurchaseDate),
		Custodian:    a.Custodian,
		Location:     a.Location,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt.Format(timestampLayout),
		UpdatedAt:    a.UpdatedAt.Format(timestampLayout),
	}
	if p := a.Depreciation; p != nil {
		out.Depreciation = &DepreciationPolicyResponse{
			Rate:         p.Rate,
			PeriodType:   string(p.PeriodType),
			PeriodLength: p.PeriodLength,
			Method:       string(p.Method),
		}
	}
	return out
}

// NewScheduleEntries convierte filas del cronograma.
func NewScheduleEntries(entries []entity.DepreciationEntry) []DepreciationEntryResponse {
	out := make([]DepreciationEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, DepreciationEntryResponse{
			Period:         e.Period,
			Date:           e.PeriodDate.Format(DateLayout),
			Amount:         e.Amount,
			RemainingValue: e.RemainingValue,
		})
	}
	return out
}

// NewTransferResponse convierte una fila de traslado.
func NewTransferResponse(t *entity.TransferHistoryEntry) TransferResponse {
	return TransferResponse{
		ID:                t.ID,
		AssetID:           t.AssetID,
		PreviousCustodian: t.PreviousCustodian,
		NewCustodian:      t.NewCustodian,
		PreviousLocation:  t.PreviousLocation,
		NewLocation:       t.NewLocation,
		TransferredAt:     t.TransferredAt.Format(timestampLayout),
		Remarks:           t.Remarks,
		OperationID:       t.OperationID,
	}
}

// NewDisposalResponse convierte un registro de baja.
func NewDisposalResponse(d *entity.DisposalRecord) DisposalResponse {
	return DisposalResponse{
		ID:            d.ID,
		AssetID:       d.AssetID,
		CategoryID:    d.CategoryID,
		AssetName:     d.AssetName,
		AssetCode:     d.AssetCode,
		DisposedAt:    d.DisposedAt.Format(timestampLayout),
		Reason:        d.Reason,
		OriginalValue: d.OriginalValue,
		DisposedValue: d.DisposedValue,
		Loss:          d.Loss,
	}
}

// NewAssetHistoryResponse convierte una fila de bitácora.
func NewAssetHistoryResponse(h *entity.AssetHistoryEntry) AssetHistoryResponse {
	return AssetHistoryResponse{
		ID:          h.ID,
		ActionType:  h.ActionType,
		ActionDate:  h.ActionDate.Format(timestampLayout),
		PerformedBy: h.PerformedBy,
		Remarks:     h.Remarks,
		OperationID: h.OperationID,
	}
}

// NewNotificationResponse convierte un aviso.
func NewNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       n.Type,
		AssetID:    n.AssetID,
		AssetName:  n.AssetName,
		AssetCode:  n.AssetCode,
		CategoryID: n.CategoryID,
		Message:    n.Message,
		CreatedAt:  n.CreatedAt.Format(timestampLayout),
		Priority:   n.Priority,
		Read:       n.Read,
	}
}
