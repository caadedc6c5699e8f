package entity

import "time"

// Acciones registradas en asset_history.
const (
	ActionCreate       = "Create"
	ActionTransfer     = "Transfer"
	ActionDisposal     = "Disposal"
	ActionStatusChange = "StatusChange"
)

// AssetHistoryEntry bitácora genérica de acciones sobre un activo.
type AssetHistoryEntry struct {
	ID          int64
	AssetID     int64
	ActionType  string
	ActionDate  time.Time
	PerformedBy string
	Remarks     string
	OperationID string
}
