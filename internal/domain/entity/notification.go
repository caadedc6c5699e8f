package entity

import "time"

// Tipos y prioridades de notificación.
const (
	NotificationDisposal = "Disposal"
	PriorityHigh         = "High"
)

// Notification aviso generado por el ledger (p. ej. al dar de baja un activo).
type Notification struct {
	ID         int64
	Type       string
	AssetID    int64
	AssetName  string
	AssetCode  string
	CategoryID int64
	Message    string
	CreatedAt  time.Time
	Priority   string
	Read       bool
}
