package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusActive estado asignado a un activo nuevo cuando no se indica otro.
const StatusActive = "Active"

// UnknownValue se registra como valor previo en el historial cuando el campo no tenía dato.
const UnknownValue = "Unknown"

// Asset representa un bien físico registrado en el libro de activos.
// Se crea una vez, se muta por traslado y cambio de estado; el núcleo nunca lo elimina.
type Asset struct {
	ID           int64
	CategoryID   int64
	Name         string
	Code         string
	Cost         decimal.Decimal
	PurchaseDate *time.Time
	Custodian    string // "entregado a"
	Location     string
	Status       string // texto libre; sin máquina de estados
	Depreciation *DepreciationPolicy
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasSchedule indica si el activo tiene datos suficientes para proyectar depreciación.
func (a *Asset) HasSchedule() bool {
	return a.Depreciation != nil && a.PurchaseDate != nil
}
