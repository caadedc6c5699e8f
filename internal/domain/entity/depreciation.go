package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodType unidad calendario de un periodo de depreciación.
type PeriodType string

const (
	PeriodYear  PeriodType = "year"
	PeriodMonth PeriodType = "month"
)

// Valid indica si el tipo de periodo es reconocido.
func (p PeriodType) Valid() bool {
	return p == PeriodYear || p == PeriodMonth
}

// DepreciationMethod política de cálculo del paso por periodo.
type DepreciationMethod string

const (
	// MethodStraightLine: paso fijo = tasa% × costo original.
	MethodStraightLine DepreciationMethod = "straight_line"
	// MethodDecliningBalance: paso = tasa% × valor remanente del periodo anterior.
	MethodDecliningBalance DepreciationMethod = "declining_balance"
)

// Valid indica si el método es reconocido.
func (m DepreciationMethod) Valid() bool {
	return m == MethodStraightLine || m == MethodDecliningBalance
}

// DepreciationPolicy parámetros de depreciación de un activo.
type DepreciationPolicy struct {
	Rate         decimal.Decimal // porcentaje por periodo
	PeriodType   PeriodType
	PeriodLength int
	Method       DepreciationMethod
}

// DepreciationEntry fila del cronograma proyectado. Inmutable una vez escrita.
type DepreciationEntry struct {
	ID             int64
	AssetID        int64
	Period         int // 1..n
	PeriodDate     time.Time
	Amount         decimal.Decimal
	RemainingValue decimal.Decimal
	Rate           decimal.Decimal
	PeriodType     PeriodType
	PeriodLength   int
	Method         DepreciationMethod
}
