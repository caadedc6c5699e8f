package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisposalRecord baja de un activo. Una sola por activo; Loss = OriginalValue - DisposedValue.
type DisposalRecord struct {
	ID            int64
	AssetID       int64
	CategoryID    int64
	AssetName     string
	AssetCode     string
	DisposedAt    time.Time
	Reason        string
	OriginalValue decimal.Decimal
	DisposedValue decimal.Decimal
	Loss          decimal.Decimal
	OperationID   string
}
