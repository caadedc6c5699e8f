package entity

import "time"

// TransferHistoryEntry registro inmutable de un traslado de custodio/ubicación.
type TransferHistoryEntry struct {
	ID                int64
	AssetID           int64
	PreviousCustodian string
	NewCustodian      string
	PreviousLocation  string
	NewLocation       string
	TransferredAt     time.Time
	Remarks           string
	OperationID       string
}
