package dto

import "github.com/shopspring/decimal"

// CategorySummaryResponse valoración agregada de una categoría.
type CategorySummaryResponse struct {
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	AssetCount   int             `json:"asset_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// AssetValuationResponse valor actual de un activo dentro del detalle por categoría.
// CurrentValue es el remanente de la última entrada en la ventana o, sin entrada, el costo.
type AssetValuationResponse struct {
	AssetID         int64           `json:"asset_id"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	PurchaseDate    string          `json:"purchase_date,omitempty"`
	Cost            decimal.Decimal `json:"cost"`
	LatestEntryDate string          `json:"latest_entry_date,omitempty"`
	CurrentValue    decimal.Decimal `json:"current_value"`
}

// CategoryDetailResponse detalle de valoración de una categoría.
type CategoryDetailResponse struct {
	CategorySummaryResponse
	Assets []AssetValuationResponse `json:"assets"`
}
