package dto

import "time"

// CreateSaleRequest entrada para registrar una venta. La fecha la fija el
// servidor al momento actual; el cliente no la elige.
type CreateSaleRequest struct {
	ProductID string   `json:"productId"`
	Quantity  *FlexInt `json:"quantity"`
}

// SaleResponse salida de una venta con su producto asociado.
type SaleResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Date      time.Time        `json:"date"`
	CreatedAt time.Time        `json:"createdAt"`
	Product   *ProductResponse `json:"product,omitempty"`
}
