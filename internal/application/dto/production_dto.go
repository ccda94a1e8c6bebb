package dto

import "time"

// SetProductionRequest entrada para fijar la cantidad absoluta de una variedad.
// Date es opcional ("YYYY-MM-DD" o RFC 3339); vacío = momento actual.
type SetProductionRequest struct {
	Variety  string   `json:"variety"`
	Quantity *FlexInt `json:"quantity"`
	Date     string   `json:"date"`
}

// IncrementProductionRequest entrada para un incremento relativo (positivo o negativo, nunca cero).
type IncrementProductionRequest struct {
	Variety   string   `json:"variety"`
	Increment *FlexInt `json:"increment"`
	Date      string   `json:"date"`
}

// ProductionResponse salida de un registro de producción.
type ProductionResponse struct {
	ID        string    `json:"id"`
	Variety   string    `json:"variety"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
