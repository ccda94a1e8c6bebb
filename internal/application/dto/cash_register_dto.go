package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashRegisterRequest entrada para crear el corte de caja del día.
// Los tres campos numéricos son requeridos pero pueden valer cero, de ahí los punteros.
type CreateCashRegisterRequest struct {
	TotalProduction *FlexInt         `json:"totalProduction"`
	ExpectedAmount  *decimal.Decimal `json:"expectedAmount"`
	ActualAmount    *decimal.Decimal `json:"actualAmount"`
	Notes           *string          `json:"notes"`
	Date            string           `json:"date"`
}

// UpdateCashRegisterRequest entrada para sobrescribir un corte existente.
type UpdateCashRegisterRequest struct {
	TotalProduction *FlexInt         `json:"totalProduction"`
	ExpectedAmount  *decimal.Decimal `json:"expectedAmount"`
	ActualAmount    *decimal.Decimal `json:"actualAmount"`
	Notes           *string          `json:"notes"`
}

// CashRegisterResponse salida de un corte de caja. Difference es derivado
// (real - esperado): positivo sobrante, negativo faltante.
type CashRegisterResponse struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	TotalProduction int             `json:"totalProduction"`
	ExpectedAmount  decimal.Decimal `json:"expectedAmount"`
	ActualAmount    decimal.Decimal `json:"actualAmount"`
	Difference      decimal.Decimal `json:"difference"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
