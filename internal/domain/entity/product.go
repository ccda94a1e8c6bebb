package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo vendible del catálogo (nombre, precio, categoría opcional).
// El nombre es único por convención del negocio, no por constraint.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Category  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
