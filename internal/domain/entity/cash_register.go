package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashRegister corte de caja: un registro por día calendario (UNIQUE sobre la
// columna day). TotalProduction y ExpectedAmount son un snapshot del agregado
// del día que el servicio de conciliación refresca cuando cambia la producción.
// ActualAmount lo captura el operador al cierre.
type CashRegister struct {
	ID              string
	Date            time.Time
	TotalProduction int
	ExpectedAmount  decimal.Decimal
	ActualAmount    decimal.Decimal
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Difference devuelve ActualAmount - ExpectedAmount.
// Positivo = sobrante de caja, negativo = faltante.
func (c *CashRegister) Difference() decimal.Decimal {
	return c.ActualAmount.Sub(c.ExpectedAmount)
}
