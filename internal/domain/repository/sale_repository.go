package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia del libro de ventas (DIP).
type SaleRepository interface {
	Create(sale *entity.SaleEntry) error
	// ListByDay lista las ventas del día (todas si day es nil) con el producto
	// poblado, orden por fecha de creación descendente.
	ListByDay(day *time.Time) ([]*entity.SaleEntry, error)
	Delete(id string) error
	// SumAmountByDay suma precio × cantidad de las ventas del día (0 si no hay ventas).
	// Alimenta la estrategia de conciliación basada en ventas.
	SumAmountByDay(day time.Time) (decimal.Decimal, error)
}
