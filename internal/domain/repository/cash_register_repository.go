package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
)

// CashRegisterRepository define el puerto de persistencia del corte de caja (DIP).
type CashRegisterRepository interface {
	// Create persiste un corte nuevo. Retorna domain.ErrDuplicate si ya existe
	// un corte para ese día calendario (constraint UNIQUE sobre day).
	Create(register *entity.CashRegister) error
	GetByID(id string) (*entity.CashRegister, error)
	// GetByDay devuelve el corte del día calendario que contiene day, o nil si no existe.
	GetByDay(day time.Time) (*entity.CashRegister, error)
	Update(register *entity.CashRegister) error
	// UpdateAggregates refresca solo el snapshot derivado (producción total y monto
	// esperado). Lo usa el servicio de conciliación.
	UpdateAggregates(id string, totalProduction int, expectedAmount decimal.Decimal, updatedAt time.Time) error
}
