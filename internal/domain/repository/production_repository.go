package repository

import (
	"time"

	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia del libro de producción diaria (DIP).
type ProductionRepository interface {
	Create(entry *entity.ProductionEntry) error
	// GetByVarietyAndDay devuelve el registro de la variedad para el día calendario
	// que contiene day, o nil si no existe.
	GetByVarietyAndDay(variety string, day time.Time) (*entity.ProductionEntry, error)
	UpdateQuantity(id string, quantity int, updatedAt time.Time) error
	// ListByDay lista los registros del día (todos si day es nil), orden por variedad ascendente.
	ListByDay(day *time.Time) ([]*entity.ProductionEntry, error)
	// SumQuantityByDay suma las cantidades producidas del día (0 si no hay registros).
	SumQuantityByDay(day time.Time) (int, error)
}
