// Package reconcile mantiene los agregados del corte de caja consistentes con
// el estado actual del libro de producción: cada mutación de producción
// recalcula la producción total del día y el monto esperado, y los escribe en
// el corte existente de ese día.
package reconcile

import (
	"time"

	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

// Service recalcula el snapshot (producción total, monto esperado) de un día.
type Service struct {
	strategy Strategy
}

// NewService construye el servicio con la estrategia configurada.
func NewService(strategy Strategy) *Service {
	return &Service{strategy: strategy}
}

// Strategy expone la estrategia activa (para logging en el arranque).
func (s *Service) Strategy() Strategy { return s.strategy }

// Reconcile recalcula producción total y monto esperado del día que contiene
// day y los escribe en el corte existente. Si no hay corte para ese día no
// escribe nada: el corte solo lo crea el flujo manual de cierre. Es idempotente:
// función pura del estado actual del libro más la presencia del corte.
//
// Los repositorios llegan como parámetros para que el caller pueda pasar repos
// atados a la misma transacción que la mutación de producción que disparó la
// conciliación.
func (s *Service) Reconcile(
	prodRepo repository.ProductionRepository,
	saleRepo repository.SaleRepository,
	registerRepo repository.CashRegisterRepository,
	day time.Time,
) error {
	total, err := prodRepo.SumQuantityByDay(day)
	if err != nil {
		return err
	}
	expected, err := s.strategy.ExpectedAmount(saleRepo, day, total)
	if err != nil {
		return err
	}

	register, err := registerRepo.GetByDay(day)
	if err != nil {
		return err
	}
	if register == nil {
		return nil
	}
	return registerRepo.UpdateAggregates(register.ID, total, expected, time.Now())
}
