package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tamaleria-api/internal/application/dto"
	"github.com/jhoicas/tamaleria-api/internal/application/reconcile"
	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

// ProductionUseCase operaciones del libro de producción diaria. Cada mutación
// dispara la conciliación del corte de caja dentro de la misma transacción,
// así el snapshot del corte nunca queda desfasado respecto a la producción.
type ProductionUseCase struct {
	txRunner   TxRunner
	repo       repository.ProductionRepository
	reconciler *reconcile.Service
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(txRunner TxRunner, repo repository.ProductionRepository, reconciler *reconcile.Service) *ProductionUseCase {
	return &ProductionUseCase{txRunner: txRunner, repo: repo, reconciler: reconciler}
}

// SetQuantity fija la cantidad absoluta de una variedad para el día
// (upsert por variedad + día calendario). Idempotente para los mismos argumentos.
func (uc *ProductionUseCase) SetQuantity(ctx context.Context, in dto.SetProductionRequest) (*dto.ProductionResponse, error) {
	if !entity.ValidVariety(in.Variety) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity == nil || in.Quantity.Int() < 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := resolveDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	quantity := in.Quantity.Int()
	return uc.mutate(ctx, in.Variety, date, func(int) int { return quantity })
}

// Increment aplica un incremento relativo (positivo o negativo, nunca cero) a la
// variedad del día. La cantidad resultante se recorta en cero: max(0, actual + delta).
// Si no existe registro se crea con max(0, delta).
func (uc *ProductionUseCase) Increment(ctx context.Context, in dto.IncrementProductionRequest) (*dto.ProductionResponse, error) {
	if !entity.ValidVariety(in.Variety) {
		return nil, domain.ErrInvalidInput
	}
	if in.Increment == nil || in.Increment.Int() == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := resolveDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	delta := in.Increment.Int()
	return uc.mutate(ctx, in.Variety, date, func(current int) int {
		next := current + delta
		if next < 0 {
			return 0
		}
		return next
	})
}

// mutate resuelve el registro (variedad, día), aplica next sobre la cantidad
// actual (0 si no existe) y concilia el corte del día, todo en una transacción.
func (uc *ProductionUseCase) mutate(ctx context.Context, variety string, date time.Time, next func(current int) int) (*dto.ProductionResponse, error) {
	var out *entity.ProductionEntry
	err := uc.txRunner.Run(ctx, func(
		prodRepo repository.ProductionRepository,
		saleRepo repository.SaleRepository,
		registerRepo repository.CashRegisterRepository,
	) error {
		existing, err := prodRepo.GetByVarietyAndDay(variety, date)
		if err != nil {
			return err
		}
		now := time.Now()
		if existing != nil {
			existing.Quantity = next(existing.Quantity)
			existing.UpdatedAt = now
			if err := prodRepo.UpdateQuantity(existing.ID, existing.Quantity, now); err != nil {
				return err
			}
			out = existing
		} else {
			entry := &entity.ProductionEntry{
				ID:        uuid.New().String(),
				Variety:   variety,
				Quantity:  next(0),
				Date:      date,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := prodRepo.Create(entry); err != nil {
				return err
			}
			out = entry
		}
		return uc.reconciler.Reconcile(prodRepo, saleRepo, registerRepo, date)
	})
	if err != nil {
		return nil, err
	}
	return toProductionResponse(out), nil
}

// ListByDay lista los registros del día indicado (todos si day es nil),
// ordenados por variedad ascendente. Un día sin registros devuelve lista vacía.
func (uc *ProductionUseCase) ListByDay(day *time.Time) ([]dto.ProductionResponse, error) {
	list, err := uc.repo.ListByDay(day)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toProductionResponse(e))
	}
	return items, nil
}

// resolveDate interpreta la fecha opcional de un request; vacía = momento actual.
func resolveDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return dto.ParseDate(s)
}

func toProductionResponse(e *entity.ProductionEntry) *dto.ProductionResponse {
	if e == nil {
		return nil
	}
	return &dto.ProductionResponse{
		ID:        e.ID,
		Variety:   e.Variety,
		Quantity:  e.Quantity,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
