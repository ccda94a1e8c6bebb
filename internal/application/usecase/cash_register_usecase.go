package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tamaleria-api/internal/application/dto"
	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

// CashRegisterUseCase flujo del corte de caja: consulta del día, creación
// manual al cierre, sobrescritura y reporte imprimible.
type CashRegisterUseCase struct {
	repo   repository.CashRegisterRepository
	pdfGen CortePDFGenerator
}

// NewCashRegisterUseCase construye el caso de uso.
func NewCashRegisterUseCase(repo repository.CashRegisterRepository, pdfGen CortePDFGenerator) *CashRegisterUseCase {
	return &CashRegisterUseCase{repo: repo, pdfGen: pdfGen}
}

// GetForDay devuelve el corte del día o nil si aún no se ha realizado.
// La ausencia es un estado esperado antes del cierre, no un error.
func (uc *CashRegisterUseCase) GetForDay(day time.Time) (*dto.CashRegisterResponse, error) {
	register, err := uc.repo.GetByDay(day)
	if err != nil {
		return nil, err
	}
	return toCashRegisterResponse(register), nil
}

// Create crea el corte del día. Producción total, monto esperado y monto real
// son requeridos (cero es válido); la fecha vacía usa el momento actual.
// Retorna domain.ErrDuplicate si ya existe un corte para ese día.
func (uc *CashRegisterUseCase) Create(in dto.CreateCashRegisterRequest) (*dto.CashRegisterResponse, error) {
	if in.TotalProduction == nil || in.ExpectedAmount == nil || in.ActualAmount == nil {
		return nil, domain.ErrInvalidInput
	}
	date, err := resolveDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	register := &entity.CashRegister{
		ID:              uuid.New().String(),
		Date:            date,
		TotalProduction: in.TotalProduction.Int(),
		ExpectedAmount:  *in.ExpectedAmount,
		ActualAmount:    *in.ActualAmount,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(register); err != nil {
		return nil, err
	}
	return toCashRegisterResponse(register), nil
}

// Update sobrescribe un corte existente. Los tres campos numéricos son
// requeridos. No re-dispara la conciliación.
func (uc *CashRegisterUseCase) Update(id string, in dto.UpdateCashRegisterRequest) (*dto.CashRegisterResponse, error) {
	if in.TotalProduction == nil || in.ExpectedAmount == nil || in.ActualAmount == nil {
		return nil, domain.ErrInvalidInput
	}
	register, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, domain.ErrNotFound
	}

	register.TotalProduction = in.TotalProduction.Int()
	register.ExpectedAmount = *in.ExpectedAmount
	register.ActualAmount = *in.ActualAmount
	register.Notes = in.Notes
	register.UpdatedAt = time.Now()
	if err := uc.repo.Update(register); err != nil {
		return nil, err
	}
	return toCashRegisterResponse(register), nil
}

// CortePDF genera el reporte imprimible del corte indicado.
func (uc *CashRegisterUseCase) CortePDF(ctx context.Context, id string) ([]byte, error) {
	register, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateCortePDF(ctx, register)
}

func toCashRegisterResponse(r *entity.CashRegister) *dto.CashRegisterResponse {
	if r == nil {
		return nil
	}
	return &dto.CashRegisterResponse{
		ID:              r.ID,
		Date:            r.Date,
		TotalProduction: r.TotalProduction,
		ExpectedAmount:  r.ExpectedAmount,
		ActualAmount:    r.ActualAmount,
		Difference:      r.Difference(),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
