package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tamaleria-api/internal/application/dto"
	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

// SaleUseCase casos de uso del libro de ventas. Las ventas son inmutables:
// se crean y se eliminan, nunca se editan.
type SaleUseCase struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, productRepo: productRepo}
}

// Create registra una venta contra el catálogo. Cantidad mínima 1; la fecha se
// fija al momento actual. La respuesta incluye el producto asociado.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.Quantity == nil || in.Quantity.Int() < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sale := &entity.SaleEntry{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity.Int(),
		Date:      now,
		CreatedAt: now,
		Product:   product,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// ListByDay lista las ventas del día (todas si day es nil) con producto
// poblado, ordenadas de la más reciente a la más antigua.
func (uc *SaleUseCase) ListByDay(day *time.Time) ([]dto.SaleResponse, error) {
	list, err := uc.repo.ListByDay(day)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

// Delete elimina una venta por ID.
func (uc *SaleUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSaleResponse(s *entity.SaleEntry) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Date:      s.Date,
		CreatedAt: s.CreatedAt,
		Product:   toProductResponse(s.Product),
	}
}
