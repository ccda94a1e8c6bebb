package usecase

import (
	"context"

	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación de producción y la
// conciliación del corte se confirmen o reviertan juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		prodRepo repository.ProductionRepository,
		saleRepo repository.SaleRepository,
		registerRepo repository.CashRegisterRepository,
	) error) error
}

// CortePDFGenerator puerto para la representación imprimible del corte de caja.
type CortePDFGenerator interface {
	GenerateCortePDF(ctx context.Context, register *entity.CashRegister) ([]byte, error)
}
