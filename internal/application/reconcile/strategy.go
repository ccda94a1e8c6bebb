package reconcile

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

// Nombres de estrategia reconocidos para RECONCILE_STRATEGY.
const (
	StrategyProduction = "production"
	StrategySales      = "sales"
)

// Strategy calcula el monto esperado de caja para un día calendario.
// El negocio pasó de derivarlo de las ventas a derivarlo de la producción, así
// que ambas variantes conviven como estrategias intercambiables y la selección
// es explícita por configuración.
type Strategy interface {
	Name() string
	ExpectedAmount(saleRepo repository.SaleRepository, day time.Time, totalProduction int) (decimal.Decimal, error)
}

// ProductionStrategy monto esperado = producción total del día × costo unitario.
type ProductionStrategy struct {
	UnitCost decimal.Decimal
}

func (s ProductionStrategy) Name() string { return StrategyProduction }

func (s ProductionStrategy) ExpectedAmount(_ repository.SaleRepository, _ time.Time, totalProduction int) (decimal.Decimal, error) {
	return s.UnitCost.Mul(decimal.NewFromInt(int64(totalProduction))), nil
}

// SalesStrategy variante heredada: monto esperado = Σ(precio × cantidad) de las ventas del día.
type SalesStrategy struct{}

func (s SalesStrategy) Name() string { return StrategySales }

func (s SalesStrategy) ExpectedAmount(saleRepo repository.SaleRepository, day time.Time, _ int) (decimal.Decimal, error) {
	return saleRepo.SumAmountByDay(day)
}

// NewStrategy resuelve una estrategia por nombre. No hay valor por defecto:
// un nombre desconocido o vacío es un error de configuración.
func NewStrategy(name string, unitCost decimal.Decimal) (Strategy, error) {
	switch name {
	case StrategyProduction:
		return ProductionStrategy{UnitCost: unitCost}, nil
	case StrategySales:
		return SalesStrategy{}, nil
	}
	return nil, fmt.Errorf("estrategia de conciliación desconocida: %q", name)
}
