// Package testutil provee implementaciones en memoria de los puertos de
// persistencia para tests de casos de uso, sin levantar PostgreSQL.
package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

// ── Producción ────────────────────────────────────────────────────────────────

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo libro de producción en memoria.
type ProductionRepo struct {
	Entries []*entity.ProductionEntry
}

func NewProductionRepo() *ProductionRepo { return &ProductionRepo{} }

func (r *ProductionRepo) Create(entry *entity.ProductionEntry) error {
	r.Entries = append(r.Entries, entry)
	return nil
}

func (r *ProductionRepo) GetByVarietyAndDay(variety string, day time.Time) (*entity.ProductionEntry, error) {
	for _, e := range r.Entries {
		if e.Variety == variety && sameDay(e.Date, day) {
			return e, nil
		}
	}
	return nil, nil
}

func (r *ProductionRepo) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	for _, e := range r.Entries {
		if e.ID == id {
			e.Quantity = quantity
			e.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductionRepo) ListByDay(day *time.Time) ([]*entity.ProductionEntry, error) {
	var list []*entity.ProductionEntry
	for _, e := range r.Entries {
		if day == nil || sameDay(e.Date, *day) {
			list = append(list, e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Variety < list[j].Variety })
	return list, nil
}

func (r *ProductionRepo) SumQuantityByDay(day time.Time) (int, error) {
	total := 0
	for _, e := range r.Entries {
		if sameDay(e.Date, day) {
			total += e.Quantity
		}
	}
	return total, nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo de productos en memoria.
type ProductRepo struct {
	Products []*entity.Product
}

func NewProductRepo() *ProductRepo { return &ProductRepo{} }

func (r *ProductRepo) Create(product *entity.Product) error {
	r.Products = append(r.Products, product)
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	list := append([]*entity.Product(nil), r.Products...)
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	for i, p := range r.Products {
		if p.ID == product.ID {
			r.Products[i] = product
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepo) Delete(id string) error {
	for i, p := range r.Products {
		if p.ID == id {
			r.Products = append(r.Products[:i], r.Products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Ventas ────────────────────────────────────────────────────────────────────

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo libro de ventas en memoria. Products alimenta el join con el
// catálogo (producto poblado en listados, suma precio × cantidad).
type SaleRepo struct {
	Sales    []*entity.SaleEntry
	Products *ProductRepo
}

func NewSaleRepo(products *ProductRepo) *SaleRepo {
	return &SaleRepo{Products: products}
}

func (r *SaleRepo) Create(sale *entity.SaleEntry) error {
	r.Sales = append(r.Sales, sale)
	return nil
}

func (r *SaleRepo) ListByDay(day *time.Time) ([]*entity.SaleEntry, error) {
	var list []*entity.SaleEntry
	for _, s := range r.Sales {
		if day == nil || sameDay(s.Date, *day) {
			copied := *s
			copied.Product, _ = r.Products.GetByID(s.ProductID)
			list = append(list, &copied)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *SaleRepo) Delete(id string) error {
	for i, s := range r.Sales {
		if s.ID == id {
			r.Sales = append(r.Sales[:i], r.Sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *SaleRepo) SumAmountByDay(day time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.Sales {
		if !sameDay(s.Date, day) {
			continue
		}
		product, _ := r.Products.GetByID(s.ProductID)
		if product == nil {
			// venta huérfana: no aporta al total
			continue
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(s.Quantity))))
	}
	return total, nil
}

// ── Corte de caja ─────────────────────────────────────────────────────────────

var _ repository.CashRegisterRepository = (*CashRegisterRepo)(nil)

// CashRegisterRepo cortes de caja en memoria, uno por día calendario.
type CashRegisterRepo struct {
	Registers []*entity.CashRegister
}

func NewCashRegisterRepo() *CashRegisterRepo { return &CashRegisterRepo{} }

func (r *CashRegisterRepo) Create(register *entity.CashRegister) error {
	for _, existing := range r.Registers {
		if sameDay(existing.Date, register.Date) {
			return domain.ErrDuplicate
		}
	}
	r.Registers = append(r.Registers, register)
	return nil
}

func (r *CashRegisterRepo) GetByID(id string) (*entity.CashRegister, error) {
	for _, c := range r.Registers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *CashRegisterRepo) GetByDay(day time.Time) (*entity.CashRegister, error) {
	for _, c := range r.Registers {
		if sameDay(c.Date, day) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *CashRegisterRepo) Update(register *entity.CashRegister) error {
	for i, c := range r.Registers {
		if c.ID == register.ID {
			r.Registers[i] = register
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *CashRegisterRepo) UpdateAggregates(id string, totalProduction int, expectedAmount decimal.Decimal, updatedAt time.Time) error {
	for _, c := range r.Registers {
		if c.ID == id {
			c.TotalProduction = totalProduction
			c.ExpectedAmount = expectedAmount
			c.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// MemTxRunner ejecuta el callback directamente contra los repos en memoria.
// No hay transacción real; basta para verificar la orquestación de los casos de uso.
type MemTxRunner struct {
	Prod      *ProductionRepo
	Sales     *SaleRepo
	Registers *CashRegisterRepo
}

func (r *MemTxRunner) Run(_ context.Context, fn func(
	prodRepo repository.ProductionRepository,
	saleRepo repository.SaleRepository,
	registerRepo repository.CashRegisterRepository,
) error) error {
	return fn(r.Prod, r.Sales, r.Registers)
}

// sameDay compara dos instantes por día calendario local.
func sameDay(a, b time.Time) bool {
	startA, _ := entity.DayBounds(a)
	startB, _ := entity.DayBounds(b)
	return startA.Equal(startB)
}
