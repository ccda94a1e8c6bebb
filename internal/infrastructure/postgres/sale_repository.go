package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta nueva.
func (r *SaleRepo) Create(sale *entity.SaleEntry) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Quantity, sale.Date, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByDay lista las ventas del día (todas si day es nil) con el producto poblado,
// orden por fecha de creación descendente. LEFT JOIN: una venta cuyo producto fue
// eliminado del catálogo se devuelve con Product nil en vez de desaparecer.
func (r *SaleRepo) ListByDay(day *time.Time) ([]*entity.SaleEntry, error) {
	query := `
		SELECT s.id, s.product_id, s.quantity, s.date, s.created_at,
		       p.id, p.name, p.price, p.category, p.created_at, p.updated_at
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id`
	var args []any
	if day != nil {
		start, end := entity.DayBounds(*day)
		query += ` WHERE s.date >= $1 AND s.date < $2`
		args = append(args, start, end)
	}
	query += ` ORDER BY s.created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.SaleEntry
	for rows.Next() {
		var s entity.SaleEntry
		var (
			pID, pName         *string
			pPrice             *decimal.Decimal
			pCategory          *string
			pCreated, pUpdated *time.Time
		)
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.Quantity, &s.Date, &s.CreatedAt,
			&pID, &pName, &pPrice, &pCategory, &pCreated, &pUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if pID != nil {
			s.Product = &entity.Product{
				ID:        *pID,
				Name:      *pName,
				Price:     *pPrice,
				Category:  pCategory,
				CreatedAt: *pCreated,
				UpdatedAt: *pUpdated,
			}
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una venta por ID. Retorna domain.ErrNotFound si no existe.
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumAmountByDay suma precio × cantidad de las ventas del día. Ventas huérfanas
// (producto eliminado) no aportan al total.
func (r *SaleRepo) SumAmountByDay(day time.Time) (decimal.Decimal, error) {
	start, end := entity.DayBounds(day)
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(s.quantity * p.price), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.date >= $1 AND s.date < $2`,
		start, end,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales amount: %w", err)
	}
	return total, nil
}
