package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación del puerto ProductionRepository sobre PostgreSQL (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador de persistencia. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste un registro nuevo de producción.
func (r *ProductionRepo) Create(entry *entity.ProductionEntry) error {
	query := `
		INSERT INTO production_entries (id, variety, quantity, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Variety, entry.Quantity, entry.Date, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production entry: %w", err)
	}
	return nil
}

// GetByVarietyAndDay obtiene el registro de la variedad dentro del día calendario de day, o nil.
func (r *ProductionRepo) GetByVarietyAndDay(variety string, day time.Time) (*entity.ProductionEntry, error) {
	start, end := entity.DayBounds(day)
	query := `
		SELECT id, variety, quantity, date, created_at, updated_at
		FROM production_entries
		WHERE variety = $1 AND date >= $2 AND date < $3`
	var e entity.ProductionEntry
	err := r.q.QueryRow(context.Background(), query, variety, start, end).Scan(
		&e.ID, &e.Variety, &e.Quantity, &e.Date, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production entry: %w", err)
	}
	return &e, nil
}

// UpdateQuantity sobrescribe la cantidad de un registro existente.
func (r *ProductionRepo) UpdateQuantity(id string, quantity int, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE production_entries SET quantity = $2, updated_at = $3 WHERE id = $1`,
		id, quantity, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByDay lista los registros del día (todos si day es nil), orden por variedad ascendente.
func (r *ProductionRepo) ListByDay(day *time.Time) ([]*entity.ProductionEntry, error) {
	query := `
		SELECT id, variety, quantity, date, created_at, updated_at
		FROM production_entries`
	var args []any
	if day != nil {
		start, end := entity.DayBounds(*day)
		query += ` WHERE date >= $1 AND date < $2`
		args = append(args, start, end)
	}
	query += ` ORDER BY variety ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductionEntry
	for rows.Next() {
		var e entity.ProductionEntry
		if err := rows.Scan(&e.ID, &e.Variety, &e.Quantity, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan production entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumQuantityByDay suma las cantidades del día; COALESCE devuelve 0 en días sin registros.
func (r *ProductionRepo) SumQuantityByDay(day time.Time) (int, error) {
	start, end := entity.DayBounds(day)
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM production_entries WHERE date >= $1 AND date < $2`,
		start, end,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum production quantity: %w", err)
	}
	return total, nil
}
