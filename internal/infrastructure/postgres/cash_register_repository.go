package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/domain/repository"
)

var _ repository.CashRegisterRepository = (*CashRegisterRepo)(nil)

// CashRegisterRepo implementación del puerto CashRegisterRepository sobre PostgreSQL
// (usable con pool o tx). La columna day (DATE, UNIQUE) materializa el invariante
// de un corte por día calendario en el propio almacenamiento.
type CashRegisterRepo struct {
	q Querier
}

// NewCashRegisterRepository construye el adaptador de persistencia del corte. Pasar pool o tx (Querier).
func NewCashRegisterRepository(q Querier) *CashRegisterRepo {
	return &CashRegisterRepo{q: q}
}

// Create persiste un corte nuevo. La violación del UNIQUE sobre day se traduce
// a domain.ErrDuplicate.
func (r *CashRegisterRepo) Create(register *entity.CashRegister) error {
	day, _ := entity.DayBounds(register.Date)
	query := `
		INSERT INTO cash_registers (id, day, date, total_production, expected_amount, actual_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		register.ID, day, register.Date, register.TotalProduction,
		register.ExpectedAmount, register.ActualAmount, register.Notes,
		register.CreatedAt, register.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cash register: %w", err)
	}
	return nil
}

// GetByID obtiene un corte por ID, o nil si no existe.
func (r *CashRegisterRepo) GetByID(id string) (*entity.CashRegister, error) {
	query := `
		SELECT id, date, total_production, expected_amount, actual_amount, notes, created_at, updated_at
		FROM cash_registers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByDay obtiene el corte del día calendario que contiene day, o nil si no existe.
func (r *CashRegisterRepo) GetByDay(day time.Time) (*entity.CashRegister, error) {
	start, _ := entity.DayBounds(day)
	query := `
		SELECT id, date, total_production, expected_amount, actual_amount, notes, created_at, updated_at
		FROM cash_registers WHERE day = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, start))
}

// Update sobrescribe un corte existente.
func (r *CashRegisterRepo) Update(register *entity.CashRegister) error {
	query := `
		UPDATE cash_registers
		SET total_production = $2, expected_amount = $3, actual_amount = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		register.ID, register.TotalProduction, register.ExpectedAmount,
		register.ActualAmount, register.Notes, register.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cash register: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateAggregates refresca solo el snapshot derivado (producción total, monto esperado).
func (r *CashRegisterRepo) UpdateAggregates(id string, totalProduction int, expectedAmount decimal.Decimal, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE cash_registers SET total_production = $2, expected_amount = $3, updated_at = $4 WHERE id = $1`,
		id, totalProduction, expectedAmount, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cash register aggregates: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CashRegisterRepo) scanOne(row pgx.Row) (*entity.CashRegister, error) {
	var c entity.CashRegister
	err := row.Scan(
		&c.ID, &c.Date, &c.TotalProduction, &c.ExpectedAmount,
		&c.ActualAmount, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash register: %w", err)
	}
	return &c, nil
}
