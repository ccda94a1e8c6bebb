package repository

import "github.com/jhoicas/tamaleria-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve el catálogo completo ordenado por nombre ascendente.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
