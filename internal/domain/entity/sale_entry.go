package entity

import "time"

// SaleEntry una venta individual contra el catálogo. Inmutable una vez creada;
// solo puede eliminarse. Date se fija al momento de la venta (no lo elige el cliente).
type SaleEntry struct {
	ID        string
	ProductID string
	Quantity  int
	Date      time.Time
	CreatedAt time.Time

	// Product es el producto asociado, poblado en lecturas con join.
	// Referencia débil: si el producto se elimina la venta queda huérfana.
	Product *Product
}
