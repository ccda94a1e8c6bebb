package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tamaleria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductionUC   *usecase.ProductionUseCase
	ProductUC      *usecase.ProductUseCase
	SaleUC         *usecase.SaleUseCase
	CashRegisterUC *usecase.CashRegisterUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Producción diaria
	production := api.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production.Get("/", productionHandler.List)
	production.Post("/", productionHandler.Set)
	production.Post("/increment", productionHandler.Increment)

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Libro de ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Delete("/:id", saleHandler.Delete)

	// Corte de caja
	register := api.Group("/cash-register")
	cashRegisterHandler := NewCashRegisterHandler(deps.CashRegisterUC)
	register.Get("/", cashRegisterHandler.Get)
	register.Post("/", cashRegisterHandler.Create)
	register.Put("/:id", cashRegisterHandler.Update)
	register.Get("/:id/pdf", cashRegisterHandler.PDF)
}
