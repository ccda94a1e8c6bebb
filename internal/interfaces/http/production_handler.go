package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tamaleria-api/internal/application/dto"
	"github.com/jhoicas/tamaleria-api/internal/application/usecase"
	"github.com/jhoicas/tamaleria-api/internal/domain"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
)

// ProductionHandler maneja las peticiones HTTP del libro de producción diaria.
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// List godoc
// @Summary      Listar producción del día
// @Tags         production
// @Produce      json
// @Param        date  query  string  false  "Día calendario (YYYY-MM-DD); omitir para listar todo"
// @Success      200  {array}   dto.ProductionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	day, ok, err := optionalDayQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Fecha inválida"})
	}
	var dayArg *time.Time
	if ok {
		dayArg = &day
	}
	out, err := h.uc.ListByDay(dayArg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener producción"})
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Fijar cantidad absoluta de una variedad
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetProductionRequest  true  "Variedad, cantidad y fecha opcional"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Set(c *fiber.Ctx) error {
	var in dto.SetProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if !entity.ValidVariety(in.Variety) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Variedad inválida"})
	}
	if in.Quantity == nil || in.Quantity.Int() < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cantidad inválida"})
	}
	out, err := h.uc.SetQuantity(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cantidad inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al guardar producción"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Increment godoc
// @Summary      Incrementar (o decrementar) la cantidad de una variedad
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IncrementProductionRequest  true  "Variedad, incremento (≠0) y fecha opcional"
// @Success      200   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production/increment [post]
func (h *ProductionHandler) Increment(c *fiber.Ctx) error {
	var in dto.IncrementProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if !entity.ValidVariety(in.Variety) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Variedad inválida"})
	}
	if in.Increment == nil || in.Increment.Int() == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Incremento inválido"})
	}
	out, err := h.uc.Increment(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Incremento inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al incrementar producción"})
	}
	return c.JSON(out)
}
