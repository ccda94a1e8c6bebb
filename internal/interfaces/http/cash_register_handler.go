package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tamaleria-api/internal/application/dto"
	"github.com/jhoicas/tamaleria-api/internal/application/usecase"
	"github.com/jhoicas/tamaleria-api/internal/domain"
)

// CashRegisterHandler maneja las peticiones HTTP del corte de caja.
type CashRegisterHandler struct {
	uc *usecase.CashRegisterUseCase
}

// NewCashRegisterHandler construye el handler.
func NewCashRegisterHandler(uc *usecase.CashRegisterUseCase) *CashRegisterHandler {
	return &CashRegisterHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el corte de un día
// @Tags         cash-register
// @Produce      json
// @Param        date  query  string  true  "Día calendario (YYYY-MM-DD)"
// @Success      200  {object}  dto.CashRegisterResponse  "null si aún no existe corte para el día"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cash-register [get]
func (h *CashRegisterHandler) Get(c *fiber.Ctx) error {
	day, ok, err := optionalDayQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Fecha inválida"})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Fecha es requerida"})
	}
	out, err := h.uc.GetForDay(day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener corte de caja"})
	}
	// out puede ser nil: el cliente recibe null, la ausencia es estado normal.
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear el corte del día
// @Tags         cash-register
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashRegisterRequest  true  "Producción total, montos y notas"
// @Success      201   {object}  dto.CashRegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cash-register [post]
func (h *CashRegisterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Producción total, monto esperado y monto real son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Ya existe un corte para ese día"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear corte de caja"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Sobrescribir un corte existente
// @Tags         cash-register
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del corte"
// @Param        body  body  dto.UpdateCashRegisterRequest  true  "Producción total, montos y notas"
// @Success      200   {object}  dto.CashRegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cash-register/{id} [put]
func (h *CashRegisterHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCashRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Producción total, monto esperado y monto real son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Corte de caja no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar corte de caja"})
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar el corte en PDF
// @Tags         cash-register
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del corte"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-register/{id}/pdf [get]
func (h *CashRegisterHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.CortePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Corte de caja no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al generar PDF"})
	}
	filename := "corte-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
