// Package http expone la API REST de la tamalería sobre Fiber.
package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tamaleria-api/internal/application/dto"
)

// optionalDayQuery lee el parámetro de consulta "date". Devuelve ok=false si el
// parámetro está ausente y error si está presente pero malformado.
func optionalDayQuery(c *fiber.Ctx) (time.Time, bool, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, false, nil
	}
	day, err := dto.ParseDate(raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return day, true, nil
}
