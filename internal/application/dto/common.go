package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP: un mensaje localizado, sin código estructurado.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse cuerpo de confirmación para operaciones de borrado.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// FlexInt entero que acepta número JSON o string numérica y rechaza cualquier
// valor malformado antes de llegar a persistencia. Campos requeridos que pueden
// ser cero legítimamente se declaran como *FlexInt para distinguir ausencia de cero.
type FlexInt int

// UnmarshalJSON implementa el parse falible desde número o string.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("entero inválido: %q", s)
	}
	*f = FlexInt(n)
	return nil
}

// Int devuelve el valor como int nativo.
func (f FlexInt) Int() int { return int(f) }

// ParseDate interpreta una fecha "YYYY-MM-DD" (hora local) o RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
	}
	return t.In(time.Local), nil
}
