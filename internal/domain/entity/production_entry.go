package entity

import "time"

// Variedades de tamal producidas diariamente (conjunto cerrado).
const (
	VarietyRojo     = "Rojo"
	VarietyRajas    = "Rajas"
	VarietyVerde    = "Verde"
	VarietyPrensado = "Prensado"
	VarietyFrijoles = "Frijoles"
	VarietyDulce    = "Dulce"
)

// Varieties lista las seis variedades reconocidas, en el orden del menú.
func Varieties() []string {
	return []string{VarietyRojo, VarietyRajas, VarietyVerde, VarietyPrensado, VarietyFrijoles, VarietyDulce}
}

// ValidVariety indica si s pertenece al conjunto cerrado de variedades.
// Valores fuera del conjunto se rechazan en la frontera, nunca se coercen.
func ValidVariety(s string) bool {
	switch s {
	case VarietyRojo, VarietyRajas, VarietyVerde, VarietyPrensado, VarietyFrijoles, VarietyDulce:
		return true
	}
	return false
}

// ProductionEntry registra la cantidad producida de una variedad en un día calendario.
// Invariante: a lo sumo un registro por (variedad, día); Quantity nunca es negativa.
type ProductionEntry struct {
	ID        string
	Variety   string
	Quantity  int
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
