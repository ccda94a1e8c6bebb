package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Variedades: conjunto cerrado, sin coerción de valores cercanos
// ──────────────────────────────────────────────────────────────────────────────

func TestValidVariety_AceptaLasSeisVariedades(t *testing.T) {
	for _, v := range entity.Varieties() {
		assert.True(t, entity.ValidVariety(v), "la variedad %q debe ser válida", v)
	}
}

func TestValidVariety_RechazaValoresFueraDelConjunto(t *testing.T) {
	casos := []string{
		"",
		"rojo", // minúsculas no se coercen
		"ROJO",
		"Mole",
		"Puerco en Verde", // nombre de menú, no variedad del libro
		" Rojo",
		"Rojo ",
	}
	for _, c := range casos {
		assert.False(t, entity.ValidVariety(c), "el valor %q debe rechazarse", c)
	}
}

func TestVarieties_SonSeisSinDuplicados(t *testing.T) {
	vs := entity.Varieties()
	assert.Len(t, vs, 6)

	vistos := make(map[string]bool, len(vs))
	for _, v := range vs {
		assert.False(t, vistos[v], "variedad duplicada: %q", v)
		vistos[v] = true
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DayBounds: rango semiabierto [medianoche, medianoche siguiente)
// ──────────────────────────────────────────────────────────────────────────────

func TestDayBounds_RangoSemiabierto(t *testing.T) {
	instante := time.Date(2026, 3, 15, 14, 30, 45, 0, time.Local)
	start, end := entity.DayBounds(instante)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local), end)
}

func TestDayBounds_MedianocheEsInicioDeSuPropioDia(t *testing.T) {
	medianoche := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	start, end := entity.DayBounds(medianoche)

	assert.Equal(t, medianoche, start, "la medianoche pertenece al día que inicia")
	assert.Equal(t, medianoche.AddDate(0, 0, 1), end)
}

func TestDayBounds_InstantesDelMismoDiaCompartenLimites(t *testing.T) {
	manana := time.Date(2026, 3, 15, 6, 0, 0, 0, time.Local)
	noche := time.Date(2026, 3, 15, 23, 59, 59, 0, time.Local)

	startM, endM := entity.DayBounds(manana)
	startN, endN := entity.DayBounds(noche)

	assert.True(t, startM.Equal(startN))
	assert.True(t, endM.Equal(endN))
}
