package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tamaleria-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// FlexInt: número JSON o string numérica, todo lo demás es error de parse
// ──────────────────────────────────────────────────────────────────────────────

func TestFlexInt_AceptaNumeroYStringNumerica(t *testing.T) {
	casos := []struct {
		raw      string
		esperado int
	}{
		{`12`, 12},
		{`0`, 0},
		{`-3`, -3},
		{`"12"`, 12},
		{`"0"`, 0},
		{`"-3"`, -3},
		{`"  7 "`, 7}, // espacios alrededor se toleran
	}
	for _, c := range casos {
		var f dto.FlexInt
		require.NoError(t, json.Unmarshal([]byte(c.raw), &f), "input %s", c.raw)
		assert.Equal(t, c.esperado, f.Int(), "input %s", c.raw)
	}
}

func TestFlexInt_RechazaValoresMalformados(t *testing.T) {
	casos := []string{
		`"abc"`,
		`""`,
		`"12.5"`,
		`12.5`, // los decimales no se truncan, se rechazan
		`true`,
		`null`,
		`{}`,
		`"12abc"`,
	}
	for _, c := range casos {
		var f dto.FlexInt
		assert.Error(t, json.Unmarshal([]byte(c), &f), "el input %s debe rechazarse", c)
	}
}

func TestFlexInt_CampoRequeridoAusenteQuedaNil(t *testing.T) {
	var in dto.SetProductionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"variety":"Rojo"}`), &in))
	assert.Nil(t, in.Quantity, "cantidad ausente debe distinguirse de cero")
}

func TestFlexInt_CeroExplicitoNoEsAusencia(t *testing.T) {
	var in dto.SetProductionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"variety":"Rojo","quantity":0}`), &in))
	require.NotNil(t, in.Quantity)
	assert.Equal(t, 0, in.Quantity.Int())
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseDate
// ──────────────────────────────────────────────────────────────────────────────

func TestParseDate_FechaSimpleEsMedianocheLocal(t *testing.T) {
	got, err := dto.ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), got)
}

func TestParseDate_AceptaRFC3339(t *testing.T) {
	got, err := dto.ParseDate("2026-03-15T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC).In(time.Local), got)
}

func TestParseDate_RechazaFormatosInvalidos(t *testing.T) {
	casos := []string{"", "15/03/2026", "2026-13-01", "ayer", "2026-03-15 18:45"}
	for _, c := range casos {
		_, err := dto.ParseDate(c)
		assert.Error(t, err, "la fecha %q debe rechazarse", c)
	}
}
