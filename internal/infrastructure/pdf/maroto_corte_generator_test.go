package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
	"github.com/jhoicas/tamaleria-api/internal/infrastructure/pdf"
)

func buildCorte(notes *string) *entity.CashRegister {
	return &entity.CashRegister{
		ID:              "corte-1",
		Date:            time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local),
		TotalProduction: 50,
		ExpectedAmount:  decimal.NewFromInt(1100),
		ActualAmount:    decimal.NewFromInt(1050),
		Notes:           notes,
	}
}

// TestGenerateCortePDF_ProduceDocumentoValido smoke test: el documento se
// genera sin error y los bytes empiezan con la firma %PDF.
func TestGenerateCortePDF_ProduceDocumentoValido(t *testing.T) {
	gen := pdf.NewMarotoCorteGenerator()

	got, err := gen.GenerateCortePDF(context.Background(), buildCorte(nil))
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]), "los bytes deben ser un PDF")
}

func TestGenerateCortePDF_ConNotas(t *testing.T) {
	gen := pdf.NewMarotoCorteGenerator()

	notas := "faltó cambio de 50"
	got, err := gen.GenerateCortePDF(context.Background(), buildCorte(&notas))
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestGenerateCortePDF_CajaCuadrada(t *testing.T) {
	gen := pdf.NewMarotoCorteGenerator()

	corte := buildCorte(nil)
	corte.ActualAmount = corte.ExpectedAmount
	got, err := gen.GenerateCortePDF(context.Background(), corte)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
