// Package pdf implementa la representación imprimible del corte de caja diario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  CORTE DE CAJA            │  Fecha          │
//	│  ─────────────────────────────────────────  │
//	│  Producción total del día                    │
//	│  Monto esperado / Monto real                 │
//	│  DIFERENCIA (sobrante o faltante)            │
//	│  ─────────────────────────────────────────  │
//	│  Observaciones                               │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tamaleria-api/internal/application/usecase"
	"github.com/jhoicas/tamaleria-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 127, Green: 50, Blue: 20}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorSurplus  = &props.Color{Red: 20, Green: 110, Blue: 40}
	colorShortage = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.CortePDFGenerator = (*MarotoCorteGenerator)(nil)

// MarotoCorteGenerator implementa usecase.CortePDFGenerator usando Maroto v2.
type MarotoCorteGenerator struct{}

// NewMarotoCorteGenerator construye el generador.
func NewMarotoCorteGenerator() *MarotoCorteGenerator { return &MarotoCorteGenerator{} }

// GenerateCortePDF genera el reporte del corte y devuelve sus bytes.
func (g *MarotoCorteGenerator) GenerateCortePDF(_ context.Context, register *entity.CashRegister) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Corte de Caja", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(register))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(amountRow("Producción total del día:", strconv.Itoa(register.TotalProduction)+" piezas", nil))
	m.AddRows(amountRow("Monto esperado:", "$"+register.ExpectedAmount.StringFixed(2), nil))
	m.AddRows(amountRow("Monto real en caja:", "$"+register.ActualAmount.StringFixed(2), nil))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(differenceRow(register.Difference()))

	if register.Notes != nil && *register.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(notesRows(*register.Notes)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar corte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha del corte (der).
func headerRow(register *entity.CashRegister) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("CORTE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
			text.New("Tamalería · operación diaria", props.Text{
				Size: 9, Top: 11, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+register.Date.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4,
			}),
		),
	)
}

// amountRow: etiqueta a la izquierda, valor a la derecha.
func amountRow(label, value string, valueColor *props.Color) core.Row {
	valueProps := props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2}
	if valueColor != nil {
		valueProps.Color = valueColor
	}
	return row.New(9).Add(
		col.New(7).Add(text.New(label, props.Text{Size: 10, Top: 2})),
		col.New(5).Add(text.New(value, valueProps)),
	)
}

// differenceRow: diferencia real - esperado, en verde (sobrante) o rojo (faltante).
func differenceRow(diff decimal.Decimal) core.Row {
	label := "Caja cuadrada"
	color := colorGray
	switch {
	case diff.IsPositive():
		label = "Sobrante"
		color = colorSurplus
	case diff.IsNegative():
		label = "Faltante"
		color = colorShortage
	}
	return row.New(12).Add(
		col.New(7).Add(text.New("DIFERENCIA ("+label+"):", props.Text{
			Style: fontstyle.Bold, Size: 12, Color: color, Top: 2,
		})),
		col.New(5).Add(text.New("$"+diff.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Right, Color: color, Top: 2,
		})),
	)
}

// notesRows: observaciones del operador.
func notesRows(notes string) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(14).Add(col.New(12).Add(
			text.New(notes, props.Text{Size: 9, Color: colorGray, Top: 1}),
		)),
	}
}
