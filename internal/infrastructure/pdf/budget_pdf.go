// Package pdf implementa la representación imprimible de un presupuesto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Premiarte  │  PRESUPUESTO N° + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                  │
//	│  RESPONSABLE: Nombre (+ CUIT si corresponde)                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Importe                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  FOOTER: observaciones + vencimiento                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/premiarte/premiarte-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 122, Green: 39, Blue: 26}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBudgetGenerator genera el PDF de un presupuesto usando Maroto v2.
type MarotoBudgetGenerator struct{}

// NewMarotoBudgetGenerator construye el generador.
func NewMarotoBudgetGenerator() *MarotoBudgetGenerator { return &MarotoBudgetGenerator{} }

// GenerateBudgetPDF genera el PDF y devuelve sus bytes. El responsable es
// opcional; su CUIT se imprime solo si el presupuesto lo pide.
func (g *MarotoBudgetGenerator) GenerateBudgetPDF(
	_ context.Context,
	budget *entity.Budget,
	responsible *entity.Responsible,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Presupuesto %d", budget.Number), true).
		WithAuthor("Premiarte", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(budget))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(budget.Customer))
	if responsible != nil {
		m.AddRows(responsibleRow(responsible, budget.ShowCuit))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(budget.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(budget.TotalAmount))

	for _, r := range footerRows(budget) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y número + fecha (der).
func headerRow(budget *entity.Budget) core.Row {
	fecha := budget.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Premiarte", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Regalos empresariales", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PRESUPUESTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", budget.Number), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(customer *entity.Customer) core.Row {
	name, contact := "—", "—"
	if customer != nil {
		name = customer.Name
		contact = fmt.Sprintf("Email: %s   |   Tel: %s",
			nonEmpty(customer.Email, "—"),
			nonEmpty(customer.Phone, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// responsibleRow: responsable asignado. El CUIT solo se imprime a pedido.
func responsibleRow(responsible *entity.Responsible, showCuit bool) core.Row {
	detail := responsible.Name
	if showCuit && responsible.CUIT != "" {
		detail = fmt.Sprintf("%s   |   CUIT: %s", responsible.Name, responsible.CUIT)
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("RESPONSABLE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(detail, props.Text{Size: 9, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de items.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por línea del presupuesto.
func tableItemRows(items []entity.BudgetItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := fmt.Sprintf("Producto #%d", it.ProductID)
		if it.Product != nil {
			name = it.Product.Name
		}
		if it.Observation != "" {
			name += " (" + it.Observation + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatCents(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatCents(it.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total alineado a la derecha.
func totalRow(total int64) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatCents(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRows: observaciones y vencimiento.
func footerRows(budget *entity.Budget) []core.Row {
	var rows []core.Row
	rows = append(rows, row.New(3))

	if budget.Observation != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observaciones:", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
			text.New(budget.Observation, props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		)))
	}

	if budget.ExpiresAt != nil {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Válido hasta el "+budget.ExpiresAt.Format("02/01/2006")+".", props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Los precios cotizados no incluyen IVA y pueden variar sin previo aviso "+
				"una vez vencido el presupuesto.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatCents convierte centavos a pesos con separador de miles y dos
// decimales. Ej: 1500000 → "15.000,00"
func formatCents(cents int64) string {
	pesos := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
	// pesos viene como "15000.00": separar parte entera y decimal
	intPart, decPart := pesos, "00"
	if n := len(pesos); n > 3 && pesos[n-3] == '.' {
		intPart, decPart = pesos[:n-3], pesos[n-2:]
	}
	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf) + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
