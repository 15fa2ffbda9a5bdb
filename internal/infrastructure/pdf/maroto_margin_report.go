// Package pdf renderiza el reporte de margen de una orden como documento A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Orden N° + Título        │  Fecha + Estado          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre      VENDEDOR: nombre                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Proveedor | Cant | Costo U. | Venta U. | Mg %    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Venta / Costo / Margen / Margen %                  │
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

	"github.com/jhoicas/toolbox-api/internal/application/dto"
	"github.com/jhoicas/toolbox-api/internal/application/report"
)

var _ report.MarginPDFGenerator = (*MarotoMarginReport)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 31, Green: 78, Blue: 61}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoMarginReport implementa report.MarginPDFGenerator con Maroto v2.
type MarotoMarginReport struct{}

// NewMarotoMarginReport construye el generador.
func NewMarotoMarginReport() *MarotoMarginReport { return &MarotoMarginReport{} }

// GenerateMarginPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoMarginReport) GenerateMarginPDF(_ context.Context, order *dto.OrderMarginDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Reporte de margen — orden %d", order.OrderNo.Int64()), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(order.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: N° de orden + título (izq), fecha + estado (der).
func headerRow(order *dto.OrderMarginDTO) core.Row {
	title := order.Title
	if title == "" {
		title = "(sin título)"
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Orden %d", order.OrderNo.Int64()), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(order.DateEntered.Format("02/01/2006"), props.Text{
				Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(order.OrderStatus, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// partiesRow: cliente y vendedor.
func partiesRow(order *dto.OrderMarginDTO) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New("CLIENTE", props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(order.CustomerName, props.Text{Size: 9, Top: 4.5}),
		),
		col.New(6).Add(
			text.New("VENDEDOR", props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(order.SalespersonName, props.Text{Size: 9, Top: 4.5}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(6).Add(
		col.New(1).Add(text.New("#", header)),
		col.New(4).Add(text.New("Proveedor", header)),
		col.New(1).Add(text.New("Cant.", headerRight)),
		col.New(2).Add(text.New("Costo U.", headerRight)),
		col.New(2).Add(text.New("Venta U.", headerRight)),
		col.New(2).Add(text.New("Margen %", headerRight)),
	)
}

func tableLineRows(lines []dto.OrderLineMarginDTO) []core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}

	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		pctProps := cellRight
		if l.MarginPct.IsNegative() {
			pctProps = props.Text{Size: 8, Align: align.Right, Color: colorAlert}
		}
		rows = append(rows, row.New(5).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.LineNo), cell)),
			col.New(4).Add(text.New(l.VendorName, cell)),
			col.New(1).Add(text.New(l.QtyOrdered.String(), cellRight)),
			col.New(2).Add(text.New("$"+l.UnitCost.StringFixed(2), cellRight)),
			col.New(2).Add(text.New("$"+l.UnitSell.StringFixed(2), cellRight)),
			col.New(2).Add(text.New(l.MarginPct.StringFixed(2)+" %", pctProps)),
		))
	}
	return rows
}

func totalsRows(order *dto.OrderMarginDTO) []core.Row {
	label := props.Text{Size: 9, Align: align.Right, Color: colorGray}
	value := props.Text{Size: 9, Align: align.Right}
	totalLabel := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary}
	totalValue := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary}

	return []core.Row{
		row.New(5).Add(
			col.New(8),
			col.New(2).Add(text.New("Venta total", label)),
			col.New(2).Add(text.New("$"+order.TotalSell.StringFixed(2), value)),
		),
		row.New(5).Add(
			col.New(8),
			col.New(2).Add(text.New("Costo total", label)),
			col.New(2).Add(text.New("$"+order.TotalCost.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New("Margen", totalLabel)),
			col.New(2).Add(text.New(
				fmt.Sprintf("$%s (%s %%)", order.OrderMargin.StringFixed(2), order.OrderMarginPct.StringFixed(2)),
				totalValue,
			)),
		),
	}
}
