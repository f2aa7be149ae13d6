// Package pdf implementa el reporte de existencias en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de inventario   │  Empresa + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Ítem | Cant | Mín | Estado | Costo | Valor     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteos por estado + valor total                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/fieldops-api/internal/application/report"
	"github.com/jhoicas/fieldops-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var statusLabels = map[string]string{
	entity.ItemStatusActive:       "Activo",
	entity.ItemStatusLowStock:     "Stock bajo",
	entity.ItemStatusDiscontinued: "Descontinuado",
}

// MarotoStockReportGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoStockReportGenerator struct{}

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator {
	return &MarotoStockReportGenerator{}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(_ context.Context, data report.StockReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(data.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data report.StockReportData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d ítems", len(data.Items)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Empresa: "+data.CompanyID, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Fecha: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Ítem", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Estado", 2, align.Center),
		h("Costo", 1, align.Right),
		h("Valor", 2, align.Right),
	)
}

func itemRows(items []*entity.Item) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		statusProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		if it.Status == entity.ItemStatusLowStock {
			statusProps.Color = colorAlert
			statusProps.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(nonEmpty(it.SKU, "-"), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(it.Name, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprint(it.MinQuantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(statusLabels[it.Status], statusProps)),
			col.New(1).Add(text.New(formatMoney(it.CostPrice), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(formatMoney(it.StockValue()), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func summaryRow(data report.StockReportData) core.Row {
	s := data.Summary
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(30).Add(
		col.New(6),
		col.New(3).Add(
			label("Activos:"),
			label("Stock bajo:"),
			label("Descontinuados:"),
			label("VALOR TOTAL:"),
		),
		col.New(3).Add(
			value(fmt.Sprint(s.ActiveItems)),
			value(fmt.Sprint(s.LowStockItems)),
			value(fmt.Sprint(s.DiscontinuedItems)),
			value(formatMoney(s.TotalValue)),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con separador de miles "." y 2 decimales tras ",".
// Ej: 1234567.5 → "$1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return "$" + sign + string(buf) + "," + frac
}
