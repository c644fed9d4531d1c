// Package pdf genera el reporte Kardex de una asignación en PDF.
//
// Layout de la página Letter horizontal:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  Organización                                       KARDEX           │
//	│  Rango aplicado                                                      │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  Producto / Tipo / Unidad    │  Área / Asignación / Stock / Costo    │
//	│  [ESTADO: DADO DE BAJA]                                              │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  Fecha|T.Doc|Documento|Detalle|Ing.|Sal.|Saldo|C.Unit|Ing.Val|...    │
//	│  TOTALES                                                             │
//	│  Generado el: d/m/Y H:i                                              │
//	└──────────────────────────────────────────────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appinventory "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/kardex"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.KardexPDFGenerator = (*MarotoKardexGenerator)(nil)

// MarotoKardexGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct {
	printer *message.Printer
}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator {
	return &MarotoKardexGenerator{printer: message.NewPrinter(language.LatinAmericanSpanish)}
}

// GenerateKardexPDF genera el PDF y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(_ context.Context, report appinventory.KardexReport) ([]byte, error) {
	if report.Assignment == nil {
		return nil, fmt.Errorf("pdf: reporte sin asignación")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Kardex", true).
		WithAuthor(report.Organization, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(assignmentRow(report))
	if report.Assignment.WrittenOff {
		m.AddRows(writeOffRow(report))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(report.Rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(report.Rows))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(5).Add(col.New(12).Add(
		text.New("Generado el: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 7, Color: colorGray, Align: align.Right,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(report appinventory.KardexReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Organization, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(rangeText(report.Range), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("KARDEX", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Control de existencias valorizado", props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func assignmentRow(report appinventory.KardexReport) core.Row {
	a := report.Assignment
	field := func(label, value string, top float64) core.Component {
		return text.New(label+": "+nonEmpty(value, "—"), props.Text{Size: 8, Top: top})
	}
	return row.New(22).Add(
		col.New(6).Add(
			field("Código", a.Product.Barcode, 1),
			field("Producto", a.Product.Name, 6),
			field("Descripción", a.Product.Description, 11),
			field("Tipo / Unidad", a.Product.Type+" / "+a.Product.UnitMeasure, 16),
		),
		col.New(6).Add(
			field("Área", a.Area.Name, 1),
			field("Asignación", a.Code, 6),
			field("Stock actual", a.Stock.StringFixed(2), 11),
			field("Costo total", a.TotalCost.StringFixed(2), 16),
		),
	)
}

func writeOffRow(report appinventory.KardexReport) core.Row {
	msg := "ESTADO: DADO DE BAJA"
	if w := report.WriteOff; w != nil {
		msg += fmt.Sprintf("  |  Fecha: %s  |  Motivo: %s", w.Date.Format(dateLayout), nonEmpty(w.Reason, "—"))
	}
	return row.New(7).Add(col.New(12).Add(
		text.New(msg, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorDanger, Top: 1}),
	))
}

// columnas: 11 sobre la grilla de 12 (Detalle ocupa 2).
var columns = []struct {
	label string
	size  int
	align align.Type
}{
	{"Fecha", 1, align.Center},
	{"T.Doc", 1, align.Center},
	{"Documento", 1, align.Center},
	{"Detalle", 2, align.Left},
	{"Ing.", 1, align.Right},
	{"Sal.", 1, align.Right},
	{"Saldo", 1, align.Right},
	{"C.Unit", 1, align.Right},
	{"Ing.Val", 1, align.Right},
	{"Sal.Val", 1, align.Right},
	{"Saldo Val", 1, align.Right},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: c.align,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoKardexGenerator) tableRows(rows []kardex.Row) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos en el rango seleccionado", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		))}
	}
	out := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		values := []string{
			r.Date.Format(dateLayout),
			r.DocType,
			r.Document,
			r.Detail,
			g.amount(r.QtyIn),
			g.amount(r.QtyOut),
			g.amount(r.Balance),
			g.amount(r.UnitCost),
			g.amount(r.InValue),
			g.amount(r.OutValue),
			g.amount(r.BalanceValue),
		}
		cols := make([]core.Col, 0, len(columns))
		for j, c := range columns {
			cols = append(cols, col.New(c.size).Add(text.New(values[j], props.Text{
				Size: 7, Align: c.align, Top: 1, Left: 1, Right: 1,
			})))
		}
		rr := row.New(6).Add(cols...)
		if i%2 == 1 {
			rr = rr.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, rr)
	}
	return out
}

// totalsRow suma ingresos, salidas y sus valores sobre las filas mostradas.
func (g *MarotoKardexGenerator) totalsRow(rows []kardex.Row) core.Row {
	var qtyIn, qtyOut, inVal, outVal decimal.Decimal
	for _, r := range rows {
		qtyIn = qtyIn.Add(r.QtyIn)
		qtyOut = qtyOut.Add(r.QtyOut)
		inVal = inVal.Add(r.InValue)
		outVal = outVal.Add(r.OutValue)
	}
	bold := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 7, Align: a, Top: 1, Left: 1, Right: 1})
	}
	return row.New(7).Add(
		col.New(5).Add(bold("TOTALES", align.Right)),
		col.New(1).Add(bold(g.amount(qtyIn), align.Right)),
		col.New(1).Add(bold(g.amount(qtyOut), align.Right)),
		col.New(2),
		col.New(1).Add(bold(g.amount(inVal), align.Right)),
		col.New(1).Add(bold(g.amount(outVal), align.Right)),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// amount formatea con separador de miles y 2 decimales. Los valores ya vienen
// redondeados a 2 decimales, la conversión a float es solo para presentación.
func (g *MarotoKardexGenerator) amount(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func rangeText(r kardex.DateRange) string {
	switch {
	case r.From != nil && r.To != nil:
		return fmt.Sprintf("Del %s al %s", r.From.Format(dateLayout), r.To.Format(dateLayout))
	case r.From != nil:
		return "Desde " + r.From.Format(dateLayout)
	case r.To != nil:
		return "Hasta " + r.To.Format(dateLayout)
	default:
		return "Todos los movimientos"
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
