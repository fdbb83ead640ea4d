// Package pdf implementa la representación gráfica del recibo de venta.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nombre del local  │  Recibo + Fecha  │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal   │
//	│  ───────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL        │
//	│  FOOTER: método de pago + código de recibo    │
//	└───────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/panaderia-demo/internal/application/receipt"
	"github.com/jhoicas/panaderia-demo/internal/domain/entity"
	"github.com/jhoicas/panaderia-demo/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 121, Green: 68, Blue: 21}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas legibles de los métodos de pago.
var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa receipt.PDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	sale *entity.Sale,
	cashierName string,
	lines []receipt.Line,
	shop receipt.ShopInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, shop))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(cashierRow(sale, cashierName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(sale)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del local (izq) y código de recibo + fecha (der).
func headerRow(sale *entity.Sale, shop receipt.ShopInfo) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(shop.Address+" · "+shop.Phone, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Recibo "+sale.ReceiptCode, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(sale.IssuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func cashierRow(sale *entity.Sale, cashierName string) core.Row {
	label := "Venta de mostrador"
	if cashierName != "" {
		label = "Atendió: " + cashierName
	}
	return row.New(7).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New(fmt.Sprintf("Venta N° %d", sale.ID), props.Text{
			Size: 9, Align: align.Right, Top: 1, Color: colorGray,
		})),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("Cant", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P.Unit", headerRight)),
		col.New(3).Add(text.New("Subtotal", headerRight)),
	)
}

func tableDetailRows(lines []receipt.Line) []core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellRight := props.Text{Size: 9, Top: 1, Align: align.Right}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", l.Item.Quantity), cell)),
			col.New(5).Add(text.New(l.ProductName, cell)),
			col.New(2).Add(text.New(money.FormatCents(l.Item.UnitPriceCents), cellRight)),
			col.New(3).Add(text.New(money.FormatCents(l.Item.SubtotalCents), cellRight)),
		))
	}
	return rows
}

func totalsRows(sale *entity.Sale) []core.Row {
	label := props.Text{Size: 9, Top: 1, Align: align.Right, Color: colorGray}
	value := props.Text{Size: 9, Top: 1, Align: align.Right}

	var subtotal int64
	for _, it := range sale.Items {
		subtotal += it.SubtotalCents
	}

	rows := []core.Row{
		row.New(6).Add(
			col.New(9).Add(text.New("Subtotal", label)),
			col.New(3).Add(text.New(money.FormatCents(subtotal), value)),
		),
	}
	if sale.DiscountCents > 0 {
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New("Descuento", label)),
			col.New(3).Add(text.New("-"+money.FormatCents(sale.DiscountCents), value)),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 1, Align: align.Right, Color: colorPrimary,
		})),
		col.New(3).Add(text.New(money.FormatCents(sale.TotalCents), props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 1, Align: align.Right, Color: colorPrimary,
		})),
	))
	return rows
}

func footerRow(sale *entity.Sale) core.Row {
	method := paymentLabels[sale.PaymentMethod]
	if method == "" {
		method = sale.PaymentMethod
	}
	return row.New(6).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Pago: %s · Conserve el código %s para consultas", method, sale.ReceiptCode),
			props.Text{Size: 8, Top: 1, Align: align.Center, Color: colorGray},
		)),
	)
}
